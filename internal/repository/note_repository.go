package repository

import (
	"context"

	"github.com/yukikurage/technotes-api/internal/models"
	"gorm.io/gorm"
)

// GormNoteRepository is a GORM implementation of NoteRepository
type GormNoteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new NoteRepository
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &GormNoteRepository{db: db}
}

// List returns every note, oldest first
func (r *GormNoteRepository) List(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note
	if err := r.db.WithContext(ctx).Order("created_at").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

// FindByID finds a note by ID
func (r *GormNoteRepository) FindByID(ctx context.Context, id string) (*models.Note, error) {
	var note models.Note
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&note).Error; err != nil {
		return nil, translateGormError(err)
	}
	return &note, nil
}

// FindByTitle finds a note by title through the case-folded key column
func (r *GormNoteRepository) FindByTitle(ctx context.Context, title string) (*models.Note, error) {
	var note models.Note
	if err := r.db.WithContext(ctx).Where("title_key = ?", models.UniqueKey(title)).First(&note).Error; err != nil {
		return nil, translateGormError(err)
	}
	return &note, nil
}

// ExistsForUser reports whether any note references the user
func (r *GormNoteRepository) ExistsForUser(ctx context.Context, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Note{}).
		Where("user_id = ?", userID).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create creates a new note
func (r *GormNoteRepository) Create(ctx context.Context, note *models.Note) error {
	return translateGormError(r.db.WithContext(ctx).Create(note).Error)
}

// Update overwrites every column of an existing note. Unlike Save it never
// inserts: a missing row yields ErrNotFound.
func (r *GormNoteRepository) Update(ctx context.Context, note *models.Note) error {
	note.TitleKey = models.UniqueKey(note.Title)

	result := r.db.WithContext(ctx).Model(note).Select("*").Omit("created_at").Updates(note)
	if result.Error != nil {
		return translateGormError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete deletes a note
func (r *GormNoteRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Note{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
