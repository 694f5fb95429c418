package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/technotes-api/internal/models"
	"github.com/yukikurage/technotes-api/internal/repository"
)

var (
	ErrMissingNoteFields       = errors.New("user, title and text are required")
	ErrMissingNoteUpdateFields = errors.New("id, user, title, text and completed are required")
	ErrMissingNoteID           = errors.New("note id is required")
	ErrNoNotes                 = errors.New("no notes found")
	ErrNoteNotFound            = errors.New("note not found")
	ErrDuplicateTitle          = errors.New("note title already exists")
	ErrInvalidNoteData         = errors.New("invalid note data received")
)

// NoteService handles note business logic
type NoteService struct {
	noteRepo repository.NoteRepository
	userRepo repository.UserRepository
}

// NewNoteService creates a new NoteService
func NewNoteService(noteRepo repository.NoteRepository, userRepo repository.UserRepository) *NoteService {
	return &NoteService{
		noteRepo: noteRepo,
		userRepo: userRepo,
	}
}

// NoteWithOwner pairs a note with its owner's username. Username is empty when
// the owner no longer exists.
type NoteWithOwner struct {
	Note     models.Note
	Username string
}

// CreateNoteInput represents input for creating a note
type CreateNoteInput struct {
	UserID string
	Title  string
	Text   string
}

// UpdateNoteInput represents a full replacement of a note's mutable fields
type UpdateNoteInput struct {
	ID        string
	UserID    string
	Title     string
	Text      string
	Completed *bool
}

// ListNotes returns every note together with its owner's username
func (s *NoteService) ListNotes(ctx context.Context) ([]NoteWithOwner, error) {
	notes, err := s.noteRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	if len(notes) == 0 {
		return nil, ErrNoNotes
	}

	ownerIDs := make([]string, 0, len(notes))
	seen := make(map[string]struct{}, len(notes))
	for _, note := range notes {
		if _, ok := seen[note.UserID]; ok {
			continue
		}
		seen[note.UserID] = struct{}{}
		ownerIDs = append(ownerIDs, note.UserID)
	}

	owners, err := s.userRepo.FindByIDs(ctx, ownerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve note owners: %w", err)
	}
	usernames := make(map[string]string, len(owners))
	for _, owner := range owners {
		usernames[owner.ID] = owner.Username
	}

	result := make([]NoteWithOwner, len(notes))
	for i, note := range notes {
		result[i] = NoteWithOwner{Note: note, Username: usernames[note.UserID]}
	}
	return result, nil
}

// CreateNote validates input, rejects duplicate titles and stores an open note
func (s *NoteService) CreateNote(ctx context.Context, input CreateNoteInput) (*models.Note, error) {
	if blank(input.UserID) || blank(input.Title) || blank(input.Text) {
		return nil, ErrMissingNoteFields
	}

	if err := s.ensureTitleFree(ctx, input.Title, ""); err != nil {
		return nil, err
	}

	note := &models.Note{
		UserID:    input.UserID,
		Title:     input.Title,
		Text:      input.Text,
		Completed: false,
	}

	if err := s.noteRepo.Create(ctx, note); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDuplicateTitle
		}
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	if note.ID == "" {
		return nil, ErrInvalidNoteData
	}

	return note, nil
}

// UpdateNote replaces owner, title, text and completion of an existing note
func (s *NoteService) UpdateNote(ctx context.Context, input UpdateNoteInput) (*models.Note, error) {
	if input.ID == "" || blank(input.UserID) || blank(input.Title) || blank(input.Text) || input.Completed == nil {
		return nil, ErrMissingNoteUpdateFields
	}

	note, err := s.findNote(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if err := s.ensureTitleFree(ctx, input.Title, note.ID); err != nil {
		return nil, err
	}

	note.UserID = input.UserID
	note.Title = input.Title
	note.Text = input.Text
	note.Completed = *input.Completed

	if err := s.noteRepo.Update(ctx, note); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateKey):
			return nil, ErrDuplicateTitle
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrNoteNotFound
		default:
			return nil, fmt.Errorf("failed to update note: %w", err)
		}
	}

	return note, nil
}

// DeleteNote removes a note, returning the removed record
func (s *NoteService) DeleteNote(ctx context.Context, id string) (*models.Note, error) {
	if id == "" {
		return nil, ErrMissingNoteID
	}

	note, err := s.findNote(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.noteRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to delete note: %w", err)
	}

	return note, nil
}

func (s *NoteService) findNote(ctx context.Context, id string) (*models.Note, error) {
	note, err := s.noteRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to find note: %w", err)
	}
	return note, nil
}

func (s *NoteService) ensureTitleFree(ctx context.Context, title, selfID string) error {
	existing, err := s.noteRepo.FindByTitle(ctx, title)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("failed to check title: %w", err)
	case existing.ID != selfID:
		return ErrDuplicateTitle
	default:
		return nil
	}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
