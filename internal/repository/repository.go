package repository

import (
	"context"
	"errors"

	"github.com/yukikurage/technotes-api/internal/models"
)

var (
	// ErrNotFound is returned when no record matches the lookup.
	ErrNotFound = errors.New("repository: record not found")
	// ErrDuplicateKey is returned when a write violates a unique index.
	ErrDuplicateKey = errors.New("repository: duplicate key")
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// List returns every user
	List(ctx context.Context) ([]models.User, error)

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id string) (*models.User, error)

	// FindByIDs returns the users matching the given IDs, in no particular order
	FindByIDs(ctx context.Context, ids []string) ([]models.User, error)

	// FindByUsername finds a user by username, ignoring case
	FindByUsername(ctx context.Context, username string) (*models.User, error)

	// Create inserts a new user and assigns its ID
	Create(ctx context.Context, user *models.User) error

	// Update persists every field of an existing user
	Update(ctx context.Context, user *models.User) error

	// Delete removes a user
	Delete(ctx context.Context, id string) error
}

// NoteRepository defines the interface for note data access
type NoteRepository interface {
	// List returns every note
	List(ctx context.Context) ([]models.Note, error)

	// FindByID finds a note by ID
	FindByID(ctx context.Context, id string) (*models.Note, error)

	// FindByTitle finds a note by title, ignoring case
	FindByTitle(ctx context.Context, title string) (*models.Note, error)

	// ExistsForUser reports whether at least one note references the user
	ExistsForUser(ctx context.Context, userID string) (bool, error)

	// Create inserts a new note and assigns its ID
	Create(ctx context.Context, note *models.Note) error

	// Update persists every field of an existing note
	Update(ctx context.Context, note *models.Note) error

	// Delete removes a note
	Delete(ctx context.Context, id string) error
}
