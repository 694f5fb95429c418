package dto

import (
	"time"

	"github.com/yukikurage/technotes-api/internal/models"
)

// CreateNoteRequest is the body of POST /notes
type CreateNoteRequest struct {
	User  string `json:"user"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// UpdateNoteRequest is the body of PATCH /notes
type UpdateNoteRequest struct {
	ID        string `json:"id"`
	User      string `json:"user"`
	Title     string `json:"title"`
	Text      string `json:"text"`
	Completed *bool  `json:"completed"`
}

// NoteDTO represents a note in list responses, with its owner's username
type NoteDTO struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	Username  string    `json:"username"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToNoteDTO converts a Note model to NoteDTO
func ToNoteDTO(note models.Note, username string) NoteDTO {
	return NoteDTO{
		ID:        note.ID,
		User:      note.UserID,
		Username:  username,
		Title:     note.Title,
		Text:      note.Text,
		Completed: note.Completed,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}
