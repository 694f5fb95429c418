package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/technotes-api/internal/dto"
	apierrors "github.com/yukikurage/technotes-api/internal/errors"
	"github.com/yukikurage/technotes-api/internal/metrics"
	"github.com/yukikurage/technotes-api/internal/services"
)

const entityNote = "note"

// NoteHandler serves the /notes resource.
type NoteHandler struct {
	noteService *services.NoteService
	resp        *Responder
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(noteService *services.NoteService, resp *Responder) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
		resp:        resp,
	}
}

// ListNotes returns every note with its owner's username
func (h *NoteHandler) ListNotes(c *gin.Context) {
	notes, err := h.noteService.ListNotes(c.Request.Context())
	if err != nil {
		h.resp.Error(c, entityNote, err)
		return
	}

	response := make([]dto.NoteDTO, len(notes))
	for i, n := range notes {
		response[i] = dto.ToNoteDTO(n.Note, n.Username)
	}

	c.JSON(http.StatusOK, response)
}

// CreateNote opens a new note
func (h *NoteHandler) CreateNote(c *gin.Context) {
	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.resp.Error(c, entityNote, services.ErrMissingNoteFields)
		return
	}

	_, err := h.noteService.CreateNote(c.Request.Context(), services.CreateNoteInput{
		UserID: req.User,
		Title:  req.Title,
		Text:   req.Text,
	})
	if err != nil {
		h.resp.Error(c, entityNote, err)
		return
	}

	metrics.RecordMutations.WithLabelValues(entityNote, "create").Inc()
	c.JSON(http.StatusCreated, gin.H{"message": h.resp.Messages.NoteCreated})
}

// UpdateNote replaces a note's owner, title, text and completion
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.resp.Error(c, entityNote, services.ErrMissingNoteUpdateFields)
		return
	}

	note, err := h.noteService.UpdateNote(c.Request.Context(), services.UpdateNoteInput{
		ID:        req.ID,
		UserID:    req.User,
		Title:     req.Title,
		Text:      req.Text,
		Completed: req.Completed,
	})
	if err != nil {
		if errors.Is(err, services.ErrDuplicateTitle) {
			h.resp.reject(entityNote, "conflict")
			apierrors.Conflict(c, http.StatusConflict, h.resp.Messages.DuplicateNoteID)
			return
		}
		h.resp.Error(c, entityNote, err)
		return
	}

	metrics.RecordMutations.WithLabelValues(entityNote, "update").Inc()
	c.JSON(http.StatusOK, h.resp.Messages.NoteUpdated(note.Title))
}

// DeleteNote removes a note
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	var req dto.DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.resp.Error(c, entityNote, services.ErrMissingNoteID)
		return
	}

	note, err := h.noteService.DeleteNote(c.Request.Context(), req.ID)
	if err != nil {
		h.resp.Error(c, entityNote, err)
		return
	}

	metrics.RecordMutations.WithLabelValues(entityNote, "delete").Inc()
	c.JSON(http.StatusOK, h.resp.Messages.NoteDeleted(note.Title, note.ID))
}
