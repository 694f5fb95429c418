package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/technotes-api/internal/errors"
	"github.com/yukikurage/technotes-api/internal/messages"
	"github.com/yukikurage/technotes-api/internal/metrics"
	"github.com/yukikurage/technotes-api/internal/services"
)

// Responder turns service errors into localized JSON responses.
//
// With Strict unset it keeps the historical status codes: a missing record
// and a user that still owns notes both answer 400. With Strict set they
// answer 404 and 409.
type Responder struct {
	Messages messages.Catalog
	Strict   bool
}

// NewResponder creates a Responder for the given catalog and status convention.
func NewResponder(catalog messages.Catalog, strict bool) *Responder {
	return &Responder{Messages: catalog, Strict: strict}
}

func (r *Responder) notFoundStatus() int {
	if r.Strict {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

func (r *Responder) referencedStatus() int {
	if r.Strict {
		return http.StatusConflict
	}
	return http.StatusBadRequest
}

// Error writes the response for err. entity labels the rejection metric.
func (r *Responder) Error(c *gin.Context, entity string, err error) {
	m := r.Messages

	switch {
	case errors.Is(err, services.ErrMissingUserFields),
		errors.Is(err, services.ErrMissingNoteFields),
		errors.Is(err, services.ErrMissingNoteUpdateFields):
		r.reject(entity, "validation")
		apierrors.BadRequest(c, m.AllFieldsRequired)
	case errors.Is(err, services.ErrMissingUserUpdateFields):
		r.reject(entity, "validation")
		apierrors.BadRequest(c, m.AllFieldsExceptPassword)
	case errors.Is(err, services.ErrPasswordTooLong):
		r.reject(entity, "validation")
		apierrors.BadRequest(c, m.PasswordTooLong)
	case errors.Is(err, services.ErrMissingUserID):
		r.reject(entity, "validation")
		apierrors.BadRequest(c, m.UserIDRequired)
	case errors.Is(err, services.ErrMissingNoteID):
		r.reject(entity, "validation")
		apierrors.BadRequest(c, m.NoteIDRequired)

	case errors.Is(err, services.ErrNoUsers):
		r.reject(entity, "not_found")
		apierrors.NotFound(c, r.notFoundStatus(), m.NoUsersFound)
	case errors.Is(err, services.ErrUserNotFound):
		r.reject(entity, "not_found")
		apierrors.NotFound(c, r.notFoundStatus(), m.UserNotFound)
	case errors.Is(err, services.ErrNoNotes):
		r.reject(entity, "not_found")
		apierrors.NotFound(c, r.notFoundStatus(), m.NoNotesFound)
	case errors.Is(err, services.ErrNoteNotFound):
		r.reject(entity, "not_found")
		apierrors.NotFound(c, r.notFoundStatus(), m.NoteNotFound)

	case errors.Is(err, services.ErrDuplicateUsername):
		r.reject(entity, "conflict")
		apierrors.Conflict(c, http.StatusConflict, m.DuplicateUsername)
	case errors.Is(err, services.ErrDuplicateTitle):
		r.reject(entity, "conflict")
		apierrors.Conflict(c, http.StatusConflict, m.DuplicateTitle)
	case errors.Is(err, services.ErrUserHasNotes):
		r.reject(entity, "referenced")
		apierrors.Conflict(c, r.referencedStatus(), m.UserHasNotes)

	case errors.Is(err, services.ErrInvalidUserData):
		r.reject(entity, "persistence")
		apierrors.OperationFailed(c, m.InvalidUserData)
	case errors.Is(err, services.ErrInvalidNoteData):
		r.reject(entity, "persistence")
		apierrors.OperationFailed(c, m.InvalidNoteData)

	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInactiveUser):
		r.reject(entity, "auth")
		apierrors.Unauthorized(c, m.InvalidCredentials)

	default:
		r.reject(entity, "internal")
		_ = c.Error(err)
		apierrors.InternalError(c, m.InternalError)
	}
}

func (r *Responder) reject(entity, reason string) {
	metrics.RequestRejections.WithLabelValues(entity, reason).Inc()
}
