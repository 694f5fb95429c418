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

const entityUser = "user"

// UserHandler serves the /users resource.
type UserHandler struct {
	userService *services.UserService
	resp        *Responder
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService, resp *Responder) *UserHandler {
	return &UserHandler{
		userService: userService,
		resp:        resp,
	}
}

// ListUsers returns every user without password hashes
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		h.resp.Error(c, entityUser, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTOs(users))
}

// CreateUser registers a new user
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.resp.Error(c, entityUser, services.ErrMissingUserFields)
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), services.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		Roles:    req.Roles.Or(nil),
	})
	if err != nil {
		h.resp.Error(c, entityUser, err)
		return
	}

	metrics.RecordMutations.WithLabelValues(entityUser, "create").Inc()
	c.JSON(http.StatusCreated, gin.H{"message": h.resp.Messages.UserCreated(user.Username)})
}

// UpdateUser replaces a user's username, roles, active flag and optionally password
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.resp.Error(c, entityUser, services.ErrMissingUserUpdateFields)
		return
	}

	var roles []string
	if req.Roles.NonEmpty() {
		roles = req.Roles.Values
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), services.UpdateUserInput{
		ID:       req.ID,
		Username: req.Username,
		Roles:    roles,
		Active:   req.Active,
		Password: req.Password,
	})
	if err != nil {
		h.resp.Error(c, entityUser, err)
		return
	}

	metrics.RecordMutations.WithLabelValues(entityUser, "update").Inc()
	c.JSON(http.StatusOK, gin.H{"message": h.resp.Messages.UserUpdated(user.Username)})
}

// DeleteUser removes a user that owns no notes
func (h *UserHandler) DeleteUser(c *gin.Context) {
	var req dto.DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.resp.Error(c, entityUser, services.ErrMissingUserID)
		return
	}

	user, err := h.userService.DeleteUser(c.Request.Context(), req.ID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			h.resp.reject(entityUser, "not_found")
			apierrors.NotFound(c, h.resp.notFoundStatus(), h.resp.Messages.NoUserToDelete)
			return
		}
		h.resp.Error(c, entityUser, err)
		return
	}

	metrics.RecordMutations.WithLabelValues(entityUser, "delete").Inc()
	c.JSON(http.StatusOK, h.resp.Messages.UserDeleted(user.Username, user.ID))
}
