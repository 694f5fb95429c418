package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/technotes-api/internal/constants"
	"github.com/yukikurage/technotes-api/internal/dto"
	apierrors "github.com/yukikurage/technotes-api/internal/errors"
	"github.com/yukikurage/technotes-api/internal/middleware"
	"github.com/yukikurage/technotes-api/internal/services"
)

const entityAuth = "auth"

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
	resp        *Responder
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, resp *Responder) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		resp:        resp,
	}
}

// Login authenticates a user and initializes the session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, h.resp.Messages.InvalidRequestBody)
		return
	}
	if req.Username == "" || req.Password == "" {
		apierrors.BadRequest(c, h.resp.Messages.AllFieldsRequired)
		return
	}

	user, err := h.authService.Login(c.Request.Context(), services.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.resp.Error(c, entityAuth, err)
		return
	}

	session := sessions.Default(c)
	session.Set(constants.ContextKeyUserID, user.ID)
	session.Set(constants.ContextKeyRoles, user.Roles)
	if err := session.Save(); err != nil {
		_ = c.Error(err)
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// Logout removes the authentication session.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		_ = c.Error(err)
		apierrors.InternalError(c, "Failed to logout")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": h.resp.Messages.LoggedOut})
}

// GetCurrentUser returns the authenticated user.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), userID)
	if err != nil {
		h.resp.Error(c, entityAuth, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}
