package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/technotes-api/internal/middleware"
)

// Handlers groups the resource handlers mounted by RegisterRoutes.
type Handlers struct {
	Auth  *AuthHandler
	Users *UserHandler
	Notes *NoteHandler
}

// RegisterRoutes mounts /auth, /users and /notes on r. When requireAuth is set,
// /users and /notes need a logged-in session.
func RegisterRoutes(r gin.IRouter, h Handlers, requireAuth bool) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/logout", h.Auth.Logout)
		auth.GET("/me", middleware.RequireAuth(), h.Auth.GetCurrentUser)
	}

	users := r.Group("/users")
	notes := r.Group("/notes")
	if requireAuth {
		users.Use(middleware.RequireAuth())
		notes.Use(middleware.RequireAuth())
	}

	users.GET("", h.Users.ListUsers)
	users.POST("", h.Users.CreateUser)
	users.PATCH("", h.Users.UpdateUser)
	users.DELETE("", h.Users.DeleteUser)

	notes.GET("", h.Notes.ListNotes)
	notes.POST("", h.Notes.CreateNote)
	notes.PATCH("", h.Notes.UpdateNote)
	notes.DELETE("", h.Notes.DeleteNote)
}
