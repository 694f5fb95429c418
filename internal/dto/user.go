package dto

import (
	"time"

	"github.com/yukikurage/technotes-api/internal/models"
)

// CreateUserRequest is the body of POST /users
type CreateUserRequest struct {
	Username string   `json:"username"`
	Password string   `json:"password"`
	Roles    RoleList `json:"roles"`
}

// UpdateUserRequest is the body of PATCH /users. Password is only set when it changes.
type UpdateUserRequest struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Roles    RoleList `json:"roles"`
	Active   *bool    `json:"active"`
	Password string   `json:"password"`
}

// DeleteRequest is the body of DELETE /users and DELETE /notes
type DeleteRequest struct {
	ID string `json:"id"`
}

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserDTO represents a user in API responses. It never carries the password hash.
type UserDTO struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Roles     []string  `json:"roles"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		Roles:     user.Roles,
		Active:    user.Active,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// ToUserDTOs converts a slice of users
func ToUserDTOs(users []models.User) []UserDTO {
	out := make([]UserDTO, len(users))
	for i, user := range users {
		out[i] = ToUserDTO(user)
	}
	return out
}
