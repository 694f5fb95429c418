package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleEmployee Role = "Employee"
	RoleManager  Role = "Manager"
	RoleAdmin    Role = "Admin"
)

// DefaultRoles is assigned when a user is created without a usable role list.
var DefaultRoles = []string{string(RoleEmployee)}

type User struct {
	ID           string    `gorm:"type:varchar(36);primarykey" bson:"_id" json:"id"`
	Username     string    `gorm:"type:varchar(255);not null" bson:"username" json:"username"`
	UsernameKey  string    `gorm:"type:varchar(255);uniqueIndex;not null" bson:"-" json:"-"`
	PasswordHash string    `gorm:"type:varchar(255);not null" bson:"password" json:"-"`
	Roles        []string  `gorm:"type:text;serializer:json;not null" bson:"roles" json:"roles"`
	Active       bool      `gorm:"not null" bson:"active" json:"active"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// UniqueKey folds a username or title into the form compared for uniqueness.
// Only case is folded; surrounding whitespace is significant.
func UniqueKey(s string) string {
	return strings.ToLower(s)
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

func (u *User) BeforeSave(tx *gorm.DB) error {
	u.UsernameKey = UniqueKey(u.Username)
	return nil
}
