package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Note is a support ticket owned by a user.
type Note struct {
	ID        string    `gorm:"type:varchar(36);primarykey" bson:"_id" json:"id"`
	UserID    string    `gorm:"column:user_id;type:varchar(36);not null;index" bson:"user" json:"user"`
	Title     string    `gorm:"type:varchar(255);not null" bson:"title" json:"title"`
	TitleKey  string    `gorm:"type:varchar(255);uniqueIndex;not null" bson:"-" json:"-"`
	Text      string    `gorm:"type:text;not null" bson:"text" json:"text"`
	Completed bool      `gorm:"not null;default:false" bson:"completed" json:"completed"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

func (n *Note) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}

func (n *Note) BeforeSave(tx *gorm.DB) error {
	n.TitleKey = UniqueKey(n.Title)
	return nil
}
