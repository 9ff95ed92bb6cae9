package models

import (
	"time"
)

// Note is strictly private to its owner. Every query against this
// table carries a user_id filter, so another user's note id behaves
// exactly like a nonexistent one.
type Note struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	UserID    uint   `gorm:"not null;index"`
	User      User   `gorm:"constraint:OnDelete:CASCADE"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the table name for Note
func (Note) TableName() string {
	return "notes"
}
