package models

import (
	"time"
)

// Message is a chat message. Content may be empty when an image is
// attached; at least one of the two is always present. Messages are
// append-only: there is no edit or delete flow, rows only disappear
// through the user cascade.
type Message struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	UserID    uint   `gorm:"not null;index"`
	User      User   `gorm:"constraint:OnDelete:CASCADE"`
	Content   string `gorm:"type:text"`
	ImageKey  string `gorm:"size:255"`
	CreatedAt time.Time
}

// TableName overrides the table name for Message
func (Message) TableName() string {
	return "messages"
}
