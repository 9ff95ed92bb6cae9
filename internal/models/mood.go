package models

import (
	"time"
)

// MoodEntry is one logged mood. Entries are never updated, a new mood
// simply supersedes the previous one; the dashboard reads the newest
// entry per user. Note is capped at 255 characters at the service
// layer.
type MoodEntry struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	UserID    uint   `gorm:"not null;index"`
	User      User   `gorm:"constraint:OnDelete:CASCADE"`
	Mood      string `gorm:"size:20;not null"`
	Note      string `gorm:"size:255"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName overrides the table name for MoodEntry
func (MoodEntry) TableName() string {
	return "mood_entries"
}
