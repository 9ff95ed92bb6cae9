package models

import (
	"time"
)

// Time-of-day tags for Announcement. ALL matches every period.
const (
	TimeMorning   = "MORNING"
	TimeAfternoon = "AFTERNOON"
	TimeEvening   = "EVENING"
	TimeAll       = "ALL"
)

// DailyPhrase is one of the rotating hero phrases on the dashboard.
// Rows are seed data, read-only at runtime; only active ones are
// eligible for selection.
type DailyPhrase struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Text      string `gorm:"size:255;not null"`
	Author    string `gorm:"size:100"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
}

// Announcement is a staff-managed dashboard notice, filtered by the
// current time of day before random selection.
type Announcement struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Title     string `gorm:"size:200;not null"`
	Content   string `gorm:"type:text;not null"`
	TimeOfDay string `gorm:"size:10;not null;default:ALL"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
}

// TableName overrides the table name for DailyPhrase
func (DailyPhrase) TableName() string {
	return "daily_phrases"
}

// TableName overrides the table name for Announcement
func (Announcement) TableName() string {
	return "announcements"
}
