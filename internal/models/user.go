package models

import (
	"time"
)

// User is a household member account. Staff members can manage
// announcements; everybody else only consumes them.
type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"size:150;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:128;not null"`
	IsStaff      bool   `gorm:"not null;default:false"`
	CreatedAt    time.Time
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}
