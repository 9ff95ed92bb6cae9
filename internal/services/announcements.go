package services

import (
	"fmt"

	"github.com/hogarlabs/hogar/internal/models"
	"gorm.io/gorm"
)

// ListAnnouncements returns all announcements, newest first. Staff
// only; the permission gate lives in middleware, before any data
// access.
func ListAnnouncements(db *gorm.DB) ([]models.Announcement, error) {
	var announcements []models.Announcement
	if err := db.Order("created_at DESC").Find(&announcements).Error; err != nil {
		return nil, err
	}
	return announcements, nil
}

// CreateAnnouncement creates an active announcement. Title, content
// and time-of-day are all required.
func CreateAnnouncement(db *gorm.DB, title, content, timeOfDay string) (*models.Announcement, error) {
	if title == "" || content == "" || timeOfDay == "" {
		return nil, fmt.Errorf("title, content and time_of_day are required")
	}

	switch timeOfDay {
	case models.TimeMorning, models.TimeAfternoon, models.TimeEvening, models.TimeAll:
	default:
		return nil, fmt.Errorf("invalid time_of_day: %s", timeOfDay)
	}

	announcement := models.Announcement{
		Title:     title,
		Content:   content,
		TimeOfDay: timeOfDay,
		IsActive:  true,
	}
	if err := db.Create(&announcement).Error; err != nil {
		return nil, err
	}
	return &announcement, nil
}

// DeleteAnnouncement removes an announcement by id, unconditionally.
func DeleteAnnouncement(db *gorm.DB, announcementID uint) error {
	return db.Delete(&models.Announcement{}, announcementID).Error
}
