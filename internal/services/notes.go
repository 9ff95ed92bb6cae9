package services

import (
	"fmt"

	"github.com/hogarlabs/hogar/internal/models"
	"gorm.io/gorm"
)

// Notes are private: every query here filters by owner, so operating
// on somebody else's note id reports not found, the same as a bogus
// id. That equivalence is deliberate, it keeps note existence from
// leaking across users.

// ListNotes returns the caller's notes, most recently updated first.
func ListNotes(db *gorm.DB, userID uint) ([]models.Note, error) {
	var notes []models.Note
	if err := db.Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

// CreateNote creates a note for the caller. Empty content is a no-op.
func CreateNote(db *gorm.DB, userID uint, content string) (*models.Note, error) {
	if content == "" {
		return nil, nil
	}

	note := models.Note{UserID: userID, Content: content}
	if err := db.Create(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

// UpdateNote overwrites the content of one of the caller's notes.
func UpdateNote(db *gorm.DB, userID, noteID uint, content string) error {
	result := db.Model(&models.Note{}).
		Where("id = ? AND user_id = ?", noteID, userID).
		Update("content", content)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("not found")
	}
	return nil
}

// DeleteNote permanently removes one of the caller's notes.
func DeleteNote(db *gorm.DB, userID, noteID uint) error {
	result := db.Where("id = ? AND user_id = ?", noteID, userID).
		Delete(&models.Note{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("not found")
	}
	return nil
}
