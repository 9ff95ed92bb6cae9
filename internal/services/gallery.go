package services

import (
	"context"
	"fmt"

	"github.com/hogarlabs/hogar/internal/models"
	"github.com/hogarlabs/hogar/internal/storage"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ListPhotos returns every photo, newest first.
func ListPhotos(db *gorm.DB) ([]models.Photo, error) {
	var photos []models.Photo
	if err := db.Preload("Uploader").Order("created_at DESC").Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

// GetPhoto fetches one photo by id.
func GetPhoto(db *gorm.DB, photoID uint) (*models.Photo, error) {
	var photo models.Photo
	if err := db.Preload("Uploader").First(&photo, photoID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("not found")
		}
		return nil, err
	}
	return &photo, nil
}

// CreatePhoto records an already-stored blob as a gallery photo.
func CreatePhoto(db *gorm.DB, imageKey, description string, uploaderID uint) (*models.Photo, error) {
	if runes := []rune(description); len(runes) > 500 {
		description = string(runes[:500])
	}

	photo := models.Photo{
		ImageKey:    imageKey,
		Description: description,
		UploaderID:  uploaderID,
	}
	if err := db.Create(&photo).Error; err != nil {
		return nil, err
	}
	return &photo, nil
}

// UpdatePhotoDescription overwrites the description. Any authenticated
// user may edit, there is no ownership check on gallery photos.
func UpdatePhotoDescription(db *gorm.DB, photoID uint, description string) error {
	if runes := []rune(description); len(runes) > 500 {
		description = string(runes[:500])
	}

	result := db.Model(&models.Photo{}).Where("id = ?", photoID).
		Update("description", description)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("not found")
	}
	return nil
}

// DeletePhoto removes the row and its backing blob as one logical
// operation. The detail-page delete and the direct delete route both
// land here, so the blob cleanup cannot be skipped. The row goes first
// inside a transaction; the blob is removed after commit, and a blob
// failure at that point is logged rather than resurrecting the row.
func DeletePhoto(ctx context.Context, db *gorm.DB, st storage.Storage, photoID uint) error {
	var photo models.Photo

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&photo, photoID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fmt.Errorf("not found")
			}
			return err
		}
		return tx.Delete(&photo).Error
	})
	if err != nil {
		return err
	}

	if err := st.Delete(ctx, photo.ImageKey); err != nil {
		zap.S().Errorf("photo %d deleted but blob %s removal failed: %v", photo.ID, photo.ImageKey, err)
	}
	return nil
}
