package services

import (
	"context"
	"fmt"

	"github.com/hogarlabs/hogar/internal/models"
	"github.com/hogarlabs/hogar/internal/storage"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Authenticate checks a username/password pair and returns the user on
// success. Unknown username and wrong password are indistinguishable
// to the caller.
func Authenticate(db *gorm.DB, username, password string) (*models.User, error) {
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	return &user, nil
}

// CreateUser registers an account with a bcrypt-hashed password.
func CreateUser(db *gorm.DB, username, password string, isStaff bool) (*models.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(hash),
		IsStaff:      isStaff,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUserCascade removes a user and everything they own: chat
// messages and their image blobs, mood entries, photos and their
// blobs, notes, reviews, and watch items they added (with those items'
// reviews). The row cascade runs in one transaction; blob removal
// happens after commit and failures there are logged, not rolled back.
func DeleteUserCascade(ctx context.Context, db *gorm.DB, st storage.Storage, userID uint) error {
	var blobKeys []string

	err := db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fmt.Errorf("not found")
			}
			return err
		}

		var messages []models.Message
		if err := tx.Where("user_id = ? AND image_key <> ''", userID).Find(&messages).Error; err != nil {
			return err
		}
		for _, m := range messages {
			blobKeys = append(blobKeys, m.ImageKey)
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Message{}).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", userID).Delete(&models.MoodEntry{}).Error; err != nil {
			return err
		}

		var photos []models.Photo
		if err := tx.Where("uploader_id = ?", userID).Find(&photos).Error; err != nil {
			return err
		}
		for _, p := range photos {
			blobKeys = append(blobKeys, p.ImageKey)
		}
		if err := tx.Where("uploader_id = ?", userID).Delete(&models.Photo{}).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", userID).Delete(&models.Note{}).Error; err != nil {
			return err
		}

		// The user's own reviews, then their watch items with any
		// reviews left on them by others
		if err := tx.Where("user_id = ?", userID).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		var items []models.WatchItem
		if err := tx.Where("added_by_id = ?", userID).Find(&items).Error; err != nil {
			return err
		}
		for _, item := range items {
			if err := tx.Where("watch_item_id = ?", item.ID).Delete(&models.Review{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("added_by_id = ?", userID).Delete(&models.WatchItem{}).Error; err != nil {
			return err
		}

		return tx.Delete(&user).Error
	})
	if err != nil {
		return err
	}

	for _, key := range blobKeys {
		if err := st.Delete(ctx, key); err != nil {
			zap.S().Errorf("user %d cascade: blob %s removal failed: %v", userID, key, err)
		}
	}

	zap.S().Infof("Deleted user %d and %d owned blobs", userID, len(blobKeys))
	return nil
}
