package services

import (
	"fmt"

	"github.com/hogarlabs/hogar/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListWatchItems returns the shared watchlist: unwatched items first,
// newest first within each group, reviews preloaded for display.
func ListWatchItems(db *gorm.DB) ([]models.WatchItem, error) {
	var items []models.WatchItem
	if err := db.Preload("AddedBy").
		Preload("Reviews").Preload("Reviews.User").
		Order("is_watched ASC, created_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// AddWatchItem creates a watch item owned by the caller. Unknown item
// types fall back to MOVIE; rating is clamped to 0-5.
func AddWatchItem(db *gorm.DB, userID uint, title, itemType string, rating int, comment string) (*models.WatchItem, error) {
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}

	switch itemType {
	case models.ItemMovie, models.ItemSeries, models.ItemVideo:
	default:
		itemType = models.ItemMovie
	}

	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}

	item := models.WatchItem{
		Title:     title,
		ItemType:  itemType,
		Rating:    rating,
		Comment:   comment,
		AddedByID: userID,
	}
	if err := db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteWatchItem removes an item regardless of who added it; the list
// is communal. Reviews go with it.
func DeleteWatchItem(db *gorm.DB, itemID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var item models.WatchItem
		if err := tx.First(&item, itemID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fmt.Errorf("not found")
			}
			return err
		}
		if err := tx.Where("watch_item_id = ?", item.ID).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
}

// ToggleWatched flips the watched flag on any item.
func ToggleWatched(db *gorm.DB, itemID uint) error {
	var item models.WatchItem
	if err := db.First(&item, itemID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fmt.Errorf("not found")
		}
		return err
	}
	return db.Model(&item).Update("is_watched", !item.IsWatched).Error
}

// UpsertReview creates or overwrites the caller's review for an item.
// The write rides the (watch_item_id, user_id) unique index through ON
// CONFLICT, so two concurrent reviewers can never produce a duplicate
// pair; the last write's rating and comment win.
func UpsertReview(db *gorm.DB, itemID, userID uint, rating int, comment string) (*models.Review, error) {
	var item models.WatchItem
	if err := db.First(&item, itemID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("not found")
		}
		return nil, err
	}

	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}

	review := models.Review{
		WatchItemID: item.ID,
		UserID:      userID,
		Rating:      rating,
		Comment:     comment,
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "watch_item_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "comment"}),
	}).Create(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}
