package models

import (
	"time"
)

// Watchable item types.
const (
	ItemMovie  = "MOVIE"
	ItemSeries = "SERIES"
	ItemVideo  = "VIDEO"
)

// WatchItem is a shared watchlist entry. The list is communal: any
// authenticated user may toggle the watched flag or delete an item,
// regardless of who added it.
type WatchItem struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Title     string `gorm:"size:200;not null"`
	ItemType  string `gorm:"size:10;not null;default:MOVIE"`
	Rating    int    `gorm:"not null;default:0"`
	Comment   string `gorm:"type:text"`
	IsWatched bool   `gorm:"not null;default:false"`
	AddedByID uint   `gorm:"not null;index"`
	AddedBy   User   `gorm:"foreignKey:AddedByID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	Reviews   []Review `gorm:"constraint:OnDelete:CASCADE"`
}

// Review is one user's take on a watch item. The composite unique
// index enforces at most one review per (item, user) pair; writes go
// through an ON CONFLICT upsert so concurrent reviewers cannot slip a
// duplicate past a read-then-write window.
type Review struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	WatchItemID uint   `gorm:"not null;uniqueIndex:idx_item_user"`
	UserID      uint   `gorm:"not null;uniqueIndex:idx_item_user"`
	User        User   `gorm:"constraint:OnDelete:CASCADE"`
	Rating      int    `gorm:"not null;default:0"`
	Comment     string `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName overrides the table name for WatchItem
func (WatchItem) TableName() string {
	return "watch_items"
}

// TableName overrides the table name for Review
func (Review) TableName() string {
	return "reviews"
}
