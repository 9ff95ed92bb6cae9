package services_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/hogarlabs/hogar/internal/models"
	"github.com/hogarlabs/hogar/internal/storage"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Message{},
		&models.DailyPhrase{},
		&models.Announcement{},
		&models.MoodEntry{},
		&models.Photo{},
		&models.Note{},
		&models.WatchItem{},
		&models.Review{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// setupTestStorage creates a Local storage rooted in a temp dir
func setupTestStorage(t *testing.T) *storage.Local {
	t.Helper()

	st, err := storage.NewLocal(t.TempDir(), "http://test")
	if err != nil {
		t.Fatalf("Failed to create test storage: %v", err)
	}
	return st
}

// createTestUser inserts a user with a throwaway password hash
func createTestUser(t *testing.T, db *gorm.DB, username string, isStaff bool) *models.User {
	t.Helper()

	user := models.User{
		Username:     username,
		PasswordHash: "x",
		IsStaff:      isStaff,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return &user
}
