package handlers_test

import (
	"net/http"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/hogarlabs/hogar/internal/config"
	"github.com/hogarlabs/hogar/internal/middleware"
	"github.com/hogarlabs/hogar/internal/models"
	"github.com/hogarlabs/hogar/internal/storage"
	"github.com/hogarlabs/hogar/views"
	"golang.org/x/crypto/bcrypt"
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

// setupTestApp creates a Fiber app with the embedded view engine and a
// fresh session store, mirroring the server wiring.
func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	middleware.InitSessionStore(&config.Config{SessionCookie: "hogar_session"})

	engine := html.NewFileSystem(http.FS(views.FS), ".html")
	return fiber.New(fiber.Config{Views: engine})
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

// createTestUser inserts a user with a real bcrypt hash so the login
// flow can be exercised end to end.
func createTestUser(t *testing.T, db *gorm.DB, username, password string, isStaff bool) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(hash),
		IsStaff:      isStaff,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return &user
}

// fakeAuth stands in for the auth middleware on routes under test.
func fakeAuth(user *models.User) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userID", user.ID)
		c.Locals("username", user.Username)
		c.Locals("isStaff", user.IsStaff)
		return c.Next()
	}
}
