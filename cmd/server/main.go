package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/gofiber/template/html/v2"
	"github.com/hogarlabs/hogar/internal/config"
	"github.com/hogarlabs/hogar/internal/database"
	"github.com/hogarlabs/hogar/internal/handlers"
	"github.com/hogarlabs/hogar/internal/middleware"
	"github.com/hogarlabs/hogar/internal/storage"
	"github.com/hogarlabs/hogar/internal/types"
	"github.com/hogarlabs/hogar/internal/utils"
	"github.com/hogarlabs/hogar/views"
	"go.uber.org/zap"

	_ "github.com/hogarlabs/hogar/docs/api" // Swagger docs
)

// @title Hogar API
// @version 1.0.0
// @description Household web app: chat, moods, gallery, notes, watchlist

// @host localhost:3000
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name hogar_session

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	utils.InitLogger(cfg.Env)
	defer zap.L().Sync()

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		zap.S().Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations and seed the phrase table on first boot
	if err := database.AutoMigrate(db); err != nil {
		zap.S().Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.SeedDailyPhrases(db); err != nil {
		zap.S().Fatalf("Failed to seed daily phrases: %v", err)
	}

	// Blob storage backend
	st, err := storage.New(cfg)
	if err != nil {
		zap.S().Fatalf("Failed to initialize storage: %v", err)
	}

	// Sessions
	middleware.InitSessionStore(cfg)

	// Create Fiber app with embedded views
	engine := html.NewFileSystem(http.FS(views.FS), ".html")
	app := fiber.New(fiber.Config{
		Views:        engine,
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("hogar")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Local storage serves its files directly under /media
	if local, ok := st.(*storage.Local); ok {
		app.Use("/media", filesystem.New(filesystem.Config{
			Root: http.Dir(local.Root()),
		}))
	}

	// Create handlers
	authHandler := &handlers.AuthHandler{DB: db}
	homeHandler := &handlers.HomeHandler{DB: db}
	chatHandler := &handlers.ChatHandler{DB: db, Storage: st}
	galleryHandler := &handlers.GalleryHandler{DB: db, Storage: st}
	notesHandler := &handlers.NotesHandler{DB: db}
	watchlistHandler := &handlers.WatchlistHandler{DB: db}
	announcementHandler := &handlers.AnnouncementHandler{DB: db}

	// Auth routes (no session required)
	app.Get("/login/", authHandler.LoginForm)
	app.Post("/login/", authHandler.Login)
	app.Get("/logout/", authHandler.Logout)
	app.Post("/logout/", authHandler.Logout)

	// Dashboard and mood
	app.Get("/", middleware.AuthUser(), homeHandler.Home)
	app.Post("/mood/", middleware.AuthUser(), homeHandler.RecordMood)

	// Chat polling API
	chat := app.Group("/chat", middleware.AuthUser())
	chat.Get("/get/", chatHandler.GetMessages)
	chat.Post("/send/", chatHandler.SendMessage)

	// Gallery
	gallery := app.Group("/gallery", middleware.AuthUser())
	gallery.Get("/", galleryHandler.Index)
	gallery.Get("/photo/:id", galleryHandler.Detail)
	gallery.Post("/photo/:id", galleryHandler.Detail)
	gallery.Post("/upload/", galleryHandler.Upload)
	gallery.Post("/delete/:id", galleryHandler.Delete)

	// Notes
	notes := app.Group("/notes", middleware.AuthUser())
	notes.Get("/", notesHandler.Index)
	notes.Post("/manage/", notesHandler.Create)
	notes.Post("/manage/:id", notesHandler.Manage)

	// Watchlist
	watchlist := app.Group("/watchlist", middleware.AuthUser())
	watchlist.Get("/", watchlistHandler.Index)
	watchlist.Post("/add/", watchlistHandler.Add)
	watchlist.Post("/delete/:id", watchlistHandler.Delete)
	watchlist.Post("/toggle/:id", watchlistHandler.Toggle)
	watchlist.Post("/add_review/:id", watchlistHandler.AddReview)

	// Announcement admin (staff only)
	announcements := app.Group("/announcements", middleware.AuthStaff())
	announcements.Get("/", announcementHandler.Index)
	announcements.Post("/add/", announcementHandler.Add)
	announcements.Post("/delete/:id", announcementHandler.Delete)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		zap.S().Info("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	zap.S().Infof("Starting server on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		zap.S().Fatalf("Failed to start server: %v", err)
	}

	zap.S().Info("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	// Check for typed errors
	switch e := err.(type) {
	case *types.AppError:
		code = e.Code
		message = e.Message
		errorType = e.Type
	case *fiber.Error:
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}
