package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/hogarlabs/hogar/internal/config"
	"github.com/hogarlabs/hogar/internal/database"
	"github.com/hogarlabs/hogar/internal/services"
	"github.com/hogarlabs/hogar/internal/storage"
	"github.com/hogarlabs/hogar/internal/utils"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	utils.InitLogger(cfg.Env)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	st, err := storage.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Perform health check
	result := services.HealthCheck(cfg, db, st)

	// Output result as JSON
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal health check result: %v", err)
	}

	fmt.Println(string(output))

	// Exit with appropriate code
	if result.Status != "healthy" {
		os.Exit(1)
	}
	os.Exit(0)
}
