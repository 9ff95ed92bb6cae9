package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hogarlabs/hogar/internal/config"
	"github.com/hogarlabs/hogar/internal/database"
	"github.com/hogarlabs/hogar/internal/models"
	"github.com/hogarlabs/hogar/internal/services"
	"github.com/hogarlabs/hogar/internal/storage"
	"github.com/hogarlabs/hogar/internal/utils"
)

const usage = `
Manage hogar accounts.

Usage:

  usertool add -u USERNAME -p PASSWORD [-staff]
  usertool del -u USERNAME

del removes the user together with everything they own: messages and
chat images, mood entries, photos and their files, notes, reviews and
watch items they added.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(2)
	}

	var username, password string
	var staff bool

	fs := flag.NewFlagSet(os.Args[1], flag.ExitOnError)
	fs.StringVar(&username, "u", "", "username")
	fs.StringVar(&password, "p", "", "password")
	fs.BoolVar(&staff, "staff", false, "grant the staff flag")
	_ = fs.Parse(os.Args[2:])

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	utils.InitLogger(cfg.Env)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	switch os.Args[1] {
	case "add":
		user, err := services.CreateUser(db, username, password, staff)
		if err != nil {
			log.Fatalf("Failed to create user: %v", err)
		}
		fmt.Printf("Created user %s (id %d, staff: %v)\n", user.Username, user.ID, user.IsStaff)

	case "del":
		var user models.User
		if err := db.Where("username = ?", username).First(&user).Error; err != nil {
			log.Fatalf("User %s not found", username)
		}

		st, err := storage.New(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize storage: %v", err)
		}

		if err := services.DeleteUserCascade(context.Background(), db, st, user.ID); err != nil {
			log.Fatalf("Failed to delete user: %v", err)
		}
		fmt.Printf("Deleted user %s and all owned data\n", username)

	default:
		fmt.Println(usage)
		os.Exit(2)
	}
}
