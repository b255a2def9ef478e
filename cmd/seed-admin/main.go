package main

import (
	"errors"
	"log"

	"go-stockroom/internal/model"
	"go-stockroom/pkg/config"
	"go-stockroom/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// Creates the bootstrap admin user, or resets its password when it already
// exists. Run once against a fresh database, or whenever the admin is locked
// out.
func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	email := config.Get("ADMIN_EMAIL", "admin@example.com")
	password, err := config.MustGet("ADMIN_PASSWORD")
	if err != nil {
		log.Fatal(err)
	}

	// 2. Setup Database
	db := database.ConnectDB()

	// 3. Create or reset
	var user model.User
	err = db.Where("email = ?", email).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = model.User{
			Email:    email,
			FullName: "Administrator",
			IsActive: true,
		}
		if err := user.SetPassword(password); err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		if err := db.Create(&user).Error; err != nil {
			log.Fatalf("Failed to create admin user: %v", err)
		}
		log.Printf("Admin user created: %s", email)

	case err != nil:
		log.Fatalf("Failed to look up %s: %v", email, err)

	default:
		if err := user.SetPassword(password); err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		if err := db.Model(&user).Update("password", user.Password).Error; err != nil {
			log.Fatalf("Failed to update password: %v", err)
		}
		log.Printf("Password reset for %s", email)
	}
}
