package db

import (
	"errors"
	"log"
	"os"
	"path/filepath"

	"sintnew/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ErrNotFound is returned by store functions when the referenced row does
// not exist. Callers treat it as fatal to the request.
var ErrNotFound = errors.New("record not found")

func InitDatabase(dbPath string) {
	var err error

	// Ensure the directory exists (create if it doesn't)
	dir := filepath.Dir(dbPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatal("Failed to create database directory:", err)
		}
	}

	// Check if the database file exists
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		log.Println("Database file does not exist, creating:", dbPath)
		file, err := os.Create(dbPath)
		if err != nil {
			log.Fatal("Failed to create database file:", err)
		}
		file.Close()
	}

	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	log.Println("Database connected successfully at", dbPath)

	// Auto migrate the schema
	DB.AutoMigrate(
		&models.User{}, &models.Category{}, &models.Product{},
	)
}

// Seed creates the administrator account when it does not exist yet. A blank
// password skips seeding so a deployment can manage users out of band.
func Seed(adminEmail, adminPassword string) error {
	if adminPassword == "" {
		return nil
	}

	var count int64
	if err := DB.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	log.Println("Seeding administrator account:", adminEmail)
	return DB.Create(&models.User{Email: adminEmail, PasswordHash: string(hash)}).Error
}
