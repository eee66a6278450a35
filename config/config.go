package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Cloudinary holds the remote image store credentials. Folder is the root
// path every upload is placed under.
type Cloudinary struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

type Config struct {
	Port          string
	DatabasePath  string
	AdminEmail    string
	AdminPassword string
	Cloudinary    Cloudinary
}

// Load builds the configuration once at startup. A .env file is honored when
// present; real environment variables win over it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getenv("PORT", "3000"),
		DatabasePath:  getenv("DATABASE_PATH", "database.db"),
		AdminEmail:    getenv("ADMIN_EMAIL", "admin@sintnew.com"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		Cloudinary: Cloudinary{
			CloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
			APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
			APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
			Folder:    getenv("CLOUDINARY_API_FOLDER", "sintnew"),
		},
	}

	if cfg.Cloudinary.CloudName == "" || cfg.Cloudinary.APIKey == "" || cfg.Cloudinary.APISecret == "" {
		return nil, fmt.Errorf("cloudinary credentials are not configured (CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY, CLOUDINARY_API_SECRET)")
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
