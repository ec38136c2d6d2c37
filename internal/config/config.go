package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN         string
	ServerPort    string
	SessionSecret string

	// OwnerOpenID is always promoted to admin on upsert.
	OwnerOpenID string

	// Seed credentials for the default admin account.
	AdminUsername string
	AdminPassword string

	// AdminEmail receives the admin-facing notifications.
	AdminEmail string

	// StrictRedemptionTransitions turns on the transition table for
	// redemption status updates. Off by default: the legacy behavior
	// allows any status to follow any other.
	StrictRedemptionTransitions bool
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBDSN:         os.Getenv("DB_DSN"),
		ServerPort:    os.Getenv("SERVER_PORT"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		OwnerOpenID:   os.Getenv("OWNER_OPEN_ID"),
		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),

		StrictRedemptionTransitions: os.Getenv("STRICT_REDEMPTION_TRANSITIONS") == "true",
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET is not set")
	}
	if cfg.AdminUsername == "" {
		cfg.AdminUsername = "admin@eizer.local"
	}
	if cfg.AdminEmail == "" {
		cfg.AdminEmail = cfg.AdminUsername
	}

	return cfg
}
