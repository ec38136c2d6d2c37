package database

import (
	"errors"
	"log"
	"sync"

	"eizer/internal/auth"
	"eizer/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ErrUnavailable is returned by every mutation attempted while no store is
// reachable. Reads do not return it: they log a warning and degrade to empty
// results so the app can come up without a database.
var ErrUnavailable = errors.New("database not available")

type Options struct {
	DSN string

	// OwnerOpenID is promoted to admin on upsert when no explicit role is
	// supplied.
	OwnerOpenID string

	// Seed credentials for the default admin, created once after the first
	// successful connect if no admin exists yet.
	AdminUsername string
	AdminPassword string
}

// Store is the sole gateway to the relational store. It is constructed once
// in main and passed down. The connection is established lazily and memoized;
// a failed attempt leaves the store unavailable and is retried on the next
// call rather than crashing the process.
type Store struct {
	opts      Options
	dialector gorm.Dialector

	mu sync.Mutex
	db *gorm.DB
}

func New(opts Options) *Store {
	return &Store{opts: opts}
}

// NewWithDialector lets tests supply their own dialector (in-memory sqlite).
func NewWithDialector(d gorm.Dialector, opts Options) *Store {
	return &Store{opts: opts, dialector: d}
}

// handle returns the memoized connection, attempting to establish it first
// if needed. Returns nil while the store is unavailable.
func (s *Store) handle() *gorm.DB {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db
	}

	d := s.dialector
	if d == nil {
		if s.opts.DSN == "" {
			return nil
		}
		d = postgres.Open(s.opts.DSN)
	}

	db, err := gorm.Open(d, &gorm.Config{})
	if err != nil {
		log.Printf("[database] failed to connect: %v", err)
		return nil
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Fundraiser{},
		&models.MachineLocation{},
		&models.CreditCardMachine{},
		&models.RedemptionRequest{},
		&models.AuditLog{},
	); err != nil {
		log.Printf("[database] failed to migrate: %v", err)
		return nil
	}

	s.db = db
	s.seedDefaultAdmin(db)

	return s.db
}

// Available reports whether the store can currently serve queries.
func (s *Store) Available() bool {
	return s.handle() != nil
}

// seedDefaultAdmin creates the bootstrap admin account so a fresh deployment
// is reachable. Skipped when any admin already exists or no seed password is
// configured.
func (s *Store) seedDefaultAdmin(db *gorm.DB) {
	if s.opts.AdminUsername == "" || s.opts.AdminPassword == "" {
		return
	}

	var count int64
	if err := db.Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).
		Count(&count).Error; err != nil {
		log.Printf("[database] failed to check admin user: %v", err)
		return
	}
	if count > 0 {
		return
	}

	hash := auth.HashPassword(s.opts.AdminPassword)
	admin := models.User{
		OpenID:      s.opts.AdminUsername,
		Name:        s.opts.AdminUsername,
		Email:       s.opts.AdminUsername,
		LoginMethod: "password",
		Role:        models.RoleAdmin,
		Password:    &hash,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Printf("[database] failed to create default admin: %v", err)
		return
	}

	log.Printf("[database] created default admin user: %s", s.opts.AdminUsername)
}
