package repositories

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"blogapi/app/models"
)

var (
	ErrNotFound = errors.New("record not found")
)

// Open connects to the database named by dbURL and migrates the blog
// schema. The URL scheme selects the driver: "sqlite://<path>" or
// "postgres://<dsn>". An empty URL defaults to a local SQLite file.
func Open(dbURL string) (*gorm.DB, error) {
	if dbURL == "" {
		dbURL = "sqlite://blog.db"
		log.Println("DATABASE_URL not set, defaulting to 'sqlite://blog.db'")
	}

	var dialector gorm.Dialector
	switch {
	case strings.HasPrefix(dbURL, "postgres://"):
		dialector = postgres.Open(strings.TrimPrefix(dbURL, "postgres://"))
	case strings.HasPrefix(dbURL, "sqlite://"):
		dialector = sqlite.Open(strings.TrimPrefix(dbURL, "sqlite://"))
	default:
		return nil, fmt.Errorf("invalid DATABASE_URL %q: must start with 'postgres://' or 'sqlite://'", dbURL)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.Post{}, &models.Comment{}); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return db, nil
}
