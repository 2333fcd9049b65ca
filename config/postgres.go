package config

import (
	"errors"
	"os"
	"time"

	"github.com/joblens/joblens/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var PostgresDB *gorm.DB

func InitPostgres() error {
	uri := os.Getenv("POSTGRES_URI")
	if uri == "" {
		uri = os.Getenv("DATABASE_URL")
	}
	if uri == "" {
		return errors.New("POSTGRES_URI environment variable is not set")
	}
	db, err := gorm.Open(postgres.Open(uri), &gorm.Config{})
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	// Connection Pooling settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	PostgresDB = db
	return nil
}

// Migrate creates or updates the application's tables.
func Migrate() error {
	if PostgresDB == nil {
		return errors.New("postgres is not initialized")
	}
	return PostgresDB.AutoMigrate(
		&models.Posting{},
		&models.TrackerRecord{},
		&models.UserJobLink{},
		&models.CompanyRecord{},
		&models.UserConfig{},
		&models.FilterPreset{},
		&models.SearchPreset{},
	)
}
