package database

import (
	"fmt"
	"time"

	"gameatlas/backend/internal/models"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Open connects to Postgres and runs migrations.
func Open(dsn string) (*gorm.DB, error) {
	// Configure GORM logger
	gormLogger := logger.New(
		&log.Logger,
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(&models.User{}, &models.Tag{}, &models.Game{}, &models.DiscoveryList{})
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Connect initializes DB, exiting on failure.
func Connect(dsn string) {
	db, err := Open(dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("Database setup failed")
	}
	DB = db
	log.Info().Msg("Database connected and migrated")
}
