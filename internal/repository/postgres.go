package repository

import (
	"context"
	"fmt"

	"astropredict/internal/domain/models"
	"astropredict/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database holds the GORM connection shared by the stores.
type Database struct {
	db *gorm.DB
}

// Connect establishes the Postgres connection and migrates the schema.
func Connect(cfg *config.Config) (*Database, error) {
	dsn := fmt.Sprintf("host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.Name,
		cfg.Database.User, cfg.Database.Password, cfg.Database.SSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err := db.AutoMigrate(
		&models.UserProfile{},
		&models.BirthChart{},
		&models.UserMetric{},
		&models.Prediction{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return &Database{db: db}, nil
}

// DB returns the underlying GORM instance.
func (d *Database) DB() *gorm.DB {
	return d.db
}

// Ping verifies the connection is alive.
func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the database connection.
func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
