package database

import (
	"fmt"
	"time"

	"or-caseflow-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	AutoMigrate     bool
}

// Initialize opens a Postgres connection, creates the schema from GORM models
// and seeds the fixed rows (counter, default rooms) a fresh board needs.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}
	if !opts.AutoMigrate {
		opts.AutoMigrate = true
	}

	// Open DB
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	// Ensure required extension for UUID generation (used by BaseModel default gen_random_uuid())
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error

	if opts.AutoMigrate {
		all := []interface{}{
			&models.ORRoom{},
			&models.CaseRecord{},
			&models.BoardCounter{},
			&models.CaseEvent{},
		}
		if err := db.AutoMigrate(all...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
		if err := seed(db); err != nil {
			return nil, fmt.Errorf("seed: %w", err)
		}
	}

	return db, nil
}

// seed inserts the single counter row and the default room list when absent
func seed(db *gorm.DB) error {
	counter := models.BoardCounter{ID: models.BoardCounterRowID, Seq: 0}
	if err := db.Where(models.BoardCounter{ID: models.BoardCounterRowID}).
		FirstOrCreate(&counter).Error; err != nil {
		return err
	}

	var roomCount int64
	if err := db.Model(&models.ORRoom{}).Count(&roomCount).Error; err != nil {
		return err
	}
	if roomCount == 0 {
		for i, name := range models.DefaultORRooms {
			room := models.ORRoom{Name: name, Position: i}
			if err := db.Create(&room).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
