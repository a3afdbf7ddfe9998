package db

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"vibe-awards/internal/config"
)

// Open connects to the SQLite database at cfg.DatabasePath.
// foreign_keys is switched on per connection; busy_timeout keeps
// concurrent writers from surfacing SQLITE_BUSY to callers.
func Open(cfg config.Config) (*gorm.DB, error) {
	if cfg.DatabasePath == "" {
		return nil, errors.New("database path is not set")
	}
	dsn := fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", cfg.DatabasePath)
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.DBConnMaxLifetimeSeconds) * time.Second)
	sqlDB.SetConnMaxIdleTime(time.Duration(cfg.DBConnMaxIdleTimeSeconds) * time.Second)
	return conn, nil
}

// Migrate runs GORM auto-migrations for the core tables.
func Migrate(conn *gorm.DB) error {
	if conn == nil {
		return errors.New("db connection is nil")
	}
	if err := conn.AutoMigrate(
		&User{},
		&App{},
		&AppScreenshot{},
		&AppFeature{},
		&Battle{},
		&Vote{},
		&AppLike{},
		&Nomination{},
		&Review{},
		&CollaborationPost{},
		&CollaborationInterest{},
		&EngagementEvent{},
	); err != nil {
		return err
	}
	slog.Info("database migration complete")
	return nil
}
