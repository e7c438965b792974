package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arinkulshi/diet-recommendation-tool/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB opens the storage handle described by cfg. The caller owns the
// returned handle and must release it with CloseDB.
func OpenDB(cfg *Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel(cfg.DBLogLevel))}

	switch cfg.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost,
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBName,
			cfg.DBPort,
		)
		db, err := gorm.Open(postgres.Open(dsn), gcfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		return db, nil
	case "sqlite", "":
		return OpenSQLite(cfg.DBPath, gcfg)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

// OpenSQLite opens a SQLite file with foreign keys enforced and WAL enabled.
func OpenSQLite(path string, gcfg *gorm.Config) (*gorm.DB, error) {
	if gcfg == nil {
		gcfg = &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}
	dsn := path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := gorm.Open(sqlite.Open(dsn), gcfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite %s: %w", path, err)
	}
	return db, nil
}

// Migrate creates or updates the foods, users and favorites tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Food{},
		&models.User{},
		&models.Favorite{},
	); err != nil {
		return fmt.Errorf("AutoMigrate failed: %w", err)
	}
	return nil
}

func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func logLevel(s string) logger.LogLevel {
	switch strings.ToLower(s) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
