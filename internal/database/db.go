package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/BobbyBoy101/natureScape/internal/config"
	"github.com/BobbyBoy101/natureScape/pkg/logger"
)

var DB *gorm.DB

// Open opens a SQLite database at the given path with WAL mode and a
// single-writer connection pool, and migrates the schema. Tests pass an
// in-memory DSN ("file::memory:").
func Open(path string) (*gorm.DB, error) {
	// WAL mode enables concurrent readers and a single writer without locking
	// the entire file. busy_timeout makes the driver wait for the lock instead
	// of failing immediately.
	dsn := fmt.Sprintf(
		"%s?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL",
		path,
	)

	gormConfig := &gorm.Config{
		Logger:                 gormLogger.Default.LogMode(gormLogger.Silent),
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
	}

	db, err := gorm.Open(sqlite.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := configurePool(db); err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// InitDB initializes the shared SQLite connection from configuration.
// The application terminates if the connection cannot be established.
func InitDB() {
	dbPath := config.AppConfig.Database.Path

	if err := ensureDir(dbPath); err != nil {
		log.Fatalf("[FATAL] Failed to ensure database directory: %v", err)
	}

	var err error
	DB, err = Open(dbPath)
	if err != nil {
		log.Fatalf("[FATAL] Database connection failed: %v", err)
	}

	logger.LogInfo("Database initialized successfully")
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0750)
	}
	return nil
}

func configurePool(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("retrieve generic database interface: %w", err)
	}

	// Limit concurrency to prevent disk I/O throttling on the single SQLite file.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)
	return nil
}

// Migrate creates or updates the users, photos and locations tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&User{}, &Photo{}, &Location{}); err != nil {
		return fmt.Errorf("schema migration: %w", err)
	}

	// Raw SQL is used here to ensure idempotent index creation. The
	// (area, state) index matches the location lookup key; it is
	// deliberately not unique (see Location).
	indices := []string{
		"CREATE INDEX IF NOT EXISTS idx_locations_area_state ON locations(area, state);",
		"CREATE INDEX IF NOT EXISTS idx_photos_user_id ON photos(user_id);",
	}

	for _, idx := range indices {
		if err := db.Exec(idx).Error; err != nil {
			logger.LogWarn("Failed to create index: %v", err)
		}
	}
	return nil
}

// Reset drops the seeded tables and recreates the schema. Used by the seed
// command's --drop flag to mirror a fresh database.
func Reset(db *gorm.DB) error {
	if err := db.Migrator().DropTable(&Photo{}, &Location{}, &User{}); err != nil {
		return fmt.Errorf("drop tables: %w", err)
	}
	return Migrate(db)
}
