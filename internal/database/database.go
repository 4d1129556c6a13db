// Package database provides the sqlite3-backed game store for go-arcade
package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite3 driver
)

// Database represents the main database connection
type Database struct {
	mainDB *sql.DB

	dbconfig *DBConfig
}

// DBConfig represents database configuration
type DBConfig struct {
	// Directory to store database files
	DataDir string

	// Connection pool settings
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	// Performance settings
	WALMode   bool   // Write-Ahead Logging
	SyncMode  string // OFF, NORMAL, FULL
	CacheSize int    // KB
	TempStore string // MEMORY, FILE
}

// DefaultDBConfig returns default database configuration
func DefaultDBConfig() (dbconfig *DBConfig) {
	return &DBConfig{
		DataDir:         "./data",
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: 0, // Unlimited for SQLite - connections don't need to be recycled
		WALMode:         true,
		SyncMode:        "NORMAL",
		CacheSize:       -2048, // 2MB cache
		TempStore:       "MEMORY",
	}
}

// OpenDatabase creates a new Database instance and runs schema migration
func OpenDatabase(dbconfig *DBConfig) (*Database, error) {
	if dbconfig == nil {
		dbconfig = DefaultDBConfig()
	}

	if err := os.MkdirAll(dbconfig.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dbconfig.DataDir, "arcade.sq3")
	mainDB, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open main database: %w", err)
	}

	// Configure connection pool
	mainDB.SetMaxOpenConns(dbconfig.MaxOpenConns)
	mainDB.SetMaxIdleConns(dbconfig.MaxIdleConns)
	mainDB.SetConnMaxLifetime(dbconfig.ConnMaxLifetime)

	db := &Database{
		mainDB:   mainDB,
		dbconfig: dbconfig,
	}

	if err := db.applySQLitePragmas(mainDB); err != nil {
		mainDB.Close()
		return nil, err
	}

	if err := db.migrate(); err != nil {
		mainDB.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database opened: %s", dbPath)
	return db, nil
}

// Close closes the database connection
func (db *Database) Close() error {
	return db.mainDB.Close()
}

func (db *Database) applySQLitePragmas(conn *sql.DB) error {
	pragmas := []string{
		fmt.Sprintf("PRAGMA cache_size = %d", db.dbconfig.CacheSize),
		fmt.Sprintf("PRAGMA synchronous = %s", db.dbconfig.SyncMode),
		fmt.Sprintf("PRAGMA temp_store = %s", db.dbconfig.TempStore),
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 30000", // 30 seconds
	}

	if db.dbconfig.WALMode {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL")
		pragmas = append(pragmas, "PRAGMA wal_autocheckpoint = 1000")
	}

	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute pragma '%s': %w", pragma, err)
		}
	}

	return nil
}

func (db *Database) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS games (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		genre TEXT NOT NULL DEFAULT '',
		rating REAL NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_games_title ON games(title);
	`
	if _, err := retryableExec(db.mainDB, schema); err != nil {
		return err
	}
	return nil
}
