package database

import (
	"strings"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// sqliteParams are appended to every file DSN: enforce foreign keys, wait on
// locks instead of failing, and use write-ahead logging.
const sqliteParams = "_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL"

// Config holds database configuration
type Config struct {
	// Path is the SQLite database file, or MemoryPath.
	Path string
}

// NewConfig creates a new database configuration
func NewConfig(path string) *Config {
	if strings.TrimSpace(path) == "" {
		path = "orbit.db"
	}
	return &Config{Path: path}
}

// IsMemory reports whether the database lives only in memory.
func (c *Config) IsMemory() bool {
	return c.Path == MemoryPath || strings.Contains(c.Path, "mode=memory")
}

// DSN returns the SQLite connection string
func (c *Config) DSN() string {
	if c.Path == MemoryPath {
		return "file::memory:?_foreign_keys=on"
	}
	return c.Path + separator(c.Path) + sqliteParams
}

// MigrateURL returns the database URL understood by golang-migrate.
func (c *Config) MigrateURL() string {
	return "sqlite3://" + c.Path + separator(c.Path) + "_foreign_keys=on"
}

func separator(path string) string {
	if strings.Contains(path, "?") {
		return "&"
	}
	return "?"
}
