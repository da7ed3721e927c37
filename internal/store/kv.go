package store

import (
	"fmt"
	"path/filepath"
)

// KV is a durable string key-value store. Values are opaque to the store.
type KV interface {
	// Get returns ErrKeyNotFound when the key is absent.
	Get(key string) (string, error)
	Set(key, value string) error
	// Delete removes every given key; absent keys are not an error.
	Delete(keys ...string) error
	Close() error
}

const (
	DriverSQLite3 = "sqlite3" // mattn/go-sqlite3, cgo
	DriverSQLite  = "sqlite"  // modernc.org/sqlite, pure Go
	DriverMemory  = "memory"
)

var Drivers = []string{DriverSQLite3, DriverSQLite, DriverMemory}

// Open returns the KV backend for driver. path is ignored by the memory driver.
func Open(driver, path string) (KV, error) {
	switch driver {
	case DriverSQLite3, DriverSQLite:
		return NewSQLite(filepath.Clean(path), driver)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %q (must be one of %v)", ErrUnsupportedDriver, driver, Drivers)
	}
}
