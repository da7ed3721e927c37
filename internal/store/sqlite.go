package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

type DBTX interface {
	Exec(query string, args ...any) (sql.Result, error)
	Prepare(query string) (*sql.Stmt, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// SQLiteStore keeps every key in a single kv table.
type SQLiteStore struct {
	db     DBTX
	driver string
}

func NewSQLite(dbPath string, driver string) (*SQLiteStore, error) {
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("can not create database directory %s: %w", dbDir, err)
	}

	db, err := sql.Open(driver, dsn(dbPath, driver))
	if err != nil {
		return nil, fmt.Errorf("can not open database : %w", err)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("can not connect with database : %w", err)
	}
	if err := runMigrations(db, driver); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database : %w", err)
	}

	return &SQLiteStore{db: db, driver: driver}, nil
}

func dsn(dbPath, driver string) string {
	if driver == DriverSQLite {
		return "file:" + dbPath + "?_pragma=busy_timeout(5000)"
	}
	return dbPath + "?_busy_timeout=5000"
}

func (s *SQLiteStore) Driver() string {
	return s.driver
}

func (s *SQLiteStore) ExecTx(fn func(*SQLiteStore) error) error {
	db, ok := s.db.(*sql.DB)
	if !ok {
		return fmt.Errorf("store is already in a transaction")
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}

	txStore := &SQLiteStore{db: tx, driver: s.driver}

	err = fn(txStore)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) Close() error {
	if db, ok := s.db.(*sql.DB); ok {
		return db.Close()
	}
	return nil
}

func (s *SQLiteStore) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
		}
		return "", fmt.Errorf("failed to query key '%s' : %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) Set(key, value string) error {
	stmt, err := s.db.Prepare(`
		INSERT INTO kv (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at;
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare SQL : %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.Exec(key, value, time.Now().Unix()); err != nil {
		return fmt.Errorf("failed to write key '%s' : %w", key, err)
	}
	return nil
}

// Delete removes all keys in one database transaction.
func (s *SQLiteStore) Delete(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	return s.ExecTx(func(tx *SQLiteStore) error {
		for _, key := range keys {
			if _, err := tx.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
				return fmt.Errorf("failed to delete key '%s' : %w", key, err)
			}
		}
		return nil
	})
}
