package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteBackend przechowuje klucze w jednej tabeli kv bazy SQLite
type SQLiteBackend struct {
	db *sql.DB
}

// NewSQLiteBackend otwiera (lub tworzy) bazę SQLite pod podaną
// ścieżką i zakłada schemat magazynu
func NewSQLiteBackend(dbPath string) (*SQLiteBackend, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("ścieżka bazy SQLite nie może być pusta")
	}

	// Upewnij się że katalog istnieje, żeby pierwszy start się powiódł
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("błąd tworzenia katalogu bazy: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("błąd otwierania bazy SQLite: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value BLOB NOT NULL
	);`); err != nil {
		db.Close()
		return nil, fmt.Errorf("błąd tworzenia schematu: %w", err)
	}

	return &SQLiteBackend{db: db}, nil
}

// Load wczytuje wartość spod klucza
func (s *SQLiteBackend) Load(key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("błąd odczytu z bazy SQLite: %w", err)
	}
	return value, nil
}

// Save zapisuje wartość pod kluczem (upsert)
func (s *SQLiteBackend) Save(key string, value []byte) error {
	_, err := s.db.Exec(`INSERT INTO kv(key, value) VALUES(?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("błąd zapisu do bazy SQLite: %w", err)
	}
	return nil
}

// Close zamyka połączenie z bazą
func (s *SQLiteBackend) Close() error {
	return s.db.Close()
}
