package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileBackend przechowuje każdy klucz w osobnym pliku JSON
// w katalogu danych. Domyślny nośnik aplikacji.
type FileBackend struct {
	dir string
}

// NewFileBackend tworzy magazyn plikowy w podanym katalogu
func NewFileBackend(dir string) (*FileBackend, error) {
	if dir == "" {
		return nil, fmt.Errorf("katalog danych nie może być pusty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("błąd tworzenia katalogu danych: %w", err)
	}
	return &FileBackend{dir: dir}, nil
}

// Load wczytuje wartość spod klucza
func (f *FileBackend) Load(key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("błąd odczytu pliku danych: %w", err)
	}
	return data, nil
}

// Save zapisuje wartość pod kluczem
//
// Zapis idzie przez plik tymczasowy i rename, żeby przerwany
// zapis nie zostawił uciętego pliku.
func (f *FileBackend) Save(key string, value []byte) error {
	tmp := f.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("błąd zapisu pliku danych: %w", err)
	}
	if err := os.Rename(tmp, f.path(key)); err != nil {
		return fmt.Errorf("błąd podmiany pliku danych: %w", err)
	}
	return nil
}

// Close nie ma nic do zwolnienia w magazynie plikowym
func (f *FileBackend) Close() error {
	return nil
}

func (f *FileBackend) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}
