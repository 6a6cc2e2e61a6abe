package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/joho/godotenv"

	"student-library-system/internal/library"
	"student-library-system/internal/storage"
)

// Resetuje katalog książek do przykładowego zestawu.
// Studenci i wypożyczenia pozostają nietknięci.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Brak pliku .env - używam zmiennych systemowych")
	}

	backend, err := newBackend(os.Getenv("STORAGE_BACKEND"))
	if err != nil {
		log.Fatalf("Błąd inicjalizacji magazynu danych: %v", err)
	}
	defer backend.Close()

	books := library.SeedBooks()

	data, err := json.Marshal(books)
	if err != nil {
		log.Fatalf("Błąd serializacji katalogu: %v", err)
	}

	if err := backend.Save(storage.KeyBooks, data); err != nil {
		log.Fatalf("Błąd zapisu katalogu: %v", err)
	}

	for _, book := range books {
		log.Printf("Dodano: %s - %s", book.Title, book.Author)
	}
	log.Printf("Katalog zresetowany do %d przykładowych książek", len(books))
}

func newBackend(kind string) (storage.Backend, error) {
	switch kind {
	case "", "file":
		return storage.NewFileBackend(envOrDefault("DATA_DIR", "./data"))
	case "sqlite":
		return storage.NewSQLiteBackend(envOrDefault("SQLITE_PATH", "./data/library.db"))
	case "firestore":
		return storage.NewFirestoreBackend(context.Background())
	default:
		return storage.NewMemoryBackend(), nil
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
