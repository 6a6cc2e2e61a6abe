package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"student-library-system/internal/handlers"
	"student-library-system/internal/library"
	"student-library-system/internal/session"
	"student-library-system/internal/storage"
)

func main() {
	// Wczytaj zmienne środowiskowe z pliku .env
	if err := godotenv.Load(); err != nil {
		log.Println("Brak pliku .env - używam zmiennych systemowych")
	}

	port := envOrDefault("PORT", "8080")

	// Wybór adaptera trwałości
	backend, err := newBackend(os.Getenv("STORAGE_BACKEND"))
	if err != nil {
		log.Fatalf("Błąd inicjalizacji magazynu danych: %v", err)
	}

	// Magazyn stanu biblioteki - jedna instancja na proces,
	// jawnie inicjalizowana tutaj i opróżniana przy zamknięciu
	lib, err := library.New(backend,
		envOrDefault("ADMIN_USERNAME", "admin"),
		envOrDefault("ADMIN_PASSWORD", "123"))
	if err != nil {
		log.Fatalf("Błąd inicjalizacji biblioteki: %v", err)
	}

	// System sesji (tylko w pamięci - restart wylogowuje wszystkich)
	sessions := session.NewManager()
	log.Println("System sesji zainicjalizowany")

	server := &http.Server{
		Addr:    ":" + port,
		Handler: handlers.NewRouter(lib, sessions),
	}

	// Start serwera w tle, zamknięcie po SIGINT/SIGTERM
	go func() {
		log.Printf("Serwer uruchomiony na porcie %s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Nie można uruchomić serwera: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Zamykanie serwera...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Błąd zamykania serwera: %v", err)
	}

	// Ostatni zapis stanu przed zamknięciem nośnika
	if err := lib.Flush(); err != nil {
		log.Printf("Błąd zapisu stanu: %v", err)
	}
	if err := backend.Close(); err != nil {
		log.Printf("Błąd zamykania magazynu danych: %v", err)
	}

	log.Println("Serwer zatrzymany")
}

// newBackend tworzy adapter trwałości wskazany w konfiguracji
func newBackend(kind string) (storage.Backend, error) {
	switch kind {
	case "", "file":
		return storage.NewFileBackend(envOrDefault("DATA_DIR", "./data"))
	case "sqlite":
		return storage.NewSQLiteBackend(envOrDefault("SQLITE_PATH", "./data/library.db"))
	case "firestore":
		return storage.NewFirestoreBackend(context.Background())
	case "memory":
		log.Println("UWAGA: magazyn w pamięci - dane nie przetrwają restartu")
		return storage.NewMemoryBackend(), nil
	default:
		return nil, errors.New("nieznany magazyn danych: " + kind)
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
