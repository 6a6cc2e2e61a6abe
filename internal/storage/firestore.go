package storage

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// StateCollection to nazwa kolekcji Firestore z zawartością magazynu.
	// Każdy klucz biblioteki to jeden dokument z pełnym ładunkiem kolekcji.
	StateCollection = "library_state"
)

// FirestoreBackend przechowuje klucze jako dokumenty w Firestore
type FirestoreBackend struct {
	client *firestore.Client
	ctx    context.Context
}

// stateDocument to kształt dokumentu z ładunkiem jednego klucza
type stateDocument struct {
	Payload []byte `firestore:"payload"`
}

// NewFirestoreBackend inicjalizuje klienta Firebase i magazyn Firestore
//
// Poświadczenia pochodzą z pliku (FIREBASE_CREDENTIALS_PATH, rozwój
// lokalny) albo z JSON w zmiennej środowiskowej
// (FIREBASE_CREDENTIALS_JSON, produkcja).
func NewFirestoreBackend(ctx context.Context) (*FirestoreBackend, error) {
	var app *firebase.App
	var err error

	credentialsPath := os.Getenv("FIREBASE_CREDENTIALS_PATH")
	if credentialsPath != "" {
		// Tryb lokalny - użyj pliku
		if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("plik credentials nie istnieje: %s", credentialsPath)
		}
		opt := option.WithCredentialsFile(credentialsPath)
		app, err = firebase.NewApp(ctx, nil, opt)
		if err != nil {
			return nil, fmt.Errorf("błąd inicjalizacji Firebase App: %w", err)
		}
	} else {
		// Tryb produkcyjny - użyj JSON z zmiennej środowiskowej
		credentialsJSON := os.Getenv("FIREBASE_CREDENTIALS_JSON")
		if credentialsJSON == "" {
			return nil, fmt.Errorf("brak zmiennej środowiskowej FIREBASE_CREDENTIALS_PATH lub FIREBASE_CREDENTIALS_JSON")
		}
		opt := option.WithCredentialsJSON([]byte(credentialsJSON))
		app, err = firebase.NewApp(ctx, nil, opt)
		if err != nil {
			return nil, fmt.Errorf("błąd inicjalizacji Firebase App: %w", err)
		}
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("błąd inicjalizacji Firestore: %w", err)
	}

	return &FirestoreBackend{client: client, ctx: ctx}, nil
}

// Load wczytuje wartość spod klucza
func (f *FirestoreBackend) Load(key string) ([]byte, error) {
	doc, err := f.client.Collection(StateCollection).Doc(key).Get(f.ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("błąd pobierania dokumentu %s: %w", key, err)
	}

	var state stateDocument
	if err := doc.DataTo(&state); err != nil {
		return nil, fmt.Errorf("błąd parsowania dokumentu %s: %w", key, err)
	}
	return state.Payload, nil
}

// Save zapisuje wartość pod kluczem (pełne nadpisanie dokumentu)
func (f *FirestoreBackend) Save(key string, value []byte) error {
	_, err := f.client.Collection(StateCollection).Doc(key).Set(f.ctx, stateDocument{Payload: value})
	if err != nil {
		return fmt.Errorf("błąd zapisywania dokumentu %s: %w", key, err)
	}
	return nil
}

// Close zamyka połączenie z Firestore
func (f *FirestoreBackend) Close() error {
	return f.client.Close()
}
