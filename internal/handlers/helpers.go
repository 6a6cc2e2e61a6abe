package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"student-library-system/internal/library"
)

// respondJSON serializuje odpowiedź i ustawia nagłówki
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Błąd serializacji odpowiedzi: %v", err)
	}
}

// respondError zamienia błąd biblioteki na komunikat widoczny dla
// użytkownika (odpowiednik powiadomienia w interfejsie)
func respondError(w http.ResponseWriter, err error) {
	respondJSON(w, statusForError(err), map[string]string{"error": err.Error()})
}

// statusForError mapuje błędy reguł biblioteki na kody HTTP
func statusForError(err error) int {
	switch {
	case errors.Is(err, library.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, library.ErrBookNotFound),
		errors.Is(err, library.ErrStudentNotFound):
		return http.StatusNotFound
	case errors.Is(err, library.ErrDuplicateISBN),
		errors.Is(err, library.ErrDuplicateUsername),
		errors.Is(err, library.ErrBookUnavailable),
		errors.Is(err, library.ErrBookIssued),
		errors.Is(err, library.ErrStudentHasBooks):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// decodeBody parsuje ciało żądania JSON
func decodeBody(r *http.Request, out interface{}) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		return errors.New("nieprawidłowe ciało żądania")
	}
	return nil
}
