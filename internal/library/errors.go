package library

import "errors"

// Błędy reguł biblioteki zwracane ze ścieżki zapisu
//
// Kontrole unikalności i spójności referencyjnej żyją w magazynie
// stanu, nie u wołających - handler tylko tłumaczy błąd na komunikat
// widoczny dla użytkownika.
var (
	ErrInvalidCredentials = errors.New("nieprawidłowa nazwa użytkownika lub hasło")
	ErrDuplicateISBN      = errors.New("książka z tym numerem ISBN już istnieje")
	ErrDuplicateUsername  = errors.New("ta nazwa użytkownika jest już zajęta")
	ErrBookNotFound       = errors.New("książka nie została znaleziona")
	ErrStudentNotFound    = errors.New("student nie został znaleziony")
	ErrBookUnavailable    = errors.New("książka nie jest dostępna do wypożyczenia")
	ErrBookIssued         = errors.New("książka jest obecnie wypożyczona i nie może zostać usunięta")
	ErrStudentHasBooks    = errors.New("student ma wypożyczone książki - najpierw muszą zostać zwrócone")
)
