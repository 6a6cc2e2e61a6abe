// Package storage zawiera adapter trwałości: prosty magazyn
// klucz-wartość, do którego biblioteka odkłada całe kolekcje.
//
// Każda mutacja kolekcji zapisuje jej pełną zawartość pod stałym
// kluczem (pełne nadpisanie, bez zapisu przyrostowego). Konkretny
// nośnik jest wymienny - plik, SQLite, Firestore albo pamięć.
package storage

import "errors"

// Stałe klucze trzech kolekcji biblioteki
const (
	KeyBooks    = "library-books"
	KeyStudents = "library-students"
	KeyIssues   = "library-issued-books"
)

// ErrNotFound oznacza brak wartości pod danym kluczem
var ErrNotFound = errors.New("brak danych pod podanym kluczem")

// Backend to kontrakt magazynu klucz-wartość
//
// Load zwraca ErrNotFound gdy klucz nie istnieje. Save nadpisuje
// całą wartość. Close zwalnia zasoby nośnika.
type Backend interface {
	Load(key string) ([]byte, error)
	Save(key string, value []byte) error
	Close() error
}
