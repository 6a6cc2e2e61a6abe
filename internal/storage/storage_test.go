package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTrip sprawdza kontrakt adaptera trwałości wspólny dla
// wszystkich implementacji
func roundTrip(t *testing.T, backend Backend) {
	t.Helper()

	// Nieznany klucz zgłasza ErrNotFound
	_, err := backend.Load("library-books")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, backend.Save("library-books", []byte(`[{"id":"book-1"}]`)))

	data, err := backend.Load("library-books")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"book-1"}]`), data)

	// Zapis pod istniejącym kluczem nadpisuje całą wartość
	require.NoError(t, backend.Save("library-books", []byte(`[]`)))

	data, err = backend.Load("library-books")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), data)

	// Klucze są niezależne
	_, err = backend.Load("library-students")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryBackend(t *testing.T) {
	backend := NewMemoryBackend()
	defer backend.Close()

	roundTrip(t, backend)
}

func TestMemoryBackendCopiesValues(t *testing.T) {
	backend := NewMemoryBackend()

	original := []byte(`[1,2,3]`)
	require.NoError(t, backend.Save("library-books", original))

	// Modyfikacja bufora wołającego nie zmienia zapisanej wartości
	original[1] = 'x'

	data, err := backend.Load("library-books")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1,2,3]`), data)
}

func TestFileBackend(t *testing.T) {
	backend, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)
	defer backend.Close()

	roundTrip(t, backend)
}

func TestFileBackendCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	backend, err := NewFileBackend(dir)
	require.NoError(t, err)
	require.NoError(t, backend.Save("library-books", []byte(`[]`)))

	// Klucz ląduje jako plik JSON w katalogu danych
	_, err = os.Stat(filepath.Join(dir, "library-books.json"))
	assert.NoError(t, err)
}

func TestFileBackendRequiresDir(t *testing.T) {
	_, err := NewFileBackend("")
	assert.Error(t, err)
}

func TestSQLiteBackend(t *testing.T) {
	backend, err := NewSQLiteBackend(filepath.Join(t.TempDir(), "library.db"))
	require.NoError(t, err)
	defer backend.Close()

	roundTrip(t, backend)
}

func TestSQLiteBackendSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.db")

	backend, err := NewSQLiteBackend(path)
	require.NoError(t, err)
	require.NoError(t, backend.Save("library-issued-books", []byte(`[]`)))
	require.NoError(t, backend.Close())

	reopened, err := NewSQLiteBackend(path)
	require.NoError(t, err)
	defer reopened.Close()

	data, err := reopened.Load("library-issued-books")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), data)
}
