package storage

import "sync"

// MemoryBackend trzyma wartości wyłącznie w pamięci procesu.
// Używany w testach oraz jako tryb awaryjny bez trwałości.
type MemoryBackend struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryBackend tworzy pusty magazyn w pamięci
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		values: make(map[string][]byte),
	}
}

// Load wczytuje wartość spod klucza
func (m *MemoryBackend) Load(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}

	// Kopia, żeby wołający nie modyfikował wewnętrznego bufora
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Save zapisuje wartość pod kluczem
func (m *MemoryBackend) Save(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	m.values[key] = stored
	return nil
}

// Close nie ma nic do zwolnienia w magazynie pamięciowym
func (m *MemoryBackend) Close() error {
	return nil
}
