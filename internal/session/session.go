package session

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"sync"
	"time"

	"student-library-system/internal/models"
)

const (
	sessionCookieName = "session_id"
	sessionDuration   = 24 * time.Hour
)

// Session reprezentuje sesję użytkownika
//
// Sesje żyją wyłącznie w pamięci procesu - restart aplikacji
// wylogowuje wszystkich i wymaga ponownego logowania.
type Session struct {
	ID        string
	User      *models.User
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Manager zarządza sesjami użytkowników
type Manager struct {
	sessions map[string]*Session
	mu       sync.RWMutex
}

// NewManager tworzy manager sesji i uruchamia czyszczenie wygasłych
// sesji co godzinę
func NewManager() *Manager {
	m := &Manager{
		sessions: make(map[string]*Session),
	}

	go m.cleanupExpiredSessions()

	return m
}

// Create tworzy nową sesję dla tożsamości użytkownika
func (m *Manager) Create(user *models.User) (*Session, error) {
	sessionID, err := generateSessionID()
	if err != nil {
		return nil, err
	}

	sess := &Session{
		ID:        sessionID,
		User:      user,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(sessionDuration),
	}

	m.mu.Lock()
	m.sessions[sessionID] = sess
	m.mu.Unlock()

	return sess, nil
}

// Get pobiera sesję po ID
func (m *Manager) Get(sessionID string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sess, exists := m.sessions[sessionID]
	if !exists {
		return nil, false
	}

	// Sprawdź czy sesja nie wygasła
	if time.Now().After(sess.ExpiresAt) {
		return nil, false
	}

	return sess, true
}

// Delete usuwa sesję
func (m *Manager) Delete(sessionID string) {
	m.mu.Lock()
	delete(m.sessions, sessionID)
	m.mu.Unlock()
}

// FromRequest pobiera sesję z ciasteczka żądania
func (m *Manager) FromRequest(r *http.Request) (*Session, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return nil, false
	}
	return m.Get(cookie.Value)
}

// SetCookie ustawia ciasteczko z ID sesji
func SetCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(sessionDuration.Seconds()),
		HttpOnly: true,
		Secure:   false, // w produkcji ustaw na true (HTTPS)
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie usuwa ciasteczko z sesją
func ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// cleanupExpiredSessions usuwa wygasłe sesje co godzinę
func (m *Manager) cleanupExpiredSessions() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		m.mu.Lock()
		now := time.Now()
		for id, sess := range m.sessions {
			if now.After(sess.ExpiresAt) {
				delete(m.sessions, id)
			}
		}
		m.mu.Unlock()
	}
}

// generateSessionID generuje losowy ID sesji
func generateSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
