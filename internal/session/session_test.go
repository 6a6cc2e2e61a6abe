package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-library-system/internal/models"
)

func testUser() *models.User {
	return &models.User{ID: "student-1", Name: "Alice", Role: models.RoleStudent}
}

func TestCreateAndGet(t *testing.T) {
	manager := NewManager()

	sess, err := manager.Create(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID)
	assert.True(t, sess.ExpiresAt.After(time.Now()))

	found, ok := manager.Get(sess.ID)
	require.True(t, ok)
	assert.Equal(t, "student-1", found.User.ID)
	assert.Equal(t, models.RoleStudent, found.User.Role)
}

func TestGetUnknownSession(t *testing.T) {
	manager := NewManager()

	_, ok := manager.Get("nie-istnieje")
	assert.False(t, ok)
}

func TestGetExpiredSession(t *testing.T) {
	manager := NewManager()

	sess, err := manager.Create(testUser())
	require.NoError(t, err)

	// Cofnij termin ważności - wygasła sesja zachowuje się jak nieistniejąca
	sess.ExpiresAt = time.Now().Add(-time.Minute)

	_, ok := manager.Get(sess.ID)
	assert.False(t, ok)
}

func TestDelete(t *testing.T) {
	manager := NewManager()

	sess, err := manager.Create(testUser())
	require.NoError(t, err)

	manager.Delete(sess.ID)

	_, ok := manager.Get(sess.ID)
	assert.False(t, ok)
}

func TestFromRequest(t *testing.T) {
	manager := NewManager()

	sess, err := manager.Create(testUser())
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "session_id", Value: sess.ID})

	found, ok := manager.FromRequest(r)
	require.True(t, ok)
	assert.Equal(t, sess.ID, found.ID)
}

func TestFromRequestWithoutCookie(t *testing.T) {
	manager := NewManager()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := manager.FromRequest(r)
	assert.False(t, ok)
}

func TestSetAndClearCookie(t *testing.T) {
	w := httptest.NewRecorder()
	SetCookie(w, "abc123")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session_id", cookies[0].Name)
	assert.Equal(t, "abc123", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	w = httptest.NewRecorder()
	ClearCookie(w)

	cookies = w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestSessionIDsAreUnique(t *testing.T) {
	manager := NewManager()

	first, err := manager.Create(testUser())
	require.NoError(t, err)
	second, err := manager.Create(testUser())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}
