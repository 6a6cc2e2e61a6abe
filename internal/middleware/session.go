package middleware

import (
	"context"
	"net/http"

	"student-library-system/internal/models"
	"student-library-system/internal/session"
)

type contextKey string

const sessionContextKey contextKey = "session"

// WithSession dodaje sesję do kontekstu żądania jeśli istnieje
func WithSession(manager *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if sess, exists := manager.FromRequest(r); exists {
				ctx := context.WithValue(r.Context(), sessionContextKey, sess)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth wymaga zalogowanego użytkownika
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if SessionFromContext(r.Context()) == nil {
			http.Error(w, `{"error":"wymagane zalogowanie"}`, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuthRole wymaga zalogowania i określonej roli
func RequireAuthRole(role models.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := SessionFromContext(r.Context())
			if sess == nil {
				http.Error(w, `{"error":"wymagane zalogowanie"}`, http.StatusUnauthorized)
				return
			}

			if sess.User.Role != role {
				http.Error(w, `{"error":"brak uprawnień"}`, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// SessionFromContext pobiera sesję z kontekstu
func SessionFromContext(ctx context.Context) *session.Session {
	sess, ok := ctx.Value(sessionContextKey).(*session.Session)
	if !ok {
		return nil
	}
	return sess
}

// UserFromContext pobiera tożsamość użytkownika z kontekstu
func UserFromContext(ctx context.Context) *models.User {
	sess := SessionFromContext(ctx)
	if sess == nil {
		return nil
	}
	return sess.User
}
