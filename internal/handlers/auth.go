package handlers

import (
	"log"
	"net/http"

	"student-library-system/internal/library"
	"student-library-system/internal/middleware"
	"student-library-system/internal/models"
	"student-library-system/internal/session"
)

// AuthHandler obsługuje logowanie, rejestrację i wylogowanie
type AuthHandler struct {
	lib      *library.Library
	sessions *session.Manager
}

// NewAuthHandler tworzy nowy handler autoryzacji
func NewAuthHandler(lib *library.Library, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{lib: lib, sessions: sessions}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginAdmin obsługuje logowanie administratora (POST /login/admin)
func (h *AuthHandler) LoginAdmin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	user, err := h.lib.LoginAdmin(req.Username, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	h.startSession(w, user)
}

// LoginStudent obsługuje logowanie studenta (POST /login/student)
func (h *AuthHandler) LoginStudent(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	user, err := h.lib.AuthenticateStudent(req.Username, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	h.startSession(w, user)
}

// Register obsługuje samodzielną rejestrację studenta (POST /register)
//
// Po udanej rejestracji student jest od razu zalogowany.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var student models.Student
	if err := decodeBody(r, &student); err != nil {
		respondError(w, err)
		return
	}

	if err := h.lib.RegisterStudent(&student); err != nil {
		respondError(w, err)
		return
	}

	log.Printf("Nowy student zarejestrowany: %s (%s)", student.Name, student.Username)
	h.startSession(w, student.Identity())
}

// Logout obsługuje wylogowanie (POST /logout)
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if sess := middleware.SessionFromContext(r.Context()); sess != nil {
		h.sessions.Delete(sess.ID)
	}

	session.ClearCookie(w)
	respondJSON(w, http.StatusOK, map[string]string{"message": "wylogowano"})
}

// Me zwraca tożsamość bieżącej sesji (GET /me)
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		respondJSON(w, http.StatusUnauthorized, map[string]string{"error": "brak aktywnej sesji"})
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// startSession tworzy sesję, ustawia ciasteczko i odsyła tożsamość
func (h *AuthHandler) startSession(w http.ResponseWriter, user *models.User) {
	sess, err := h.sessions.Create(user)
	if err != nil {
		log.Printf("Błąd tworzenia sesji: %v", err)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "błąd logowania"})
		return
	}

	session.SetCookie(w, sess.ID)
	log.Printf("Użytkownik zalogowany: %s (%s)", user.Name, user.Role)
	respondJSON(w, http.StatusOK, user)
}
