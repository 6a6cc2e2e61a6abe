package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"student-library-system/internal/library"
	"student-library-system/internal/middleware"
	"student-library-system/internal/models"
)

// IssuesHandler obsługuje cykl życia wypożyczeń
type IssuesHandler struct {
	lib *library.Library
}

// NewIssuesHandler tworzy nowy handler wypożyczeń
func NewIssuesHandler(lib *library.Library) *IssuesHandler {
	return &IssuesHandler{lib: lib}
}

// issueResponse rozszerza rekord wypożyczenia o dane do wyświetlenia
// i wyliczany znacznik przeterminowania
type issueResponse struct {
	models.BookIssue
	BookTitle   string `json:"bookTitle,omitempty"`
	StudentName string `json:"studentName,omitempty"`
	Overdue     bool   `json:"overdue"`
}

func (h *IssuesHandler) toResponse(issue models.BookIssue, now time.Time) issueResponse {
	out := issueResponse{
		BookIssue: issue,
		Overdue:   issue.IsOverdue(now),
	}
	if book, err := h.lib.GetBook(issue.BookID); err == nil {
		out.BookTitle = book.Title
	}
	if student, err := h.lib.GetStudent(issue.StudentID); err == nil {
		out.StudentName = student.Name
	}
	return out
}

func (h *IssuesHandler) toResponses(issues []models.BookIssue) []issueResponse {
	now := time.Now()
	out := make([]issueResponse, 0, len(issues))
	for _, issue := range issues {
		out = append(out, h.toResponse(issue, now))
	}
	return out
}

// List zwraca wszystkie wypożyczenia i prośby (GET /issues, tylko admin)
func (h *IssuesHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.toResponses(h.lib.Issues()))
}

// ListOverdue zwraca przeterminowane wypożyczenia
// (GET /issues/overdue, tylko admin)
func (h *IssuesHandler) ListOverdue(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.toResponses(h.lib.OverdueIssues(time.Now())))
}

// Issue wypożycza książkę bezpośrednio studentowi
// (POST /issues, tylko admin)
func (h *IssuesHandler) Issue(w http.ResponseWriter, r *http.Request) {
	var issue models.BookIssue
	if err := decodeBody(r, &issue); err != nil {
		respondError(w, err)
		return
	}

	if err := h.lib.IssueBook(&issue); err != nil {
		respondError(w, err)
		return
	}

	log.Printf("Wypożyczono książkę %s studentowi %s (termin zwrotu: %s)",
		issue.BookID, issue.StudentID, issue.ReturnDate.Format(time.RFC3339))
	respondJSON(w, http.StatusCreated, h.toResponse(issue, time.Now()))
}

// Request tworzy prośbę studenta o wypożyczenie
// (POST /requests, tylko student)
//
// Prośba jest zawsze składana w imieniu zalogowanego studenta -
// ID studenta z ciała żądania jest ignorowane.
func (h *IssuesHandler) Request(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	var request models.BookIssue
	if err := decodeBody(r, &request); err != nil {
		respondError(w, err)
		return
	}
	request.StudentID = user.ID

	if err := h.lib.RequestBook(&request); err != nil {
		respondError(w, err)
		return
	}

	log.Printf("Student %s poprosił o książkę %s", user.ID, request.BookID)
	respondJSON(w, http.StatusCreated, h.toResponse(request, time.Now()))
}

// Approve zatwierdza prośbę o wypożyczenie
// (POST /issues/{id}/approve, tylko admin)
func (h *IssuesHandler) Approve(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")

	if err := h.lib.ApproveRequest(requestID); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "prośba została zatwierdzona"})
}

// Return zwraca książkę albo anuluje prośbę
// (POST /issues/{id}/return)
//
// Student może zwrócić tylko własny rekord; administrator dowolny.
func (h *IssuesHandler) Return(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	issueID := chi.URLParam(r, "id")

	if issue, found := h.lib.GetIssue(issueID); found {
		if !user.IsAdmin() && issue.StudentID != user.ID {
			respondJSON(w, http.StatusForbidden, map[string]string{"error": "brak uprawnień do tego rekordu"})
			return
		}
	}

	if err := h.lib.ReturnBook(issueID); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "książka została zwrócona"})
}

// MyBooks zwraca wypożyczenia i prośby zalogowanego studenta
// (GET /my/books, tylko student)
func (h *IssuesHandler) MyBooks(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	respondJSON(w, http.StatusOK, h.toResponses(h.lib.StudentIssues(user.ID)))
}

// Dashboard zwraca liczniki panelu głównego (GET /dashboard)
//
// Administrator dostaje liczniki całego systemu, student podsumowanie
// własnych wypożyczeń.
func (h *IssuesHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	now := time.Now()

	if user.IsAdmin() {
		respondJSON(w, http.StatusOK, h.lib.DashboardStats(now))
		return
	}

	issues := h.lib.StudentIssues(user.ID)
	summary := struct {
		IssuedBooks     int `json:"issuedBooks"`
		PendingRequests int `json:"pendingRequests"`
		OverdueBooks    int `json:"overdueBooks"`
	}{}

	for _, issue := range issues {
		switch {
		case issue.IsRequested():
			summary.PendingRequests++
		case issue.IsOverdue(now):
			summary.IssuedBooks++
			summary.OverdueBooks++
		default:
			summary.IssuedBooks++
		}
	}

	respondJSON(w, http.StatusOK, summary)
}
