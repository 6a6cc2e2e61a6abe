package handlers

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"student-library-system/internal/library"
	"student-library-system/internal/models"
)

// BooksHandler obsługuje katalog książek
type BooksHandler struct {
	lib *library.Library
}

// NewBooksHandler tworzy nowy handler katalogu
func NewBooksHandler(lib *library.Library) *BooksHandler {
	return &BooksHandler{lib: lib}
}

// bookResponse rozszerza książkę o wyliczaną dostępność
type bookResponse struct {
	models.Book
	Available bool `json:"available"`
}

// List zwraca cały katalog z dostępnością (GET /books)
func (h *BooksHandler) List(w http.ResponseWriter, r *http.Request) {
	books := h.lib.Books()

	out := make([]bookResponse, 0, len(books))
	for _, book := range books {
		out = append(out, bookResponse{
			Book:      book,
			Available: h.lib.IsBookAvailable(book.ID),
		})
	}

	respondJSON(w, http.StatusOK, out)
}

// ListAvailable zwraca książki dostępne do wypożyczenia
// (GET /books/available)
func (h *BooksHandler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.lib.AvailableBooks())
}

// Search wyszukuje książki po tytule, autorze lub ISBN
// (GET /books/search?q=fraza)
func (h *BooksHandler) Search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	respondJSON(w, http.StatusOK, h.lib.SearchBooks(term))
}

// Create dodaje nową książkę do katalogu (POST /books, tylko admin)
func (h *BooksHandler) Create(w http.ResponseWriter, r *http.Request) {
	var book models.Book
	if err := decodeBody(r, &book); err != nil {
		respondError(w, err)
		return
	}

	if err := h.lib.AddBook(&book); err != nil {
		respondError(w, err)
		return
	}

	log.Printf("Dodano książkę: %s - %s", book.Title, book.Author)
	respondJSON(w, http.StatusCreated, book)
}

// Update edytuje istniejącą książkę (PUT /books/{id}, tylko admin)
func (h *BooksHandler) Update(w http.ResponseWriter, r *http.Request) {
	var book models.Book
	if err := decodeBody(r, &book); err != nil {
		respondError(w, err)
		return
	}
	book.ID = chi.URLParam(r, "id")

	if err := h.lib.UpdateBook(&book); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, book)
}

// Delete usuwa książkę z katalogu (DELETE /books/{id}, tylko admin)
//
// Książka z aktywnym rekordem wypożyczenia jest chroniona - magazyn
// odrzuca operację, a użytkownik dostaje komunikat.
func (h *BooksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "id")

	if err := h.lib.DeleteBook(bookID); err != nil {
		respondError(w, err)
		return
	}

	log.Printf("Usunięto książkę: %s", bookID)
	respondJSON(w, http.StatusOK, map[string]string{"message": "książka została usunięta"})
}
