package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"student-library-system/internal/library"
	authmw "student-library-system/internal/middleware"
	"student-library-system/internal/models"
	"student-library-system/internal/session"
)

// NewRouter buduje pełne drzewo routingu aplikacji
func NewRouter(lib *library.Library, sessions *session.Manager) http.Handler {
	r := chi.NewRouter()

	// Middleware do logowania requestów
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	// Middleware sesji - dodaj sesję do kontekstu każdego żądania
	r.Use(authmw.WithSession(sessions))

	authHandler := NewAuthHandler(lib, sessions)
	booksHandler := NewBooksHandler(lib)
	studentsHandler := NewStudentsHandler(lib)
	issuesHandler := NewIssuesHandler(lib)

	// Routy dla autoryzacji
	r.Post("/login/admin", authHandler.LoginAdmin)
	r.Post("/login/student", authHandler.LoginStudent)
	r.Post("/register", authHandler.Register)
	r.Post("/logout", authHandler.Logout)
	r.Get("/me", authHandler.Me)

	// Publiczny katalog książek
	r.Route("/books", func(r chi.Router) {
		r.Get("/", booksHandler.List)
		r.Get("/available", booksHandler.ListAvailable)
		r.Get("/search", booksHandler.Search)

		// Zarządzanie katalogiem (tylko admin)
		r.Group(func(r chi.Router) {
			r.Use(authmw.RequireAuthRole(models.RoleAdmin))
			r.Post("/", booksHandler.Create)
			r.Put("/{id}", booksHandler.Update)
			r.Delete("/{id}", booksHandler.Delete)
		})
	})

	// Zarządzanie studentami (tylko admin)
	r.Route("/students", func(r chi.Router) {
		r.Use(authmw.RequireAuthRole(models.RoleAdmin))
		r.Get("/", studentsHandler.List)
		r.Put("/{id}", studentsHandler.Update)
		r.Delete("/{id}", studentsHandler.Delete)
	})

	// Cykl życia wypożyczeń
	r.Route("/issues", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authmw.RequireAuthRole(models.RoleAdmin))
			r.Get("/", issuesHandler.List)
			r.Get("/overdue", issuesHandler.ListOverdue)
			r.Post("/", issuesHandler.Issue)
			r.Post("/{id}/approve", issuesHandler.Approve)
		})

		// Zwrot/anulowanie - student tylko dla własnych rekordów
		r.Group(func(r chi.Router) {
			r.Use(authmw.RequireAuth)
			r.Post("/{id}/return", issuesHandler.Return)
		})
	})

	// Panel studenta
	r.Group(func(r chi.Router) {
		r.Use(authmw.RequireAuthRole(models.RoleStudent))
		r.Post("/requests", issuesHandler.Request)
		r.Get("/my/books", issuesHandler.MyBooks)
	})

	// Panel główny (dla zalogowanych)
	r.Group(func(r chi.Router) {
		r.Use(authmw.RequireAuth)
		r.Get("/dashboard", issuesHandler.Dashboard)
	})

	return r
}
