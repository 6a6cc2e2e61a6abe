package library

import (
	"time"

	"student-library-system/internal/models"
)

// Odczyty stanu biblioteki
//
// Wszystkie metody zwracają kopie - widoki nie trzymają
// autorytatywnych referencji do kolekcji.

// Books zwraca kopię katalogu książek
func (l *Library) Books() []models.Book {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.Book, len(l.books))
	copy(out, l.books)
	return out
}

// Students zwraca kopię listy studentów
func (l *Library) Students() []models.Student {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.Student, len(l.students))
	copy(out, l.students)
	return out
}

// Issues zwraca kopię listy wypożyczeń i próśb
func (l *Library) Issues() []models.BookIssue {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.BookIssue, len(l.issues))
	copy(out, l.issues)
	return out
}

// GetBook pobiera książkę po ID
func (l *Library) GetBook(id string) (*models.Book, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if book := findBook(l.books, id); book != nil {
		out := *book
		return &out, nil
	}
	return nil, ErrBookNotFound
}

// GetStudent pobiera studenta po ID
func (l *Library) GetStudent(id string) (*models.Student, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if student := findStudent(l.students, id); student != nil {
		out := *student
		return &out, nil
	}
	return nil, ErrStudentNotFound
}

// GetIssue pobiera rekord wypożyczenia po ID
func (l *Library) GetIssue(id string) (*models.BookIssue, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for i := range l.issues {
		if l.issues[i].ID == id {
			out := l.issues[i]
			return &out, true
		}
	}
	return nil, false
}

// IsBookAvailable sprawdza czy książka jest dostępna do wypożyczenia
//
// Dostępność jest wyliczana, nie zapisywana: książka jest dostępna
// wtedy i tylko wtedy, gdy żaden rekord wypożyczenia - niezależnie
// od statusu - nie wskazuje na jej ID.
func (l *Library) IsBookAvailable(bookID string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.isAvailableLocked(bookID)
}

func (l *Library) isAvailableLocked(bookID string) bool {
	for i := range l.issues {
		if l.issues[i].BookID == bookID {
			return false
		}
	}
	return true
}

// AvailableBooks zwraca książki dostępne do wypożyczenia
func (l *Library) AvailableBooks() []models.Book {
	l.mu.RLock()
	defer l.mu.RUnlock()

	available := []models.Book{}
	for i := range l.books {
		if l.isAvailableLocked(l.books[i].ID) {
			available = append(available, l.books[i])
		}
	}
	return available
}

// SearchBooks wyszukuje książki po tytule, autorze lub ISBN
func (l *Library) SearchBooks(term string) []models.Book {
	l.mu.RLock()
	defer l.mu.RUnlock()

	results := []models.Book{}
	for i := range l.books {
		if l.books[i].Matches(term) {
			results = append(results, l.books[i])
		}
	}
	return results
}

// StudentIssues zwraca wypożyczenia i prośby danego studenta
func (l *Library) StudentIssues(studentID string) []models.BookIssue {
	l.mu.RLock()
	defer l.mu.RUnlock()

	issues := []models.BookIssue{}
	for i := range l.issues {
		if l.issues[i].StudentID == studentID {
			issues = append(issues, l.issues[i])
		}
	}
	return issues
}

// PendingRequests zwraca prośby oczekujące na zatwierdzenie
func (l *Library) PendingRequests() []models.BookIssue {
	l.mu.RLock()
	defer l.mu.RUnlock()

	requests := []models.BookIssue{}
	for i := range l.issues {
		if l.issues[i].Status == models.StatusRequested {
			requests = append(requests, l.issues[i])
		}
	}
	return requests
}

// OverdueIssues zwraca wypożyczenia przeterminowane względem podanej
// chwili. Prośby nigdy nie są przeterminowane.
func (l *Library) OverdueIssues(now time.Time) []models.BookIssue {
	l.mu.RLock()
	defer l.mu.RUnlock()

	overdue := []models.BookIssue{}
	for i := range l.issues {
		if l.issues[i].IsOverdue(now) {
			overdue = append(overdue, l.issues[i])
		}
	}
	return overdue
}

// Stats zawiera liczniki panelu głównego
type Stats struct {
	TotalBooks      int `json:"totalBooks"`
	TotalStudents   int `json:"totalStudents"`
	IssuedBooks     int `json:"issuedBooks"`
	PendingRequests int `json:"pendingRequests"`
	OverdueBooks    int `json:"overdueBooks"`
	AvailableBooks  int `json:"availableBooks"`
}

// DashboardStats wylicza liczniki panelu głównego
func (l *Library) DashboardStats(now time.Time) Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()

	stats := Stats{
		TotalBooks:    len(l.books),
		TotalStudents: len(l.students),
	}

	for i := range l.issues {
		switch l.issues[i].Status {
		case models.StatusIssued:
			stats.IssuedBooks++
			if l.issues[i].IsOverdue(now) {
				stats.OverdueBooks++
			}
		case models.StatusRequested:
			stats.PendingRequests++
		}
	}

	for i := range l.books {
		if l.isAvailableLocked(l.books[i].ID) {
			stats.AvailableBooks++
		}
	}

	return stats
}
