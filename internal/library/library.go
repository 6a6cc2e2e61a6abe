// Package library zawiera magazyn stanu aplikacji: trzy kolekcje
// (książki, studenci, wypożyczenia) oraz wszystkie operacje mutujące.
//
// Library jest jedynym źródłem prawdy - widoki dostają kopie danych
// na czas renderowania i nigdy nie modyfikują ich bezpośrednio.
// Każda mutacja natychmiast odkłada całą kolekcję do adaptera
// trwałości.
package library

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"student-library-system/internal/models"
	"student-library-system/internal/storage"
)

// AdminID i AdminName to stała tożsamość administratora.
// Administrator nie jest rekordem w magazynie danych.
const (
	AdminID   = "admin"
	AdminName = "Admin"
)

// Library to kontener stanu biblioteki
type Library struct {
	mu sync.RWMutex

	books    []models.Book
	students []models.Student
	issues   []models.BookIssue

	backend       storage.Backend
	adminUsername string
	adminPassword string
}

// New tworzy magazyn stanu i wczytuje kolekcje z adaptera trwałości
//
// Brakujące albo nieczytelne dane nie zatrzymują startu: katalog
// książek wraca do przykładowego zestawu, pozostałe kolekcje do
// pustych. Uszkodzony ładunek jest logowany przed zresetowaniem.
func New(backend storage.Backend, adminUsername, adminPassword string) (*Library, error) {
	if backend == nil {
		return nil, fmt.Errorf("adapter trwałości nie może być nil")
	}
	if adminUsername == "" || adminPassword == "" {
		return nil, fmt.Errorf("dane logowania administratora są wymagane")
	}

	lib := &Library{
		backend:       backend,
		adminUsername: adminUsername,
		adminPassword: adminPassword,
	}

	if !loadCollection(backend, storage.KeyBooks, &lib.books) {
		lib.books = SeedBooks()
		if err := lib.persistBooks(); err != nil {
			return nil, err
		}
		log.Printf("Katalog zainicjalizowany przykładowym zestawem %d książek", len(lib.books))
	}
	if !loadCollection(backend, storage.KeyStudents, &lib.students) {
		lib.students = []models.Student{}
		if err := lib.persistStudents(); err != nil {
			return nil, err
		}
	}
	if !loadCollection(backend, storage.KeyIssues, &lib.issues) {
		lib.issues = []models.BookIssue{}
		if err := lib.persistIssues(); err != nil {
			return nil, err
		}
	}

	return lib, nil
}

// loadCollection wczytuje jedną kolekcję spod klucza
//
// Zwraca false gdy danych nie ma albo są uszkodzone - wtedy
// wołający podstawia wartości domyślne.
func loadCollection[T any](backend storage.Backend, key string, out *[]T) bool {
	data, err := backend.Load(key)
	if err == storage.ErrNotFound {
		return false
	}
	if err != nil {
		log.Printf("UWAGA: błąd odczytu %s: %v - używam wartości domyślnych", key, err)
		return false
	}

	if err := json.Unmarshal(data, out); err != nil {
		log.Printf("UWAGA: uszkodzone dane pod kluczem %s: %v - resetuję do wartości domyślnych", key, err)
		return false
	}
	return true
}

// ---------------------------------------------------------------------------
// Trwałość
// ---------------------------------------------------------------------------

func (l *Library) persistBooks() error {
	return persistCollection(l.backend, storage.KeyBooks, l.books)
}

func (l *Library) persistStudents() error {
	return persistCollection(l.backend, storage.KeyStudents, l.students)
}

func (l *Library) persistIssues() error {
	return persistCollection(l.backend, storage.KeyIssues, l.issues)
}

func persistCollection[T any](backend storage.Backend, key string, collection []T) error {
	data, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("błąd serializacji %s: %w", key, err)
	}
	if err := backend.Save(key, data); err != nil {
		return fmt.Errorf("błąd zapisu %s: %w", key, err)
	}
	return nil
}

// Flush zapisuje wszystkie kolekcje - wywoływane przy zamykaniu aplikacji
func (l *Library) Flush() error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err := l.persistBooks(); err != nil {
		return err
	}
	if err := l.persistStudents(); err != nil {
		return err
	}
	return l.persistIssues()
}

// ---------------------------------------------------------------------------
// Logowanie i rejestracja
// ---------------------------------------------------------------------------

// LoginAdmin weryfikuje stałe dane administratora i zwraca jego tożsamość
func (l *Library) LoginAdmin(username, password string) (*models.User, error) {
	if username != l.adminUsername || password != l.adminPassword {
		return nil, ErrInvalidCredentials
	}

	return &models.User{
		ID:   AdminID,
		Name: AdminName,
		Role: models.RoleAdmin,
	}, nil
}

// AuthenticateStudent weryfikuje dane studenta i zwraca jego tożsamość
func (l *Library) AuthenticateStudent(username, password string) (*models.User, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for i := range l.students {
		if l.students[i].Username != username {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(l.students[i].Password), []byte(password)) != nil {
			return nil, ErrInvalidCredentials
		}
		return l.students[i].Identity(), nil
	}

	return nil, ErrInvalidCredentials
}

// RegisterStudent rejestruje nowego studenta
//
// Nazwa użytkownika musi być unikalna. Hasło jest zapisywane jako
// hash bcrypt.
func (l *Library) RegisterStudent(student *models.Student) error {
	if student == nil {
		return fmt.Errorf("student nie może być nil")
	}
	if student.Name == "" || student.Username == "" || student.Password == "" {
		return fmt.Errorf("imię, nazwa użytkownika i hasło są wymagane")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.students {
		if l.students[i].Username == student.Username {
			return ErrDuplicateUsername
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(student.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("błąd hashowania hasła: %w", err)
	}
	student.Password = string(hash)

	if student.ID == "" {
		student.ID = uuid.NewString()
	}

	l.students = append(l.students, *student)
	return l.persistStudents()
}

// ---------------------------------------------------------------------------
// Książki
// ---------------------------------------------------------------------------

// AddBook dodaje nową książkę do katalogu
//
// ISBN musi być unikalny w całym katalogu.
func (l *Library) AddBook(book *models.Book) error {
	if book == nil {
		return fmt.Errorf("książka nie może być nil")
	}
	if book.Title == "" || book.Author == "" || book.ISBN == "" {
		return fmt.Errorf("tytuł, autor i ISBN są wymagane")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.books {
		if l.books[i].ISBN == book.ISBN {
			return ErrDuplicateISBN
		}
	}

	if book.ID == "" {
		book.ID = uuid.NewString()
	}

	l.books = append(l.books, *book)
	return l.persistBooks()
}

// UpdateBook podmienia książkę o istniejącym ID
//
// ISBN nie może kolidować z inną książką niż edytowana.
func (l *Library) UpdateBook(book *models.Book) error {
	if book == nil {
		return fmt.Errorf("książka nie może być nil")
	}
	if book.Title == "" || book.Author == "" || book.ISBN == "" {
		return fmt.Errorf("tytuł, autor i ISBN są wymagane")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.books {
		if l.books[i].ISBN == book.ISBN && l.books[i].ID != book.ID {
			return ErrDuplicateISBN
		}
	}

	for i := range l.books {
		if l.books[i].ID == book.ID {
			l.books[i] = *book
			return l.persistBooks()
		}
	}

	return ErrBookNotFound
}

// DeleteBook usuwa książkę z katalogu
//
// Książka z jakimkolwiek rekordem wypożyczenia (prośbą albo aktywnym
// wypożyczeniem) nie może zostać usunięta.
func (l *Library) DeleteBook(bookID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.issues {
		if l.issues[i].BookID == bookID {
			return ErrBookIssued
		}
	}

	for i := range l.books {
		if l.books[i].ID == bookID {
			l.books = append(l.books[:i], l.books[i+1:]...)
			return l.persistBooks()
		}
	}

	return ErrBookNotFound
}

// ---------------------------------------------------------------------------
// Studenci
// ---------------------------------------------------------------------------

// UpdateStudent podmienia dane studenta o istniejącym ID
//
// Nazwa użytkownika nie może być zajęta przez innego studenta.
// Puste hasło zachowuje dotychczasowy hash, niepuste jest hashowane
// od nowa.
func (l *Library) UpdateStudent(student *models.Student) error {
	if student == nil {
		return fmt.Errorf("student nie może być nil")
	}
	if student.Name == "" || student.Username == "" {
		return fmt.Errorf("imię i nazwa użytkownika są wymagane")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.students {
		if l.students[i].Username == student.Username && l.students[i].ID != student.ID {
			return ErrDuplicateUsername
		}
	}

	for i := range l.students {
		if l.students[i].ID != student.ID {
			continue
		}

		if student.Password == "" {
			student.Password = l.students[i].Password
		} else if student.Password != l.students[i].Password {
			hash, err := bcrypt.GenerateFromPassword([]byte(student.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("błąd hashowania hasła: %w", err)
			}
			student.Password = string(hash)
		}

		l.students[i] = *student
		return l.persistStudents()
	}

	return ErrStudentNotFound
}

// DeleteStudent usuwa studenta
//
// Student z jakimkolwiek rekordem wypożyczenia nie może zostać
// usunięty.
func (l *Library) DeleteStudent(studentID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.issues {
		if l.issues[i].StudentID == studentID {
			return ErrStudentHasBooks
		}
	}

	for i := range l.students {
		if l.students[i].ID == studentID {
			l.students = append(l.students[:i], l.students[i+1:]...)
			return l.persistStudents()
		}
	}

	return ErrStudentNotFound
}

// ---------------------------------------------------------------------------
// Cykl życia wypożyczenia
// ---------------------------------------------------------------------------

// IssueBook wypożycza dostępną książkę bezpośrednio studentowi
// (ścieżka administratora, z pominięciem prośby)
//
// Termin zwrotu jest wyliczany przez magazyn jako data wypożyczenia
// plus 7 dni - wołający nie może go ustawić niezależnie.
func (l *Library) IssueBook(issue *models.BookIssue) error {
	return l.appendIssue(issue, models.StatusIssued)
}

// RequestBook tworzy prośbę studenta o wypożyczenie dostępnej książki
func (l *Library) RequestBook(request *models.BookIssue) error {
	return l.appendIssue(request, models.StatusRequested)
}

func (l *Library) appendIssue(issue *models.BookIssue, status models.IssueStatus) error {
	if issue == nil {
		return fmt.Errorf("wypożyczenie nie może być nil")
	}
	if issue.BookID == "" || issue.StudentID == "" {
		return fmt.Errorf("ID książki i studenta są wymagane")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if findBook(l.books, issue.BookID) == nil {
		return ErrBookNotFound
	}
	if findStudent(l.students, issue.StudentID) == nil {
		return ErrStudentNotFound
	}

	// Prośba o wypożyczenie już rezerwuje książkę - dostępność
	// wyklucza rekordy o dowolnym statusie
	for i := range l.issues {
		if l.issues[i].BookID == issue.BookID {
			return ErrBookUnavailable
		}
	}

	if issue.ID == "" {
		issue.ID = uuid.NewString()
	}
	if issue.IssueDate.IsZero() {
		issue.IssueDate = time.Now().UTC()
	}

	issue.Status = status
	issue.ReturnDate = issue.IssueDate.AddDate(0, 0, models.LoanPeriodDays)

	l.issues = append(l.issues, *issue)
	return l.persistIssues()
}

// ApproveRequest zatwierdza prośbę - status przechodzi z "requested"
// na "issued", daty pozostają bez zmian
//
// Operacja jest odporna na powtórzenia: nieznane ID albo rekord już
// zatwierdzony nie zmieniają stanu.
func (l *Library) ApproveRequest(requestID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.issues {
		if l.issues[i].ID == requestID && l.issues[i].Status == models.StatusRequested {
			l.issues[i].Status = models.StatusIssued
			return l.persistIssues()
		}
	}

	return nil
}

// ReturnBook usuwa rekord wypożyczenia w całości
//
// Ta sama operacja obsługuje zwrot wypożyczonej książki i anulowanie
// prośby. Nieznane ID nie zmienia stanu.
func (l *Library) ReturnBook(issueID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.issues {
		if l.issues[i].ID == issueID {
			l.issues = append(l.issues[:i], l.issues[i+1:]...)
			return l.persistIssues()
		}
	}

	return nil
}

// ---------------------------------------------------------------------------
// Funkcje pomocnicze
// ---------------------------------------------------------------------------

func findBook(books []models.Book, id string) *models.Book {
	for i := range books {
		if books[i].ID == id {
			return &books[i]
		}
	}
	return nil
}

func findStudent(students []models.Student, id string) *models.Student {
	for i := range students {
		if students[i].ID == id {
			return &students[i]
		}
	}
	return nil
}
