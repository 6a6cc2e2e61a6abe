package library

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"student-library-system/internal/models"
	"student-library-system/internal/storage"
)

func newLibrary(t *testing.T) *Library {
	t.Helper()
	lib, err := New(storage.NewMemoryBackend(), "admin", "123")
	require.NoError(t, err)
	return lib
}

func registerAlice(t *testing.T, lib *Library) *models.Student {
	t.Helper()
	alice := &models.Student{
		Name:     "Alice Kowalska",
		Username: "alice",
		Password: "pw1",
		RollNo:   "roll-1",
	}
	require.NoError(t, lib.RegisterStudent(alice))
	return alice
}

func TestNewSeedsCatalogWhenStorageEmpty(t *testing.T) {
	lib := newLibrary(t)

	assert.Len(t, lib.Books(), 15)
	assert.Empty(t, lib.Students())
	assert.Empty(t, lib.Issues())

	book, err := lib.GetBook("book-1")
	require.NoError(t, err)
	assert.Equal(t, "To Kill a Mockingbird", book.Title)
}

func TestNewResetsCorruptCatalogToSeed(t *testing.T) {
	backend := storage.NewMemoryBackend()
	require.NoError(t, backend.Save(storage.KeyBooks, []byte("to nie jest json")))

	lib, err := New(backend, "admin", "123")
	require.NoError(t, err)
	assert.Len(t, lib.Books(), 15)
}

func TestLoginAdmin(t *testing.T) {
	lib := newLibrary(t)

	user, err := lib.LoginAdmin("admin", "123")
	require.NoError(t, err)
	assert.Equal(t, AdminID, user.ID)
	assert.Equal(t, models.RoleAdmin, user.Role)

	_, err = lib.LoginAdmin("admin", "niepoprawne")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterStudent(t *testing.T) {
	lib := newLibrary(t)
	alice := registerAlice(t, lib)

	students := lib.Students()
	require.Len(t, students, 1)
	assert.NotEmpty(t, alice.ID)
	assert.Equal(t, "alice", students[0].Username)

	// Hasło jest zapisane jako hash bcrypt, nie jawnym tekstem
	assert.NotEqual(t, "pw1", students[0].Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(students[0].Password), []byte("pw1")))
}

func TestRegisterStudentDuplicateUsername(t *testing.T) {
	lib := newLibrary(t)
	registerAlice(t, lib)

	err := lib.RegisterStudent(&models.Student{
		Name:     "Druga Alice",
		Username: "alice",
		Password: "inne",
		RollNo:   "roll-2",
	})
	assert.ErrorIs(t, err, ErrDuplicateUsername)
	assert.Len(t, lib.Students(), 1)
}

func TestAuthenticateStudent(t *testing.T) {
	lib := newLibrary(t)
	alice := registerAlice(t, lib)

	user, err := lib.AuthenticateStudent("alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, user.ID)
	assert.Equal(t, models.RoleStudent, user.Role)

	_, err = lib.AuthenticateStudent("alice", "zle-haslo")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = lib.AuthenticateStudent("nieznany", "pw1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAddBookDuplicateISBN(t *testing.T) {
	lib := newLibrary(t)

	err := lib.AddBook(&models.Book{
		Title:  "Kopia",
		Author: "Ktoś",
		ISBN:   "9780061120084", // ISBN book-1
	})
	assert.ErrorIs(t, err, ErrDuplicateISBN)
	assert.Len(t, lib.Books(), 15)
}

func TestAddBookAssignsID(t *testing.T) {
	lib := newLibrary(t)

	book := &models.Book{Title: "Nowa", Author: "Autor", ISBN: "111-222"}
	require.NoError(t, lib.AddBook(book))
	assert.NotEmpty(t, book.ID)
	assert.Len(t, lib.Books(), 16)
}

func TestUpdateBook(t *testing.T) {
	lib := newLibrary(t)

	book, err := lib.GetBook("book-1")
	require.NoError(t, err)

	book.Title = "Zmieniony tytuł"
	require.NoError(t, lib.UpdateBook(book))

	updated, err := lib.GetBook("book-1")
	require.NoError(t, err)
	assert.Equal(t, "Zmieniony tytuł", updated.Title)
}

func TestUpdateBookUnknownID(t *testing.T) {
	lib := newLibrary(t)

	err := lib.UpdateBook(&models.Book{ID: "brak", Title: "X", Author: "Y", ISBN: "Z"})
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestUpdateBookDuplicateISBNOtherRecord(t *testing.T) {
	lib := newLibrary(t)

	book, err := lib.GetBook("book-2")
	require.NoError(t, err)

	// ISBN book-1 koliduje; własny ISBN edytowanej książki nie
	book.ISBN = "9780061120084"
	assert.ErrorIs(t, lib.UpdateBook(book), ErrDuplicateISBN)

	book.ISBN = "9780451524935"
	assert.NoError(t, lib.UpdateBook(book))
}

func TestIssueBookComputesReturnDate(t *testing.T) {
	lib := newLibrary(t)
	alice := registerAlice(t, lib)

	issueDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	issue := &models.BookIssue{
		BookID:    "book-1",
		StudentID: alice.ID,
		IssueDate: issueDate,
	}
	require.NoError(t, lib.IssueBook(issue))

	assert.Equal(t, models.StatusIssued, issue.Status)
	assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), issue.ReturnDate)

	// Wypożyczona książka znika z puli dostępnych
	assert.False(t, lib.IsBookAvailable("book-1"))
	for _, book := range lib.AvailableBooks() {
		assert.NotEqual(t, "book-1", book.ID)
	}
}

func TestIssueBookUnknownBookOrStudent(t *testing.T) {
	lib := newLibrary(t)
	alice := registerAlice(t, lib)

	err := lib.IssueBook(&models.BookIssue{BookID: "brak", StudentID: alice.ID})
	assert.ErrorIs(t, err, ErrBookNotFound)

	err = lib.IssueBook(&models.BookIssue{BookID: "book-1", StudentID: "brak"})
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestRequestReservesBook(t *testing.T) {
	lib := newLibrary(t)
	alice := registerAlice(t, lib)

	request := &models.BookIssue{BookID: "book-2", StudentID: alice.ID}
	require.NoError(t, lib.RequestBook(request))
	assert.Equal(t, models.StatusRequested, request.Status)

	// Prośba już rezerwuje książkę - dostępność wyklucza rekordy
	// o dowolnym statusie
	assert.False(t, lib.IsBookAvailable("book-2"))

	err := lib.IssueBook(&models.BookIssue{BookID: "book-2", StudentID: alice.ID})
	assert.ErrorIs(t, err, ErrBookUnavailable)
}

func TestApproveRequestKeepsIDAndDates(t *testing.T) {
	lib := newLibrary(t)
	alice := registerAlice(t, lib)

	request := &models.BookIssue{BookID: "book-2", StudentID: alice.ID}
	require.NoError(t, lib.RequestBook(request))

	require.NoError(t, lib.ApproveRequest(request.ID))

	approved, found := lib.GetIssue(request.ID)
	require.True(t, found)
	assert.Equal(t, models.StatusIssued, approved.Status)
	assert.Equal(t, request.ID, approved.ID)
	assert.True(t, approved.IssueDate.Equal(request.IssueDate))
	assert.True(t, approved.ReturnDate.Equal(request.ReturnDate))
}

func TestApproveRequestIdempotent(t *testing.T) {
	lib := newLibrary(t)
	alice := registerAlice(t, lib)

	request := &models.BookIssue{BookID: "book-2", StudentID: alice.ID}
	require.NoError(t, lib.RequestBook(request))

	require.NoError(t, lib.ApproveRequest(request.ID))
	after := lib.Issues()

	// Drugie zatwierdzenie nie zmienia stanu
	require.NoError(t, lib.ApproveRequest(request.ID))
	assert.Equal(t, after, lib.Issues())

	// Nieznane ID też jest nieszkodliwe
	require.NoError(t, lib.ApproveRequest("brak"))
	assert.Equal(t, after, lib.Issues())
}

func TestReturnBookRemovesRecord(t *testing.T) {
	lib := newLibrary(t)
	alice := registerAlice(t, lib)

	issue := &models.BookIssue{BookID: "book-1", StudentID: alice.ID}
	require.NoError(t, lib.IssueBook(issue))
	require.Len(t, lib.Issues(), 1)

	require.NoError(t, lib.ReturnBook(issue.ID))
	assert.Empty(t, lib.Issues())
	assert.True(t, lib.IsBookAvailable("book-1"))

	// Zwrot nieistniejącego rekordu nie zmienia stanu
	require.NoError(t, lib.ReturnBook(issue.ID))
	assert.Empty(t, lib.Issues())
}

func TestReturnCancelsPendingRequest(t *testing.T) {
	lib := newLibrary(t)
	alice := registerAlice(t, lib)

	request := &models.BookIssue{BookID: "book-3", StudentID: alice.ID}
	require.NoError(t, lib.RequestBook(request))

	require.NoError(t, lib.ReturnBook(request.ID))
	assert.Empty(t, lib.Issues())
	assert.True(t, lib.IsBookAvailable("book-3"))
}

func TestDeleteBookBlockedWhileIssued(t *testing.T) {
	lib := newLibrary(t)
	alice := registerAlice(t, lib)

	issue := &models.BookIssue{BookID: "book-1", StudentID: alice.ID}
	require.NoError(t, lib.IssueBook(issue))

	assert.ErrorIs(t, lib.DeleteBook("book-1"), ErrBookIssued)
	assert.Len(t, lib.Books(), 15)

	// Po zwrocie usunięcie się udaje
	require.NoError(t, lib.ReturnBook(issue.ID))
	require.NoError(t, lib.DeleteBook("book-1"))
	assert.Len(t, lib.Books(), 14)
}

func TestDeleteStudentBlockedWhileHasBooks(t *testing.T) {
	lib := newLibrary(t)
	alice := registerAlice(t, lib)

	issue := &models.BookIssue{BookID: "book-1", StudentID: alice.ID}
	require.NoError(t, lib.IssueBook(issue))

	assert.ErrorIs(t, lib.DeleteStudent(alice.ID), ErrStudentHasBooks)

	require.NoError(t, lib.ReturnBook(issue.ID))
	require.NoError(t, lib.DeleteStudent(alice.ID))
	assert.Empty(t, lib.Students())
}

func TestUpdateStudentUsernameConflict(t *testing.T) {
	lib := newLibrary(t)
	alice := registerAlice(t, lib)

	bob := &models.Student{Name: "Bob", Username: "bob", Password: "pw2", RollNo: "roll-2"}
	require.NoError(t, lib.RegisterStudent(bob))

	// Nazwa zajęta przez inną osobę
	bob.Username = "alice"
	assert.ErrorIs(t, lib.UpdateStudent(bob), ErrDuplicateUsername)

	// Własna nazwa edytowanego rekordu nie koliduje
	alice.Username = "alice"
	alice.Password = ""
	assert.NoError(t, lib.UpdateStudent(alice))
}

func TestUpdateStudentKeepsPasswordWhenEmpty(t *testing.T) {
	lib := newLibrary(t)
	alice := registerAlice(t, lib)

	alice.Name = "Alice Nowak"
	alice.Password = ""
	require.NoError(t, lib.UpdateStudent(alice))

	// Stare hasło nadal działa
	_, err := lib.AuthenticateStudent("alice", "pw1")
	assert.NoError(t, err)
}

func TestUpdateStudentRehashesNewPassword(t *testing.T) {
	lib := newLibrary(t)
	alice := registerAlice(t, lib)

	alice.Password = "nowe-haslo"
	require.NoError(t, lib.UpdateStudent(alice))

	_, err := lib.AuthenticateStudent("alice", "nowe-haslo")
	assert.NoError(t, err)
	_, err = lib.AuthenticateStudent("alice", "pw1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestOverdueDerivation(t *testing.T) {
	lib := newLibrary(t)
	alice := registerAlice(t, lib)

	issueDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	issue := &models.BookIssue{BookID: "book-1", StudentID: alice.ID, IssueDate: issueDate}
	require.NoError(t, lib.IssueBook(issue))

	request := &models.BookIssue{BookID: "book-2", StudentID: alice.ID, IssueDate: issueDate}
	require.NoError(t, lib.RequestBook(request))

	// Przed terminem zwrotu nic nie jest przeterminowane
	assert.Empty(t, lib.OverdueIssues(issueDate.AddDate(0, 0, 7)))

	// Po terminie przeterminowane jest tylko wypożyczenie -
	// prośba nigdy
	overdue := lib.OverdueIssues(issueDate.AddDate(0, 0, 8))
	require.Len(t, overdue, 1)
	assert.Equal(t, issue.ID, overdue[0].ID)
}

func TestDashboardStats(t *testing.T) {
	lib := newLibrary(t)
	alice := registerAlice(t, lib)

	issueDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, lib.IssueBook(&models.BookIssue{BookID: "book-1", StudentID: alice.ID, IssueDate: issueDate}))
	require.NoError(t, lib.RequestBook(&models.BookIssue{BookID: "book-2", StudentID: alice.ID}))

	stats := lib.DashboardStats(issueDate.AddDate(0, 0, 10))
	assert.Equal(t, 15, stats.TotalBooks)
	assert.Equal(t, 1, stats.TotalStudents)
	assert.Equal(t, 1, stats.IssuedBooks)
	assert.Equal(t, 1, stats.PendingRequests)
	assert.Equal(t, 1, stats.OverdueBooks)
	assert.Equal(t, 13, stats.AvailableBooks)
}

func TestSearchBooks(t *testing.T) {
	lib := newLibrary(t)

	results := lib.SearchBooks("tolkien")
	assert.Len(t, results, 2)

	results = lib.SearchBooks("9780061120084")
	require.Len(t, results, 1)
	assert.Equal(t, "book-1", results[0].ID)

	assert.Len(t, lib.SearchBooks(""), 15)
}

func TestStatePersistsAcrossRestarts(t *testing.T) {
	backend := storage.NewMemoryBackend()

	lib, err := New(backend, "admin", "123")
	require.NoError(t, err)

	alice := &models.Student{Name: "Alice", Username: "alice", Password: "pw1", RollNo: "roll-1"}
	require.NoError(t, lib.RegisterStudent(alice))
	require.NoError(t, lib.IssueBook(&models.BookIssue{BookID: "book-1", StudentID: alice.ID}))
	require.NoError(t, lib.DeleteBook("book-15"))

	// Druga instancja na tym samym nośniku widzi identyczny stan
	restarted, err := New(backend, "admin", "123")
	require.NoError(t, err)

	assert.Equal(t, lib.Books(), restarted.Books())
	assert.Equal(t, lib.Students(), restarted.Students())
	assert.Equal(t, lib.Issues(), restarted.Issues())
}
