package models

import "time"

// IssueStatus określa status wypożyczenia
type IssueStatus string

const (
	StatusRequested IssueStatus = "requested" // Prośba oczekująca na zatwierdzenie
	StatusIssued    IssueStatus = "issued"    // Aktywne wypożyczenie
)

// LoanPeriodDays to długość wypożyczenia - termin zwrotu wypada
// zawsze 7 dni po dacie wypożyczenia
const LoanPeriodDays = 7

// BookIssue reprezentuje wypożyczenie albo prośbę o wypożyczenie
//
// Zwrot książki i anulowanie prośby usuwają rekord w całości -
// nie istnieje zapisywany status "returned".
type BookIssue struct {
	ID         string      `json:"id" firestore:"id"`
	BookID     string      `json:"bookId" firestore:"bookId"`
	StudentID  string      `json:"studentId" firestore:"studentId"`
	IssueDate  time.Time   `json:"issueDate" firestore:"issueDate"`
	ReturnDate time.Time   `json:"returnDate" firestore:"returnDate"`
	Status     IssueStatus `json:"status" firestore:"status"`
}

// IsRequested sprawdza czy rekord jest prośbą oczekującą na zatwierdzenie
func (i *BookIssue) IsRequested() bool {
	return i.Status == StatusRequested
}

// IsOverdue sprawdza czy wypożyczenie jest przeterminowane względem
// podanej chwili. Prośby nigdy nie są przeterminowane.
func (i *BookIssue) IsOverdue(now time.Time) bool {
	return i.Status == StatusIssued && now.After(i.ReturnDate)
}

// DaysUntilReturn zwraca liczbę dni do terminu zwrotu
func (i *BookIssue) DaysUntilReturn(now time.Time) int {
	if i.Status != StatusIssued {
		return 0
	}
	return int(i.ReturnDate.Sub(now).Hours() / 24)
}
