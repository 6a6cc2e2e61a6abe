package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsOverdue(t *testing.T) {
	returnDate := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	issue := BookIssue{Status: StatusIssued, ReturnDate: returnDate}

	assert.False(t, issue.IsOverdue(returnDate.Add(-time.Hour)))

	// Termin zwrotu to jeszcze nie przeterminowanie
	assert.False(t, issue.IsOverdue(returnDate))

	assert.True(t, issue.IsOverdue(returnDate.Add(time.Hour)))
}

func TestRequestIsNeverOverdue(t *testing.T) {
	returnDate := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	request := BookIssue{Status: StatusRequested, ReturnDate: returnDate}

	assert.False(t, request.IsOverdue(returnDate.AddDate(0, 0, 30)))
}

func TestDaysUntilReturn(t *testing.T) {
	returnDate := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	issue := BookIssue{Status: StatusIssued, ReturnDate: returnDate}

	assert.Equal(t, 7, issue.DaysUntilReturn(returnDate.AddDate(0, 0, -7)))
	assert.Equal(t, 0, issue.DaysUntilReturn(returnDate))

	request := BookIssue{Status: StatusRequested, ReturnDate: returnDate}
	assert.Equal(t, 0, request.DaysUntilReturn(returnDate.AddDate(0, 0, -7)))
}

func TestBookMatches(t *testing.T) {
	book := Book{
		Title:  "The Hobbit",
		Author: "J.R.R. Tolkien",
		ISBN:   "9780547928227",
	}

	assert.True(t, book.Matches("hobbit"))
	assert.True(t, book.Matches("TOLKIEN"))
	assert.True(t, book.Matches("9780547928227"))
	assert.True(t, book.Matches(""))
	assert.False(t, book.Matches("orwell"))
}
