package models

import "strings"

// Book reprezentuje książkę w katalogu biblioteki
type Book struct {
	ID     string `json:"id" firestore:"id"`
	Title  string `json:"title" firestore:"title"`
	Author string `json:"author" firestore:"author"`
	ISBN   string `json:"isbn" firestore:"isbn"`
	Genre  string `json:"genre,omitempty" firestore:"genre,omitempty"`
}

// Matches sprawdza czy książka pasuje do frazy wyszukiwania
// (tytuł, autor lub ISBN, bez rozróżniania wielkości liter)
func (b *Book) Matches(term string) bool {
	if term == "" {
		return true
	}
	termLower := strings.ToLower(term)
	return strings.Contains(strings.ToLower(b.Title), termLower) ||
		strings.Contains(strings.ToLower(b.Author), termLower) ||
		strings.Contains(strings.ToLower(b.ISBN), termLower)
}
