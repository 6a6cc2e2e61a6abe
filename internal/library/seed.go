package library

import "student-library-system/internal/models"

// SeedBooks zwraca przykładowy katalog, którym biblioteka startuje
// gdy magazyn danych nie zawiera jeszcze książek
//
// Identyfikatory są stałe, żeby świeża instalacja była powtarzalna.
func SeedBooks() []models.Book {
	return []models.Book{
		{
			ID:     "book-1",
			Title:  "To Kill a Mockingbird",
			Author: "Harper Lee",
			ISBN:   "9780061120084",
			Genre:  "Fiction",
		},
		{
			ID:     "book-2",
			Title:  "1984",
			Author: "George Orwell",
			ISBN:   "9780451524935",
			Genre:  "Science Fiction",
		},
		{
			ID:     "book-3",
			Title:  "The Great Gatsby",
			Author: "F. Scott Fitzgerald",
			ISBN:   "9780743273565",
			Genre:  "Fiction",
		},
		{
			ID:     "book-4",
			Title:  "Pride and Prejudice",
			Author: "Jane Austen",
			ISBN:   "9780141439518",
			Genre:  "Romance",
		},
		{
			ID:     "book-5",
			Title:  "The Catcher in the Rye",
			Author: "J.D. Salinger",
			ISBN:   "9780316769488",
			Genre:  "Fiction",
		},
		{
			ID:     "book-6",
			Title:  "The Hobbit",
			Author: "J.R.R. Tolkien",
			ISBN:   "9780547928227",
			Genre:  "Fantasy",
		},
		{
			ID:     "book-7",
			Title:  "Harry Potter and the Philosopher's Stone",
			Author: "J.K. Rowling",
			ISBN:   "9780747532743",
			Genre:  "Fantasy",
		},
		{
			ID:     "book-8",
			Title:  "The Lord of the Rings",
			Author: "J.R.R. Tolkien",
			ISBN:   "9780618640157",
			Genre:  "Fantasy",
		},
		{
			ID:     "book-9",
			Title:  "The Alchemist",
			Author: "Paulo Coelho",
			ISBN:   "9780062315007",
			Genre:  "Fiction",
		},
		{
			ID:     "book-10",
			Title:  "The Da Vinci Code",
			Author: "Dan Brown",
			ISBN:   "9780307474278",
			Genre:  "Mystery",
		},
		{
			ID:     "book-11",
			Title:  "The Hunger Games",
			Author: "Suzanne Collins",
			ISBN:   "9780439023481",
			Genre:  "Science Fiction",
		},
		{
			ID:     "book-12",
			Title:  "The Shining",
			Author: "Stephen King",
			ISBN:   "9780307743657",
			Genre:  "Horror",
		},
		{
			ID:     "book-13",
			Title:  "Brave New World",
			Author: "Aldous Huxley",
			ISBN:   "9780060850524",
			Genre:  "Science Fiction",
		},
		{
			ID:     "book-14",
			Title:  "The Odyssey",
			Author: "Homer",
			ISBN:   "9780140268867",
			Genre:  "Classic",
		},
		{
			ID:     "book-15",
			Title:  "Moby-Dick",
			Author: "Herman Melville",
			ISBN:   "9780142437247",
			Genre:  "Adventure",
		},
	}
}
