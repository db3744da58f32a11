package repository

import (
	"library-backend/internal/domains/catalog/model"
)

// RepositoryInterface is the catalog's data access contract.
// Every returned value is a copy; callers cannot mutate stored records.
type RepositoryInterface interface {
	// ListBooks returns books in insertion order. An empty filter returns all
	// books; otherwise a book is returned when it matches the author OR the genre.
	ListBooks(filter model.BookFilter) []model.Book

	// ListAuthorsWithCounts returns authors in insertion order, each with the
	// number of books carrying its name.
	ListAuthorsWithCounts() []model.AuthorWithCount

	// AddBook creates the author on first reference, then appends the book.
	// The second return value reports whether an author was created.
	AddBook(input model.AddBookInput) (model.Book, bool)

	// EditAuthor sets the birth year of the named author.
	// Returns false when no author has that name.
	EditAuthor(name string, born int) (model.Author, bool)

	// EnsureAuthor returns the named author, creating it when absent.
	EnsureAuthor(name string) (model.Author, bool)

	FindAuthor(name string) (model.Author, bool)
	CountBooksBy(name string) int
	BookCount() int
	AuthorCount() int
}
