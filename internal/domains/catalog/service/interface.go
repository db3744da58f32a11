package service

import (
	"context"

	"library-backend/internal/domains/catalog/model"
)

// ServiceInterface exposes the catalog operations consumed by the GraphQL
// resolvers, the HTTP handlers and the CLI.
type ServiceInterface interface {
	BookCount(ctx context.Context) int
	AuthorCount(ctx context.Context) int

	// AllBooks filters with OR across author and genre; nil fields are ignored.
	AllBooks(ctx context.Context, filter model.BookFilter) []model.Book
	AllAuthors(ctx context.Context) []model.AuthorWithCount

	// AddBook creates the author on first reference.
	AddBook(ctx context.Context, input model.AddBookInput) (model.Book, error)

	// EditAuthor returns model.ErrAuthorNotFound when no author has the name.
	EditAuthor(ctx context.Context, name string, born int) (model.Author, error)

	FindAuthor(ctx context.Context, name string) (model.Author, error)
	CountBooksBy(ctx context.Context, name string) int

	// Seed loads initial data: authors first, then books.
	Seed(ctx context.Context, data model.SeedData) error

	// Snapshot returns every author and book for export.
	Snapshot(ctx context.Context) Snapshot
}

// Snapshot is a point-in-time copy of the catalog.
type Snapshot struct {
	Authors []model.AuthorWithCount
	Books   []model.Book
}
