package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"library-backend/internal/domains/catalog/model"
	"library-backend/internal/domains/catalog/repository"
)

type catalogService struct {
	repo repository.RepositoryInterface
}

// NewCatalogService wraps repo with logging and input normalisation.
func NewCatalogService(repo repository.RepositoryInterface) ServiceInterface {
	return &catalogService{
		repo: repo,
	}
}

func (s *catalogService) BookCount(ctx context.Context) int {
	return s.repo.BookCount()
}

func (s *catalogService) AuthorCount(ctx context.Context) int {
	return s.repo.AuthorCount()
}

func (s *catalogService) AllBooks(ctx context.Context, filter model.BookFilter) []model.Book {
	return s.repo.ListBooks(filter)
}

func (s *catalogService) AllAuthors(ctx context.Context) []model.AuthorWithCount {
	return s.repo.ListAuthorsWithCounts()
}

func (s *catalogService) AddBook(ctx context.Context, input model.AddBookInput) (model.Book, error) {
	if input.Genres == nil {
		input.Genres = []string{}
	}

	book, created := s.repo.AddBook(input)
	if created {
		log.Ctx(ctx).Info().
			Str("event", "author_created").
			Str("author", book.AuthorName).
			Msg("Author created from new book")
	}

	log.Ctx(ctx).Info().
		Str("event", "book_added").
		Str("book_id", book.ID).
		Str("title", book.Title).
		Str("author", book.AuthorName).
		Int("published", book.Published).
		Strs("genres", book.Genres).
		Msg("Book added")

	return book, nil
}

func (s *catalogService) EditAuthor(ctx context.Context, name string, born int) (model.Author, error) {
	updated, ok := s.repo.EditAuthor(name, born)
	if !ok {
		log.Ctx(ctx).Debug().
			Str("event", "author_not_found").
			Str("author", name).
			Msg("Edit skipped for unknown author")
		return model.Author{}, model.ErrAuthorNotFound
	}

	log.Ctx(ctx).Info().
		Str("event", "author_born_updated").
		Str("author_id", updated.ID).
		Str("author", updated.Name).
		Int("born", born).
		Msg("Author birth year updated")

	return updated, nil
}

func (s *catalogService) FindAuthor(ctx context.Context, name string) (model.Author, error) {
	a, ok := s.repo.FindAuthor(name)
	if !ok {
		return model.Author{}, model.ErrAuthorNotFound
	}
	return a, nil
}

func (s *catalogService) CountBooksBy(ctx context.Context, name string) int {
	return s.repo.CountBooksBy(name)
}

func (s *catalogService) Seed(ctx context.Context, data model.SeedData) error {
	for i, a := range data.Authors {
		name := strings.TrimSpace(a.Name)
		if name == "" {
			return fmt.Errorf("seed author %d: %w", i+1, model.ErrEmptyAuthorName)
		}
		s.repo.EnsureAuthor(name)
		if a.Born != nil {
			s.repo.EditAuthor(name, *a.Born)
		}
	}

	for i, b := range data.Books {
		b.Author = strings.TrimSpace(b.Author)
		if b.Author == "" {
			return fmt.Errorf("seed book %d (%q): %w", i+1, b.Title, model.ErrEmptyAuthorName)
		}
		if _, err := s.AddBook(ctx, b); err != nil {
			return fmt.Errorf("seed book %d: %w", i+1, err)
		}
	}

	log.Ctx(ctx).Info().
		Int("authors", s.repo.AuthorCount()).
		Int("books", s.repo.BookCount()).
		Msg("Catalog seeded")

	return nil
}

func (s *catalogService) Snapshot(ctx context.Context) Snapshot {
	return Snapshot{
		Authors: s.repo.ListAuthorsWithCounts(),
		Books:   s.repo.ListBooks(model.BookFilter{}),
	}
}
