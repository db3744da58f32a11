package resolver

import (
	"context"
	"fmt"

	"github.com/graph-gophers/graphql-go"

	"library-backend/internal/domains/catalog/model"
	"library-backend/internal/domains/catalog/service"
)

type bookResolver struct {
	svc  service.ServiceInterface
	book model.Book
}

func (b *bookResolver) ID() graphql.ID {
	return graphql.ID(b.book.ID)
}

func (b *bookResolver) Title() string {
	return b.book.Title
}

func (b *bookResolver) Published() int32 {
	return int32(b.book.Published)
}

func (b *bookResolver) Genres() []string {
	return b.book.Genres
}

// Author follows the book's denormalized author name.
func (b *bookResolver) Author(ctx context.Context) (*authorResolver, error) {
	a, err := b.svc.FindAuthor(ctx, b.book.AuthorName)
	if err != nil {
		return nil, fmt.Errorf("author %q of book %s: %w", b.book.AuthorName, b.book.ID, err)
	}
	return &authorResolver{svc: b.svc, author: a}, nil
}
