package resolver

import (
	"context"

	"library-backend/internal/domains/catalog/model"
	"library-backend/internal/domains/catalog/service"
)

// Resolver is the root resolver for both Query and Mutation.
type Resolver struct {
	svc service.ServiceInterface
}

func NewResolver(svc service.ServiceInterface) *Resolver {
	return &Resolver{svc: svc}
}

// ════════════════════════════════════════════════════════════════
// QUERIES
// ════════════════════════════════════════════════════════════════

func (r *Resolver) BookCount(ctx context.Context) int32 {
	return int32(r.svc.BookCount(ctx))
}

func (r *Resolver) AuthorCount(ctx context.Context) int32 {
	return int32(r.svc.AuthorCount(ctx))
}

type allBooksArgs struct {
	Author *string
	Genre  *string
}

func (r *Resolver) AllBooks(ctx context.Context, args allBooksArgs) []*bookResolver {
	books := r.svc.AllBooks(ctx, model.BookFilter{
		Author: args.Author,
		Genre:  args.Genre,
	})

	result := make([]*bookResolver, len(books))
	for i, b := range books {
		result[i] = &bookResolver{svc: r.svc, book: b}
	}
	return result
}

func (r *Resolver) AllAuthors(ctx context.Context) []*authorResolver {
	authors := r.svc.AllAuthors(ctx)

	result := make([]*authorResolver, len(authors))
	for i, a := range authors {
		count := a.BookCount
		result[i] = &authorResolver{svc: r.svc, author: a.Author, bookCount: &count}
	}
	return result
}

// ════════════════════════════════════════════════════════════════
// MUTATIONS
// ════════════════════════════════════════════════════════════════

type addBookArgs struct {
	Title     string
	Author    string
	Published int32
	Genres    []string
}

func (r *Resolver) AddBook(ctx context.Context, args addBookArgs) (*bookResolver, error) {
	book, err := r.svc.AddBook(ctx, model.AddBookInput{
		Title:     args.Title,
		Author:    args.Author,
		Published: int(args.Published),
		Genres:    args.Genres,
	})
	if err != nil {
		return nil, err
	}
	return &bookResolver{svc: r.svc, book: book}, nil
}

type editAuthorArgs struct {
	Name      string
	SetBornTo int32
}

// EditAuthor resolves to null for an unknown name.
func (r *Resolver) EditAuthor(ctx context.Context, args editAuthorArgs) *authorResolver {
	updated, err := r.svc.EditAuthor(ctx, args.Name, int(args.SetBornTo))
	if err != nil {
		return nil
	}
	return &authorResolver{svc: r.svc, author: updated}
}
