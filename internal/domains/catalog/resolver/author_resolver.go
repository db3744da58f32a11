package resolver

import (
	"context"

	"github.com/graph-gophers/graphql-go"

	"library-backend/internal/domains/catalog/model"
	"library-backend/internal/domains/catalog/service"
)

type authorResolver struct {
	svc    service.ServiceInterface
	author model.Author

	// bookCount is set when the author came from allAuthors.
	bookCount *int
}

func (a *authorResolver) ID() graphql.ID {
	return graphql.ID(a.author.ID)
}

func (a *authorResolver) Name() string {
	return a.author.Name
}

func (a *authorResolver) Born() *int32 {
	if a.author.Born == nil {
		return nil
	}
	born := int32(*a.author.Born)
	return &born
}

func (a *authorResolver) BookCount(ctx context.Context) *int32 {
	count := 0
	if a.bookCount != nil {
		count = *a.bookCount
	} else {
		count = a.svc.CountBooksBy(ctx, a.author.Name)
	}
	c := int32(count)
	return &c
}
