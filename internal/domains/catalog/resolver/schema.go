package resolver

import (
	"context"
	_ "embed"
	"fmt"
	"runtime/debug"

	"github.com/graph-gophers/graphql-go"
	"github.com/rs/zerolog/log"

	"library-backend/internal/domains/catalog/service"
)

//go:embed schema.graphql
var SchemaSDL string

// Options tunes query execution limits. Zero values keep the engine defaults.
type Options struct {
	MaxDepth       int
	MaxParallelism int
}

// NewSchema parses the library schema and binds it to the catalog service.
func NewSchema(svc service.ServiceInterface, opts Options) (*graphql.Schema, error) {
	schemaOpts := []graphql.SchemaOpt{
		graphql.Logger(panicLogger{}),
	}
	if opts.MaxDepth > 0 {
		schemaOpts = append(schemaOpts, graphql.MaxDepth(opts.MaxDepth))
	}
	if opts.MaxParallelism > 0 {
		schemaOpts = append(schemaOpts, graphql.MaxParallelism(opts.MaxParallelism))
	}

	schema, err := graphql.ParseSchema(SchemaSDL, NewResolver(svc), schemaOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse graphql schema: %w", err)
	}
	return schema, nil
}

// panicLogger reports resolver panics through zerolog.
type panicLogger struct{}

func (panicLogger) LogPanic(ctx context.Context, value interface{}) {
	log.Ctx(ctx).Error().
		Interface("panic", value).
		Str("stack", string(debug.Stack())).
		Msg("GraphQL resolver panic")
}
