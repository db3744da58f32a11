package container

import (
	"context"
	"fmt"

	"github.com/graph-gophers/graphql-go"
	"github.com/rs/zerolog/log"

	"library-backend/internal/config"
	catalogHandler "library-backend/internal/domains/catalog/handler"
	catalogRepo "library-backend/internal/domains/catalog/repository"
	"library-backend/internal/domains/catalog/resolver"
	"library-backend/internal/domains/catalog/seed"
	catalogService "library-backend/internal/domains/catalog/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the application.
type Container struct {
	Config *config.Config

	// Repository layer
	CatalogRepo catalogRepo.RepositoryInterface

	// Service layer
	CatalogService catalogService.ServiceInterface

	// GraphQL layer
	Schema *graphql.Schema

	// Handler layer
	GraphQLHandler *catalogHandler.GraphQLHandler
	CatalogHandler *catalogHandler.CatalogHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer builds the dependency graph in order:
// config → repository → service (+ seed) → schema → handlers.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	log.Debug().Str("env", cfg.App.Environment).Msg("Initializing container")

	c := &Container{Config: cfg}

	// ========================================
	// STEP 1: REPOSITORY + SERVICE
	// ========================================
	c.CatalogRepo = catalogRepo.NewMemoryRepository(nil)
	c.CatalogService = catalogService.NewCatalogService(c.CatalogRepo)

	// ========================================
	// STEP 2: SEED DATA (optional)
	// ========================================
	if cfg.Catalog.SeedFile != "" {
		data, err := seed.Load(cfg.Catalog.SeedFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load seed file: %w", err)
		}
		if err := c.CatalogService.Seed(ctx, data); err != nil {
			return nil, fmt.Errorf("failed to seed catalog: %w", err)
		}
		log.Info().Str("file", cfg.Catalog.SeedFile).Msg("Seed data loaded")
	}

	// ========================================
	// STEP 3: GRAPHQL SCHEMA
	// ========================================
	schema, err := resolver.NewSchema(c.CatalogService, resolver.Options{
		MaxDepth:       cfg.GraphQL.MaxDepth,
		MaxParallelism: cfg.GraphQL.MaxParallelism,
	})
	if err != nil {
		return nil, err
	}
	c.Schema = schema

	// ========================================
	// STEP 4: HANDLERS
	// ========================================
	c.GraphQLHandler = catalogHandler.NewGraphQLHandler(schema, cfg.GraphQL.Playground)
	c.CatalogHandler = catalogHandler.NewCatalogHandler(c.CatalogService, cfg.App.Name)

	log.Debug().Msg("Container initialized")
	return c, nil
}

// Cleanup releases container resources. The catalog lives in memory, so this
// only reports final counts.
func (c *Container) Cleanup() {
	ctx := context.Background()
	log.Info().
		Int("books", c.CatalogService.BookCount(ctx)).
		Int("authors", c.CatalogService.AuthorCount(ctx)).
		Msg("Container cleanup")
}
