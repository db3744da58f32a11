package main

import (
	"github.com/gin-gonic/gin"

	"library-backend/internal/shared/middleware"
	"library-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	setupGraphQLRoutes(router, c)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", c.CatalogHandler.Health)
		setupExportRoutes(v1, c)
	}

	return router
}

// ========================================
// GRAPHQL ROUTES
// ========================================
func setupGraphQLRoutes(router *gin.Engine, c *container.Container) {
	path := c.Config.GraphQL.Path
	router.POST(path, c.GraphQLHandler.Post)
	router.GET(path, c.GraphQLHandler.Get)
}

// ========================================
// EXPORT ROUTES
// ========================================
func setupExportRoutes(v1 *gin.RouterGroup, c *container.Container) {
	export := v1.Group("/export")
	{
		export.GET("/books.xlsx", c.CatalogHandler.ExportExcel)
	}
}
