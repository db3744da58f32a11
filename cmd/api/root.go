package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"library-backend/internal/config"
	"library-backend/pkg/logger"
)

// rootOptions is shared by every subcommand. cfg is populated in
// PersistentPreRunE, before any RunE executes.
type rootOptions struct {
	cfg      *config.Config
	seedFile string
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "library",
		Short: "GraphQL API over an in-memory catalog of books and authors",
		Long: `Library serves a GraphQL API for listing and filtering books and authors,
adding books and setting author birth years. The catalog lives in memory and
can be seeded from a YAML, JSON or XLSX file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if opts.seedFile != "" {
				cfg.Catalog.SeedFile = opts.seedFile
			}
			opts.cfg = cfg

			logger.Init(cfg.App.Environment, cfg.Log.Level)
			if cfg.App.Environment == "production" {
				gin.SetMode(gin.ReleaseMode)
			}

			log.Debug().Str("env", cfg.App.Environment).Str("version", cfg.App.Version).Msg("Config loaded")
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.seedFile, "seed", "", "Seed file (.yaml, .yml, .json, .xlsx); overrides CATALOG_SEED_FILE")

	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newQueryCmd(opts))
	cmd.AddCommand(newExportCmd(opts))

	return cmd
}
