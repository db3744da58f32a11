package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"library-backend/internal/domains/catalog/service"
	"library-backend/pkg/container"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "export <out.xlsx>",
		Short:   "Write the (seeded) catalog to a spreadsheet",
		Example: `  library export catalog.xlsx --seed data/library.yaml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			appContainer, err := container.NewContainer(ctx, opts.cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize container: %w", err)
			}

			f, err := service.BuildCatalogWorkbook(appContainer.CatalogService.Snapshot(ctx))
			if err != nil {
				return err
			}
			defer f.Close()

			if err := f.SaveAs(args[0]); err != nil {
				return fmt.Errorf("failed to save workbook: %w", err)
			}

			log.Info().Str("file", args[0]).Msg("Catalog exported")
			return nil
		},
	}
}
