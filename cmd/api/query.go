package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"library-backend/pkg/container"
)

func newQueryCmd(opts *rootOptions) *cobra.Command {
	var (
		variables     string
		operationName string
	)

	cmd := &cobra.Command{
		Use:   "query <document>",
		Short: "Execute one GraphQL document against a fresh catalog",
		Long: `Builds a catalog (seeded when --seed or CATALOG_SEED_FILE is set), executes
the document and prints the JSON response. The document may be inline,
"@path" to read a file, or "-" to read standard input.`,
		Example: `  library query '{ bookCount authorCount }' --seed data/library.yaml
  library query @queries/genre.graphql --variables '{"genre":"classic"}'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			document, err := readDocument(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			var vars map[string]interface{}
			if variables != "" {
				if err := jsoniter.UnmarshalFromString(variables, &vars); err != nil {
					return fmt.Errorf("invalid --variables: %w", err)
				}
			}

			appContainer, err := container.NewContainer(cmd.Context(), opts.cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize container: %w", err)
			}

			resp := appContainer.Schema.Exec(cmd.Context(), document, operationName, vars)

			raw, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(resp)
			if err != nil {
				return fmt.Errorf("failed to encode response: %w", err)
			}
			// resp.Data is a raw message; indent the whole document, not just the envelope.
			var out bytes.Buffer
			if err := json.Indent(&out, raw, "", "  "); err != nil {
				return fmt.Errorf("failed to format response: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.String())

			if len(resp.Errors) > 0 {
				return fmt.Errorf("query returned %d error(s)", len(resp.Errors))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&variables, "variables", "", "Variables as a JSON object")
	cmd.Flags().StringVar(&operationName, "operation", "", "Operation name when the document has several")

	return cmd
}

func readDocument(arg string, stdin io.Reader) (string, error) {
	switch {
	case arg == "-":
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(raw), nil
	case strings.HasPrefix(arg, "@"):
		raw, err := os.ReadFile(strings.TrimPrefix(arg, "@"))
		if err != nil {
			return "", fmt.Errorf("failed to read document: %w", err)
		}
		return string(raw), nil
	default:
		return arg, nil
	}
}
