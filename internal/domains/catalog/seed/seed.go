// Package seed reads initial catalog content from YAML, JSON or XLSX files.
package seed

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"library-backend/internal/domains/catalog/model"
)

// Load parses the seed file at path, choosing the decoder by extension.
func Load(path string) (model.SeedData, error) {
	var data model.SeedData

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		raw, err := os.ReadFile(path)
		if err != nil {
			return data, fmt.Errorf("failed to read seed file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return data, fmt.Errorf("failed to parse YAML seed: %w", err)
		}
	case ".json":
		raw, err := os.ReadFile(path)
		if err != nil {
			return data, fmt.Errorf("failed to read seed file: %w", err)
		}
		if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(raw, &data); err != nil {
			return data, fmt.Errorf("failed to parse JSON seed: %w", err)
		}
	case ".xlsx":
		var err error
		if data, err = loadWorkbook(path); err != nil {
			return data, err
		}
	default:
		return data, fmt.Errorf("%w: %s (supported: .yaml, .yml, .json, .xlsx)", model.ErrUnsupportedSeed, ext)
	}

	if err := Validate(data); err != nil {
		return data, err
	}
	return data, nil
}

// Validate checks presence of the fields the GraphQL schema would require.
func Validate(data model.SeedData) error {
	for i := range data.Authors {
		a := &data.Authors[i]
		if err := validation.ValidateStruct(a,
			validation.Field(&a.Name, validation.Required),
		); err != nil {
			return fmt.Errorf("seed author %d: %w", i+1, err)
		}
	}

	for i := range data.Books {
		b := &data.Books[i]
		if err := validation.ValidateStruct(b,
			validation.Field(&b.Title, validation.Required),
			validation.Field(&b.Author, validation.Required),
		); err != nil {
			return fmt.Errorf("seed book %d: %w", i+1, err)
		}
	}
	return nil
}
