package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/catalog/model"
	"library-backend/internal/domains/catalog/repository"
	"library-backend/internal/domains/catalog/service"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	data, err := Load("testdata/library.yaml")
	require.NoError(t, err)

	require.Len(t, data.Authors, 5)
	require.Len(t, data.Books, 7)

	assert.Equal(t, "Robert Martin", data.Authors[0].Name)
	require.NotNil(t, data.Authors[0].Born)
	assert.Equal(t, 1952, *data.Authors[0].Born)
	assert.Nil(t, data.Authors[3].Born)

	assert.Equal(t, model.AddBookInput{
		Title:     "Agile software development",
		Author:    "Robert Martin",
		Published: 2002,
		Genres:    []string{"agile", "patterns", "design"},
	}, data.Books[1])
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "seed.json", `{
		"authors": [{"name": "Ann", "born": 1900}],
		"books": [{"title": "T", "author": "Ann", "published": 1950, "genres": ["x"]}]
	}`)

	data, err := Load(path)
	require.NoError(t, err)
	require.Len(t, data.Authors, 1)
	assert.Equal(t, 1900, *data.Authors[0].Born)
	require.Len(t, data.Books, 1)
	assert.Equal(t, []string{"x"}, data.Books[0].Genres)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		errMsg  string
	}{
		{name: "unsupported extension", file: "seed.csv", content: "a,b", errMsg: "unsupported seed file format"},
		{name: "broken yaml", file: "seed.yaml", content: "books: [", errMsg: "failed to parse YAML seed"},
		{name: "broken json", file: "seed.json", content: "{", errMsg: "failed to parse JSON seed"},
		{name: "missing author", file: "seed.yaml", content: "books:\n  - title: Orphan\n", errMsg: "seed book 1"},
		{name: "missing title", file: "seed.yaml", content: "books:\n  - author: Ann\n", errMsg: "seed book 1"},
		{name: "nameless author", file: "seed.yaml", content: "authors:\n  - born: 1900\n", errMsg: "seed author 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_WorkbookRoundTrip(t *testing.T) {
	ctx := context.Background()

	original, err := Load("testdata/library.yaml")
	require.NoError(t, err)

	svc := service.NewCatalogService(repository.NewMemoryRepository(nil))
	require.NoError(t, svc.Seed(ctx, original))

	f, err := service.BuildCatalogWorkbook(svc.Snapshot(ctx))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "export.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	data, err := Load(path)
	require.NoError(t, err)
	require.Len(t, data.Authors, len(original.Authors))
	require.Len(t, data.Books, len(original.Books))

	for i := range original.Books {
		assert.Equal(t, original.Books[i], data.Books[i])
	}
	for i := range original.Authors {
		assert.Equal(t, original.Authors[i].Name, data.Authors[i].Name)
		assert.Equal(t, original.Authors[i].Born, data.Authors[i].Born)
	}

	reloaded := service.NewCatalogService(repository.NewMemoryRepository(nil))
	require.NoError(t, reloaded.Seed(ctx, data))
	assert.Equal(t, svc.BookCount(ctx), reloaded.BookCount(ctx))
	assert.Equal(t, svc.AuthorCount(ctx), reloaded.AuthorCount(ctx))
}

func TestSplitGenres(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitGenres(" a, ,b ,"))
	assert.Equal(t, []string{}, splitGenres(""))
}
