package resolver

import (
	"context"
	"fmt"
	"testing"

	"github.com/graph-gophers/graphql-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/catalog/repository"
	"library-backend/internal/domains/catalog/service"
)

func newTestSchema(t *testing.T) *graphql.Schema {
	t.Helper()

	n := 0
	ids := func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}

	svc := service.NewCatalogService(repository.NewMemoryRepository(ids))
	schema, err := NewSchema(svc, Options{MaxDepth: 10, MaxParallelism: 4})
	require.NoError(t, err)
	return schema
}

func exec(t *testing.T, schema *graphql.Schema, query string, variables map[string]interface{}) string {
	t.Helper()

	resp := schema.Exec(context.Background(), query, "", variables)
	require.Empty(t, resp.Errors, "unexpected errors: %v", resp.Errors)
	return string(resp.Data)
}

const addBookMutation = `
mutation Add($title: String!, $author: String!, $published: Int!, $genres: [String!]!) {
  addBook(title: $title, author: $author, published: $published, genres: $genres) {
    id
    title
    published
    genres
    author { name born bookCount }
  }
}`

func TestSchema_Scenario(t *testing.T) {
	schema := newTestSchema(t)

	got := exec(t, schema, addBookMutation, map[string]interface{}{
		"title":     "Clean Code",
		"author":    "Robert Martin",
		"published": float64(2008),
		"genres":    []interface{}{"refactoring"},
	})
	assert.JSONEq(t, `{"addBook":{
		"id":"id-2","title":"Clean Code","published":2008,"genres":["refactoring"],
		"author":{"name":"Robert Martin","born":null,"bookCount":1}}}`, got)

	got = exec(t, schema, `{ authorCount bookCount }`, nil)
	assert.JSONEq(t, `{"authorCount":1,"bookCount":1}`, got)

	exec(t, schema, `mutation {
	  addBook(title: "Agile Principles", author: "Robert Martin", published: 2002, genres: ["agile", "design"]) { id }
	}`, nil)

	got = exec(t, schema, `{ authorCount bookCount }`, nil)
	assert.JSONEq(t, `{"authorCount":1,"bookCount":2}`, got)

	got = exec(t, schema, `{ allAuthors { id name born bookCount } }`, nil)
	assert.JSONEq(t, `{"allAuthors":[{"id":"id-1","name":"Robert Martin","born":null,"bookCount":2}]}`, got)

	got = exec(t, schema, `mutation { editAuthor(name: "Robert Martin", setBornTo: 1952) { id name born } }`, nil)
	assert.JSONEq(t, `{"editAuthor":{"id":"id-1","name":"Robert Martin","born":1952}}`, got)

	got = exec(t, schema, `{ allBooks(genre: "agile") { title } }`, nil)
	assert.JSONEq(t, `{"allBooks":[{"title":"Agile Principles"}]}`, got)

	got = exec(t, schema, `{ allBooks(author: "Robert Martin") { title } }`, nil)
	assert.JSONEq(t, `{"allBooks":[{"title":"Clean Code"},{"title":"Agile Principles"}]}`, got)
}

func TestSchema_AllBooksFilters(t *testing.T) {
	schema := newTestSchema(t)
	for _, m := range []string{
		`mutation { addBook(title: "Dune", author: "Herbert", published: 1965, genres: ["scifi"]) { id } }`,
		`mutation { addBook(title: "Emma", author: "Austen", published: 1815, genres: ["classic"]) { id } }`,
		`mutation { addBook(title: "Blank", author: "Nobody", published: 2000, genres: []) { id } }`,
	} {
		exec(t, schema, m, nil)
	}

	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{
			name:     "all",
			query:    `{ allBooks { title } }`,
			expected: `{"allBooks":[{"title":"Dune"},{"title":"Emma"},{"title":"Blank"}]}`,
		},
		{
			name:     "author or genre",
			query:    `{ allBooks(author: "Herbert", genre: "classic") { title } }`,
			expected: `{"allBooks":[{"title":"Dune"},{"title":"Emma"}]}`,
		},
		{
			name:     "empty author is ignored",
			query:    `{ allBooks(author: "") { title } }`,
			expected: `{"allBooks":[{"title":"Dune"},{"title":"Emma"},{"title":"Blank"}]}`,
		},
		{
			name:     "empty author and genre are ignored",
			query:    `{ allBooks(author: "", genre: "") { title } }`,
			expected: `{"allBooks":[{"title":"Dune"},{"title":"Emma"},{"title":"Blank"}]}`,
		},
		{
			name:     "no match",
			query:    `{ allBooks(genre: "poetry") { title } }`,
			expected: `{"allBooks":[]}`,
		},
		{
			name:     "empty genres list",
			query:    `{ allBooks(author: "Nobody") { genres author { name } } }`,
			expected: `{"allBooks":[{"genres":[],"author":{"name":"Nobody"}}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.JSONEq(t, tt.expected, exec(t, schema, tt.query, nil))
		})
	}
}

func TestSchema_EditUnknownAuthorReturnsNull(t *testing.T) {
	schema := newTestSchema(t)

	got := exec(t, schema, `mutation { editAuthor(name: "Ghost", setBornTo: 1900) { name } }`, nil)
	assert.JSONEq(t, `{"editAuthor":null}`, got)

	got = exec(t, schema, `{ authorCount allAuthors { name } }`, nil)
	assert.JSONEq(t, `{"authorCount":0,"allAuthors":[]}`, got)
}

func TestSchema_EditedAuthorBookCount(t *testing.T) {
	schema := newTestSchema(t)
	exec(t, schema, `mutation { addBook(title: "T", author: "Ann", published: 1, genres: []) { id } }`, nil)

	got := exec(t, schema, `mutation { editAuthor(name: "Ann", setBornTo: 1900) { born bookCount } }`, nil)
	assert.JSONEq(t, `{"editAuthor":{"born":1900,"bookCount":1}}`, got)
}

func TestSchema_RejectsMissingArguments(t *testing.T) {
	schema := newTestSchema(t)

	resp := schema.Exec(context.Background(), `mutation { addBook(title: "No author", published: 1, genres: []) { id } }`, "", nil)
	assert.NotEmpty(t, resp.Errors)

	got := exec(t, schema, `{ bookCount }`, nil)
	assert.JSONEq(t, `{"bookCount":0}`, got)
}

func TestSchema_MaxDepth(t *testing.T) {
	svc := service.NewCatalogService(repository.NewMemoryRepository(nil))
	schema, err := NewSchema(svc, Options{MaxDepth: 2})
	require.NoError(t, err)

	resp := schema.Exec(context.Background(), `{ allBooks { author { name } } }`, "", nil)
	assert.NotEmpty(t, resp.Errors)
}
