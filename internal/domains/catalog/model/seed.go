package model

// SeedAuthor is an author row of a seed file. Born is optional.
type SeedAuthor struct {
	Name string `json:"name" yaml:"name"`
	Born *int   `json:"born,omitempty" yaml:"born,omitempty"`
}

// SeedData is the initial content loaded into an empty catalog.
// Authors referenced only by books are created implicitly.
type SeedData struct {
	Authors []SeedAuthor   `json:"authors" yaml:"authors"`
	Books   []AddBookInput `json:"books" yaml:"books"`
}

// Sheet names shared by the xlsx export and the xlsx seed loader.
const (
	SheetAuthors = "Authors"
	SheetBooks   = "Books"
)
