package model

// Author is a named writer referenced by books through its name.
// Name is unique across the catalog and never changes after creation.
type Author struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Born *int   `json:"born,omitempty" yaml:"born,omitempty"` // nil until set via EditAuthor
}

// AuthorWithCount is an Author plus the number of books written under its name.
// BookCount is derived on every read and never stored.
type AuthorWithCount struct {
	Author
	BookCount int `json:"bookCount"`
}

// Clone returns a copy that shares no memory with a.
func (a Author) Clone() Author {
	out := a
	if a.Born != nil {
		born := *a.Born
		out.Born = &born
	}
	return out
}

// WithBorn returns a copy of a with the birth year replaced.
func (a Author) WithBorn(year int) Author {
	out := a.Clone()
	out.Born = &year
	return out
}
