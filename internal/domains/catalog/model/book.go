package model

import "slices"

// Book references its author by name, not by ID.
type Book struct {
	ID         string   `json:"id" yaml:"id"`
	Title      string   `json:"title" yaml:"title"`
	Published  int      `json:"published" yaml:"published"`
	AuthorName string   `json:"author" yaml:"author"`
	Genres     []string `json:"genres" yaml:"genres"`
}

// Clone returns a copy whose Genres slice is not shared with b.
func (b Book) Clone() Book {
	out := b
	out.Genres = slices.Clone(b.Genres)
	if out.Genres == nil {
		out.Genres = []string{}
	}
	return out
}

// HasGenre reports whether genre is one of the book's genres.
func (b Book) HasGenre(genre string) bool {
	return slices.Contains(b.Genres, genre)
}

// BookFilter narrows ListBooks. A nil field contributes no match.
type BookFilter struct {
	Author *string
	Genre  *string
}

// IsEmpty reports whether no filter field carries a value.
// An empty string counts as absent.
func (f BookFilter) IsEmpty() bool {
	return isBlankArg(f.Author) && isBlankArg(f.Genre)
}

func isBlankArg(s *string) bool {
	return s == nil || *s == ""
}

// Matches combines the author and genre criteria with OR.
// Each criterion only counts when its field is set.
func (f BookFilter) Matches(b Book) bool {
	if f.Author != nil && b.AuthorName == *f.Author {
		return true
	}
	if f.Genre != nil && b.HasGenre(*f.Genre) {
		return true
	}
	return false
}

// AddBookInput carries the fields of the addBook mutation.
type AddBookInput struct {
	Title     string   `json:"title" yaml:"title"`
	Author    string   `json:"author" yaml:"author"`
	Published int      `json:"published" yaml:"published"`
	Genres    []string `json:"genres" yaml:"genres"`
}
