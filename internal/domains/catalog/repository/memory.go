package repository

import (
	"sync"

	"library-backend/internal/domains/catalog/model"
	"library-backend/internal/shared/utils"
)

// IDGenerator returns a new globally unique identifier on every call.
type IDGenerator func() string

// memoryRepository keeps the whole catalog in process memory.
// A single RWMutex guards both collections so that the author
// lookup-then-insert in AddBook cannot race with another writer.
type memoryRepository struct {
	mu sync.RWMutex

	newID IDGenerator

	authors     map[string]*model.Author // keyed by name
	authorOrder []string                 // names in insertion order
	books       []model.Book             // append-only
}

// NewMemoryRepository creates an empty catalog.
// A nil generator falls back to utils.NewID.
func NewMemoryRepository(newID IDGenerator) RepositoryInterface {
	if newID == nil {
		newID = utils.NewID
	}
	return &memoryRepository{
		newID:   newID,
		authors: make(map[string]*model.Author),
	}
}

func (r *memoryRepository) ListBooks(filter model.BookFilter) []model.Book {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Book, 0, len(r.books))
	for _, b := range r.books {
		if filter.IsEmpty() || filter.Matches(b) {
			result = append(result, b.Clone())
		}
	}
	return result
}

func (r *memoryRepository) ListAuthorsWithCounts() []model.AuthorWithCount {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.AuthorWithCount, 0, len(r.authorOrder))
	for _, name := range r.authorOrder {
		result = append(result, model.AuthorWithCount{
			Author:    r.authors[name].Clone(),
			BookCount: r.countLocked(name),
		})
	}
	return result
}

func (r *memoryRepository) AddBook(input model.AddBookInput) (model.Book, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, created := r.ensureLocked(input.Author)

	book := model.Book{
		ID:         r.newID(),
		Title:      input.Title,
		Published:  input.Published,
		AuthorName: input.Author,
		Genres:     input.Genres,
	}.Clone()
	r.books = append(r.books, book)

	return book.Clone(), created
}

func (r *memoryRepository) EditAuthor(name string, born int) (model.Author, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.authors[name]
	if !ok {
		return model.Author{}, false
	}

	updated := current.WithBorn(born)
	r.authors[name] = &updated
	return updated.Clone(), true
}

func (r *memoryRepository) EnsureAuthor(name string) (model.Author, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, created := r.ensureLocked(name)
	return a.Clone(), created
}

func (r *memoryRepository) FindAuthor(name string) (model.Author, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.authors[name]
	if !ok {
		return model.Author{}, false
	}
	return a.Clone(), true
}

func (r *memoryRepository) CountBooksBy(name string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.countLocked(name)
}

func (r *memoryRepository) BookCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.books)
}

func (r *memoryRepository) AuthorCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.authorOrder)
}

// ensureLocked requires r.mu held for writing.
func (r *memoryRepository) ensureLocked(name string) (model.Author, bool) {
	if a, ok := r.authors[name]; ok {
		return *a, false
	}

	a := &model.Author{
		ID:   r.newID(),
		Name: name,
	}
	r.authors[name] = a
	r.authorOrder = append(r.authorOrder, name)
	return *a, true
}

// countLocked requires r.mu held.
func (r *memoryRepository) countLocked(name string) int {
	count := 0
	for _, b := range r.books {
		if b.AuthorName == name {
			count++
		}
	}
	return count
}
