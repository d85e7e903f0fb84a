package logic

import (
	"errors"

	"poemdeck/internal/domain"
)

var (
	ErrEmptyCollection = errors.New("collection is empty")
	ErrDuplicateID     = errors.New("duplicate poem id")
)

// Collection provides cursor-based access to the poem collection
type Collection interface {
	Count() int
	Get(index int) (domain.Poem, bool)
	GetByID(id int) (domain.Poem, bool)
	IndexOfID(id int) (int, bool)
	Current() domain.Poem
	CurrentIndex() int
	SetCursor(index int) bool
	Advance() (domain.Poem, bool)
	Retreat() (domain.Poem, bool)
	HasNext() bool
	HasPrev() bool
	Search(query string) []domain.SearchResult
}
