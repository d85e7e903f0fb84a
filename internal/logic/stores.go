package logic

import (
	"fmt"

	"poemdeck/internal/domain"
)

// MemoryCollection is an in-memory implementation of Collection.
// The poem slice is fixed at construction; only the cursor moves.
type MemoryCollection struct {
	poems  []domain.Poem
	cursor int
}

// NewMemoryCollection validates poems and creates a collection with the cursor at 0
func NewMemoryCollection(poems []domain.Poem) (*MemoryCollection, error) {
	if len(poems) == 0 {
		return nil, ErrEmptyCollection
	}

	seen := make(map[int]bool, len(poems))
	for i, p := range poems {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("invalid poem at index %d: %w", i, err)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, p.ID)
		}
		seen[p.ID] = true
	}

	// Copy so callers cannot mutate the collection behind our back
	owned := make([]domain.Poem, len(poems))
	for i, p := range poems {
		p.Lines = append([]string(nil), p.Lines...)
		owned[i] = p
	}

	return &MemoryCollection{poems: owned}, nil
}

func (c *MemoryCollection) Count() int {
	return len(c.poems)
}

func (c *MemoryCollection) Get(index int) (domain.Poem, bool) {
	if index < 0 || index >= len(c.poems) {
		return domain.Poem{}, false
	}
	return c.poems[index], true
}

func (c *MemoryCollection) GetByID(id int) (domain.Poem, bool) {
	if i, ok := c.IndexOfID(id); ok {
		return c.poems[i], true
	}
	return domain.Poem{}, false
}

func (c *MemoryCollection) IndexOfID(id int) (int, bool) {
	for i, p := range c.poems {
		if p.ID == id {
			return i, true
		}
	}
	return -1, false
}

func (c *MemoryCollection) Current() domain.Poem {
	return c.poems[c.cursor]
}

func (c *MemoryCollection) CurrentIndex() int {
	return c.cursor
}

func (c *MemoryCollection) SetCursor(index int) bool {
	if index < 0 || index >= len(c.poems) {
		return false
	}
	c.cursor = index
	return true
}

func (c *MemoryCollection) Advance() (domain.Poem, bool) {
	if !c.HasNext() {
		return domain.Poem{}, false
	}
	c.cursor++
	return c.poems[c.cursor], true
}

func (c *MemoryCollection) Retreat() (domain.Poem, bool) {
	if !c.HasPrev() {
		return domain.Poem{}, false
	}
	c.cursor--
	return c.poems[c.cursor], true
}

func (c *MemoryCollection) HasNext() bool {
	return c.cursor < len(c.poems)-1
}

func (c *MemoryCollection) HasPrev() bool {
	return c.cursor > 0
}

func (c *MemoryCollection) Search(query string) []domain.SearchResult {
	return Match(c.poems, query)
}
