package events

import "poemdeck/internal/domain"

// SelectionListener is the single consumer of cursor changes.
// Navigation and search both report through it, so the consumer cannot tell which one moved the cursor.
type SelectionListener interface {
	OnSelectionChanged(poem domain.Poem)
}

// SelectionListenerFunc adapts a function to SelectionListener
type SelectionListenerFunc func(poem domain.Poem)

func (f SelectionListenerFunc) OnSelectionChanged(poem domain.Poem) { f(poem) }

// NullListener is a no-op implementation of SelectionListener
type NullListener struct{}

func (NullListener) OnSelectionChanged(domain.Poem) {}
