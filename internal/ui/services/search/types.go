package search

import (
	"time"

	"poemdeck/internal/clock"
	"poemdeck/internal/domain"
)

// DefaultDebounce is the quiet period after the last keystroke before a query runs
const DefaultDebounce = 300 * time.Millisecond

// NoHighlight marks that no result is highlighted
const NoHighlight = -1

// State holds search state
type State struct {
	Query          string // current contents of the search input
	PendingQuery   string // query waiting for the debounce to expire
	Pending        clock.Timer
	PanelOpen      bool
	ResultsVisible bool
	Results        []domain.SearchResult
	Highlighted    int
}
