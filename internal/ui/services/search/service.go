package search

import (
	"log/slog"
	"strings"
	"time"

	"poemdeck/internal/clock"
	"poemdeck/internal/domain"
	"poemdeck/internal/eventbus"
	"poemdeck/internal/logic"
	"poemdeck/internal/ui/services/events"
)

// Service handles search functionality
type Service struct {
	state     *State
	store     logic.Collection
	scheduler clock.Scheduler
	listener  events.SelectionListener
	publish   func(eventbus.DomainEvent)
	debounce  time.Duration
}

// Option configures a Service
type Option func(*Service)

// WithDebounce overrides DefaultDebounce
func WithDebounce(d time.Duration) Option {
	return func(s *Service) { s.debounce = d }
}

// WithBus publishes diagnostic events to bus
func WithBus(bus eventbus.EventBus) Option {
	return func(s *Service) { s.publish = eventbus.Publisher(bus) }
}

// NewService creates a new search service
func NewService(store logic.Collection, scheduler clock.Scheduler, listener events.SelectionListener, opts ...Option) *Service {
	if listener == nil {
		listener = events.NullListener{}
	}
	s := &Service{
		state:     &State{Highlighted: NoHighlight},
		store:     store,
		scheduler: scheduler,
		listener:  listener,
		publish:   eventbus.Publisher(nil),
		debounce:  DefaultDebounce,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnQueryChanged records the new input text and (re)starts the debounce.
// Blank input clears the results immediately.
func (s *Service) OnQueryChanged(text string) {
	s.state.Query = text
	s.cancelPending()

	if strings.TrimSpace(text) == "" {
		s.hideResults()
		return
	}

	s.state.PendingQuery = text
	s.state.Pending = s.scheduler.AfterFunc(s.debounce, func() {
		query := s.state.PendingQuery
		s.state.Pending = nil
		s.state.PendingQuery = ""
		s.ExecuteSearch(query)
	})
}

// ExecuteSearch runs the query against the collection and shows the results
func (s *Service) ExecuteSearch(text string) []domain.SearchResult {
	results := s.store.Search(text)

	s.state.Results = results
	s.state.Highlighted = NoHighlight
	s.state.ResultsVisible = true

	slog.Debug("search: executed", slog.String("query", text), slog.Int("matches", len(results)))
	s.publish(eventbus.SearchExecutedEvent{Query: strings.TrimSpace(text), Matches: len(results)})
	return results
}

// SelectResult moves the cursor to the poem at collection index and closes the panel
func (s *Service) SelectResult(index int) bool {
	if !s.store.SetCursor(index) {
		return false
	}
	s.Close()
	s.listener.OnSelectionChanged(s.store.Current())
	return true
}

// HighlightNext moves the highlight down, clamped to the last result
func (s *Service) HighlightNext() {
	if !s.navigable() {
		return
	}
	if s.state.Highlighted < len(s.state.Results)-1 {
		s.state.Highlighted++
	}
}

// HighlightPrev moves the highlight up, clamped to the first result
func (s *Service) HighlightPrev() {
	if !s.navigable() {
		return
	}
	s.state.Highlighted--
	if s.state.Highlighted < 0 {
		s.state.Highlighted = 0
	}
}

// SelectHighlighted selects the highlighted result; no-op if none is highlighted
func (s *Service) SelectHighlighted() bool {
	if !s.navigable() || s.state.Highlighted == NoHighlight {
		return false
	}
	return s.SelectResult(s.state.Results[s.state.Highlighted].SourceIndex)
}

// Escape closes the panel and clears the query unconditionally
func (s *Service) Escape() {
	s.Close()
}

// Open shows the panel. A non-empty query is re-run at once, without debounce.
func (s *Service) Open() {
	if !s.state.PanelOpen {
		s.state.PanelOpen = true
		s.publish(eventbus.SearchPanelEvent{Open: true})
	}
	if strings.TrimSpace(s.state.Query) != "" {
		s.cancelPending()
		s.ExecuteSearch(s.state.Query)
	}
}

// Close hides the panel, clears the query and drops any pending search
func (s *Service) Close() {
	s.cancelPending()
	s.state.Query = ""
	s.hideResults()
	if s.state.PanelOpen {
		s.state.PanelOpen = false
		s.publish(eventbus.SearchPanelEvent{Open: false})
	}
}

// Toggle opens a closed panel and closes an open one
func (s *Service) Toggle() {
	if s.state.PanelOpen {
		s.Close()
		return
	}
	s.Open()
}

// GetQuery returns the current search input text
func (s *Service) GetQuery() string {
	return s.state.Query
}

// IsOpen reports whether the search panel is shown
func (s *Service) IsOpen() bool {
	return s.state.PanelOpen
}

// ResultsVisible reports whether the results list is shown
func (s *Service) ResultsVisible() bool {
	return s.state.ResultsVisible
}

// Results returns the currently rendered results
func (s *Service) Results() []domain.SearchResult {
	return s.state.Results
}

// Highlighted returns the highlighted position within Results, or NoHighlight
func (s *Service) Highlighted() int {
	return s.state.Highlighted
}

// HasPending reports whether a debounced query is waiting to run
func (s *Service) HasPending() bool {
	return s.state.Pending != nil
}

func (s *Service) navigable() bool {
	return s.state.ResultsVisible && len(s.state.Results) > 0
}

func (s *Service) cancelPending() {
	if s.state.Pending != nil {
		s.state.Pending.Stop()
		s.state.Pending = nil
		s.state.PendingQuery = ""
	}
}

func (s *Service) hideResults() {
	wasVisible := s.state.ResultsVisible
	s.state.Results = nil
	s.state.Highlighted = NoHighlight
	s.state.ResultsVisible = false
	if wasVisible {
		s.publish(eventbus.SearchClearedEvent{})
	}
}
