package state

import (
	"poemdeck/internal/clock"
	"poemdeck/internal/domain"
)

// FadePhase is the stage of the card transition
type FadePhase int

const (
	FadeIdle FadePhase = iota
	FadeOut            // card dimmed, old content still shown
	FadeIn             // new content shown, still dimmed
)

// AppState contains the UI-only state; poem data lives in the collection
type AppState struct {
	// Displayed content; lags the cursor while a fade is running
	Displayed      domain.Poem
	DisplayedIndex int

	// Transition state
	Phase     FadePhase
	Target    domain.Poem
	FadeTimer clock.Timer

	// Terminal
	Width  int
	Height int

	StatusMessage string
	InPagerMode   bool
}

// NewAppState creates a new application state showing poem at index
func NewAppState(poem domain.Poem, index int) *AppState {
	return &AppState{
		Displayed:      poem,
		DisplayedIndex: index,
	}
}

// Dimmed reports whether the card should render faded
func (s *AppState) Dimmed() bool {
	return s.Phase != FadeIdle
}

// Show swaps the displayed content immediately
func (s *AppState) Show(poem domain.Poem, index int) {
	s.Displayed = poem
	s.DisplayedIndex = index
}

// StopFade cancels any scheduled fade step and returns to idle
func (s *AppState) StopFade() {
	if s.FadeTimer != nil {
		s.FadeTimer.Stop()
		s.FadeTimer = nil
	}
	s.Phase = FadeIdle
}
