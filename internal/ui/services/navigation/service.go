package navigation

import (
	"fmt"
	"log/slog"
	"time"

	"poemdeck/internal/clock"
	"poemdeck/internal/domain"
	"poemdeck/internal/eventbus"
	"poemdeck/internal/logic"
	"poemdeck/internal/ui/services/events"
)

// Service moves the collection cursor in response to user intents.
// Every call takes the transition lock and releases it only after the cooldown,
// whether or not the move succeeded; calls arriving while locked are dropped.
type Service struct {
	state     *State
	store     logic.Collection
	scheduler clock.Scheduler
	listener  events.SelectionListener
	publish   func(eventbus.DomainEvent)
	cooldown  time.Duration
}

// Option configures a Service
type Option func(*Service)

// WithCooldown overrides DefaultCooldown
func WithCooldown(d time.Duration) Option {
	return func(s *Service) { s.cooldown = d }
}

// WithBus publishes diagnostic events to bus
func WithBus(bus eventbus.EventBus) Option {
	return func(s *Service) { s.publish = eventbus.Publisher(bus) }
}

// NewService creates a new navigation service
func NewService(store logic.Collection, scheduler clock.Scheduler, listener events.SelectionListener, opts ...Option) *Service {
	if listener == nil {
		listener = events.NullListener{}
	}
	s := &Service{
		state:     &State{},
		store:     store,
		scheduler: scheduler,
		listener:  listener,
		publish:   eventbus.Publisher(nil),
		cooldown:  DefaultCooldown,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Locked reports whether the transition lock is held
func (s *Service) Locked() bool {
	return s.state.Locked
}

// GoPrev moves to the previous poem
func (s *Service) GoPrev() {
	s.guarded(string(DirectionPrev), s.store.Retreat)
}

// GoNext moves to the next poem
func (s *Service) GoNext() {
	s.guarded(string(DirectionNext), s.store.Advance)
}

// GoToIndex jumps to index. Out-of-range indices are a silent no-op.
func (s *Service) GoToIndex(index int) {
	s.guarded(fmt.Sprintf("index:%d", index), func() (domain.Poem, bool) {
		if !s.store.SetCursor(index) {
			return domain.Poem{}, false
		}
		return s.store.Current(), true
	})
}

// Navigate handles navigation in a direction
func (s *Service) Navigate(direction Direction) {
	switch direction {
	case DirectionPrev:
		s.GoPrev()
	case DirectionNext:
		s.GoNext()
	case DirectionFirst:
		s.GoToIndex(0)
	case DirectionLast:
		s.GoToIndex(s.store.Count() - 1)
	default:
		slog.Warn("navigation: unknown direction", slog.String("direction", string(direction)))
	}
}

func (s *Service) guarded(intent string, move func() (domain.Poem, bool)) {
	if s.state.Locked {
		slog.Debug("navigation: dropped during cooldown", slog.String("intent", intent))
		s.publish(eventbus.NavigationDroppedEvent{Intent: intent})
		return
	}

	s.state.Locked = true
	if poem, ok := move(); ok {
		slog.Debug("navigation: moved",
			slog.String("intent", intent),
			slog.Int("index", s.store.CurrentIndex()),
			slog.Int("id", poem.ID))
		s.listener.OnSelectionChanged(poem)
	}

	s.scheduler.AfterFunc(s.cooldown, func() {
		s.state.Locked = false
	})
}
