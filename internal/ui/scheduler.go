package ui

import (
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"poemdeck/internal/clock"
)

const (
	timerPending int32 = iota
	timerStopped
	timerFired
)

// ProgramScheduler runs timer callbacks on the Bubble Tea update loop.
// Expiry is posted as a timerFiredMsg so callbacks never race with Update.
type ProgramScheduler struct {
	mu      sync.Mutex
	program *tea.Program
	base    clock.Scheduler
}

// NewProgramScheduler creates a scheduler over base, or over clock.Real when base is nil.
// SetProgram must be called before the first timer fires.
func NewProgramScheduler(base clock.Scheduler) *ProgramScheduler {
	if base == nil {
		base = clock.Real{}
	}
	return &ProgramScheduler{base: base}
}

// SetProgram sets the program that receives timer messages
func (s *ProgramScheduler) SetProgram(p *tea.Program) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.program = p
}

// AfterFunc implements clock.Scheduler
func (s *ProgramScheduler) AfterFunc(d time.Duration, f func()) clock.Timer {
	t := &programTimer{fn: f}
	t.timer = s.base.AfterFunc(d, func() {
		if t.state.Load() != timerPending {
			return
		}
		s.mu.Lock()
		p := s.program
		s.mu.Unlock()
		if p != nil {
			p.Send(timerFiredMsg{timer: t})
		}
	})
	return t
}

type programTimer struct {
	timer clock.Timer
	fn    func()
	state atomic.Int32
}

// Stop prevents the callback from running, even if its message is already queued
func (t *programTimer) Stop() bool {
	t.timer.Stop()
	return t.state.CompareAndSwap(timerPending, timerStopped)
}

// fire runs the callback unless the timer was stopped first
func (t *programTimer) fire() {
	if t.state.CompareAndSwap(timerPending, timerFired) {
		t.fn()
	}
}
