// Package clock abstracts delayed callbacks so debounce and cooldown logic can
// be driven by real timers, by the UI event loop, or by a test clock.
package clock

import "time"

// Timer is a pending callback that can be cancelled
type Timer interface {
	// Stop cancels the callback. It reports false if the callback already ran or was stopped.
	Stop() bool
}

// Scheduler runs f once after d has elapsed
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Real schedules callbacks on the runtime timer. Callbacks run on their own goroutine.
type Real struct{}

func (Real) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
