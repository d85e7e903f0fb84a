package ui

// timerFiredMsg delivers a ProgramScheduler expiry to Update
type timerFiredMsg struct {
	timer *programTimer
}

// pagerClosedMsg contains the result of an ov pager session
type pagerClosedMsg struct {
	name string
	err  error
}

// clearStatusMsg clears the status line
type clearStatusMsg struct{}
