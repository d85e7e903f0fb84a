package navigation

import "time"

// DefaultCooldown is how long the transition lock stays held after a navigation call
const DefaultCooldown = 300 * time.Millisecond

// Direction represents a navigation intent
type Direction string

const (
	DirectionPrev  Direction = "prev"
	DirectionNext  Direction = "next"
	DirectionFirst Direction = "first"
	DirectionLast  Direction = "last"
)

// State holds all navigation-related state
type State struct {
	Locked bool
}
