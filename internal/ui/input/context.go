package input

import "poemdeck/internal/ui/services/search"

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Search *search.Service
}

func (c *ModelContext) SearchOpen() bool {
	return c.Search != nil && c.Search.IsOpen()
}
