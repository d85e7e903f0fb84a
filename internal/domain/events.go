package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventNavigationDropped EventType = "NavigationDropped"
	EventSearchExecuted    EventType = "SearchExecuted"
	EventSearchCleared     EventType = "SearchCleared"
	EventSearchPanel       EventType = "SearchPanel"
	EventCollectionLoaded  EventType = "CollectionLoaded"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// NavigationDroppedEvent is emitted when a navigation call arrives during the cooldown
type NavigationDroppedEvent struct {
	Intent string
}

func (e NavigationDroppedEvent) Type() EventType { return EventNavigationDropped }

// SearchExecutedEvent is emitted after a query has been evaluated
type SearchExecutedEvent struct {
	Query   string
	Matches int
}

func (e SearchExecutedEvent) Type() EventType { return EventSearchExecuted }

// SearchClearedEvent is emitted when results are cleared and hidden
type SearchClearedEvent struct{}

func (e SearchClearedEvent) Type() EventType { return EventSearchCleared }

// SearchPanelEvent is emitted when the search panel opens or closes
type SearchPanelEvent struct {
	Open bool
}

func (e SearchPanelEvent) Type() EventType { return EventSearchPanel }

// CollectionLoadedEvent is emitted once the initial data source has been read
type CollectionLoadedEvent struct {
	Source string
	Count  int
}

func (e CollectionLoadedEvent) Type() EventType { return EventCollectionLoaded }
