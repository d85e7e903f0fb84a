package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublishDeliversSynchronously(t *testing.T) {
	b := New()
	var got []DomainEvent
	b.Subscribe(EventSearchExecuted, func(e DomainEvent) { got = append(got, e) })

	b.Publish(SearchExecutedEvent{Query: "moon", Matches: 2})
	b.Publish(SearchClearedEvent{})

	assert.Equal(t, []DomainEvent{SearchExecutedEvent{Query: "moon", Matches: 2}}, got)
}

func TestSubscribeAll(t *testing.T) {
	b := New()
	var types []EventType
	b.SubscribeAll(func(e DomainEvent) { types = append(types, e.Type()) })

	b.Publish(SearchPanelEvent{Open: true})
	b.Publish(NavigationDroppedEvent{Intent: "next"})

	assert.Equal(t, []EventType{EventSearchPanel, EventNavigationDropped}, types)
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	count := 0
	unsubscribe := b.Subscribe(EventSearchCleared, func(DomainEvent) { count++ })
	other := 0
	b.Subscribe(EventSearchCleared, func(DomainEvent) { other++ })

	b.Publish(SearchClearedEvent{})
	unsubscribe()
	b.Publish(SearchClearedEvent{})

	assert.Equal(t, 1, count)
	assert.Equal(t, 2, other)
}

func TestHandlerPanicIsContained(t *testing.T) {
	b := New()
	reached := false
	b.Subscribe(EventSearchCleared, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventSearchCleared, func(DomainEvent) { reached = true })

	assert.NotPanics(t, func() { b.Publish(SearchClearedEvent{}) })
	assert.True(t, reached)
}

func TestPublisherNilSafe(t *testing.T) {
	assert.NotPanics(t, func() { Publisher(nil)(SearchClearedEvent{}) })
}
