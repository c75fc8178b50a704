package events

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	eventport "github.com/amirhossein-jamali/payledger/internal/domain/port/event"
	"github.com/amirhossein-jamali/payledger/internal/infrastructure/adapter/logger"
)

func TestBus_PublishDeliversToMatchingSubscribers(t *testing.T) {
	bus := NewBus(logger.NewNoopLogger())

	var mu sync.Mutex
	var balanceEvents, allEvents []eventport.Event

	bus.Subscribe(func(evt eventport.Event) {
		mu.Lock()
		defer mu.Unlock()
		balanceEvents = append(balanceEvents, evt)
	}, eventport.TopicBalanceChanged)

	bus.Subscribe(func(evt eventport.Event) {
		mu.Lock()
		defer mu.Unlock()
		allEvents = append(allEvents, evt)
	})

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	bus.Publish(eventport.Event{Topic: eventport.TopicBalanceChanged, Origin: eventport.OriginLocal, OccurredAt: now})
	bus.Publish(eventport.Event{Topic: eventport.TopicContactsChanged, Origin: eventport.OriginSync, OccurredAt: now})

	assert.Len(t, balanceEvents, 1)
	assert.Equal(t, eventport.OriginLocal, balanceEvents[0].Origin)
	assert.Len(t, allEvents, 2)
	assert.Equal(t, eventport.TopicContactsChanged, allEvents[1].Topic)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus(logger.NewNoopLogger())

	calls := 0
	unsubscribe := bus.Subscribe(func(eventport.Event) { calls++ }, eventport.TopicSyncCompleted)

	bus.Publish(eventport.Event{Topic: eventport.TopicSyncCompleted})
	unsubscribe()
	unsubscribe()
	bus.Publish(eventport.Event{Topic: eventport.TopicSyncCompleted})

	assert.Equal(t, 1, calls)
}

func TestBus_PanickingHandlerDoesNotStopDelivery(t *testing.T) {
	bus := NewBus(logger.NewNoopLogger())

	delivered := false
	bus.Subscribe(func(eventport.Event) { panic("boom") })
	bus.Subscribe(func(eventport.Event) { delivered = true })

	assert.NotPanics(t, func() {
		bus.Publish(eventport.Event{Topic: eventport.TopicTransactionsChanged})
	})
	assert.True(t, delivered)
}
