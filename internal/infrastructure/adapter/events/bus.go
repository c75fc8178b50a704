package events

import (
	"sync"

	coreport "github.com/amirhossein-jamali/payledger/internal/domain/port/core"
	eventport "github.com/amirhossein-jamali/payledger/internal/domain/port/event"
)

type subscription struct {
	id      uint64
	handler eventport.Handler
	topics  map[eventport.Topic]struct{}
}

func (s *subscription) wants(topic eventport.Topic) bool {
	if len(s.topics) == 0 {
		return true
	}
	_, ok := s.topics[topic]
	return ok
}

// Bus is an in-process change signal bus. Handlers run synchronously on the publisher's goroutine.
type Bus struct {
	mu     sync.RWMutex
	subs   []*subscription
	nextID uint64
	logger coreport.Logger
}

// NewBus creates an empty Bus
func NewBus(logger coreport.Logger) *Bus {
	return &Bus{logger: logger}
}

// Subscribe registers handler for topics, or for every topic when none is given
func (b *Bus) Subscribe(handler eventport.Handler, topics ...eventport.Topic) func() {
	sub := &subscription{
		handler: handler,
		topics:  make(map[eventport.Topic]struct{}, len(topics)),
	}
	for _, topic := range topics {
		sub.topics[topic] = struct{}{}
	}

	b.mu.Lock()
	b.nextID++
	sub.id = b.nextID
	b.subs = append(b.subs, sub)
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(sub.id) })
	}
}

// Publish delivers evt to every matching subscriber
func (b *Bus) Publish(evt eventport.Event) {
	b.mu.RLock()
	targets := make([]*subscription, 0, len(b.subs))
	for _, sub := range b.subs {
		if sub.wants(evt.Topic) {
			targets = append(targets, sub)
		}
	}
	b.mu.RUnlock()

	b.logger.Debug("Event published", map[string]any{
		"topic":       evt.Topic,
		"origin":      evt.Origin,
		"subscribers": len(targets),
	})

	for _, sub := range targets {
		b.deliver(sub, evt)
	}
}

func (b *Bus) deliver(sub *subscription, evt eventport.Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Event handler panicked", map[string]any{
				"topic": evt.Topic,
				"panic": r,
			})
		}
	}()
	sub.handler(evt)
}

func (b *Bus) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, sub := range b.subs {
		if sub.id == id {
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
			return
		}
	}
}
