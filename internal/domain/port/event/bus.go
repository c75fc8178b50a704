package event

import "time"

// Topic names a change signal
type Topic string

// Topics
const (
	TopicTransactionsChanged Topic = "transactions-changed"
	TopicContactsChanged     Topic = "contacts-changed"
	TopicBalanceChanged      Topic = "balance-changed"
	TopicSyncCompleted       Topic = "sync-completed"
)

// Origin tells who caused a change
type Origin string

// Origins
const (
	OriginLocal Origin = "local"
	OriginSync  Origin = "sync"
)

// Event is a change notification; it carries no payload, subscribers re-read state
type Event struct {
	Topic      Topic
	Origin     Origin
	OccurredAt time.Time
}

// Handler receives events; it must not block
type Handler func(evt Event)

// Publisher emits change signals
type Publisher interface {
	Publish(evt Event)
}

// Subscriber registers handlers for change signals
type Subscriber interface {
	// Subscribe registers handler for the given topics, or every topic when none is given.
	// The returned function removes the subscription.
	Subscribe(handler Handler, topics ...Topic) (unsubscribe func())
}

// Bus is both a Publisher and a Subscriber
type Bus interface {
	Publisher
	Subscriber
}
