package bus

import "time"

// Event is what flows through the bus. The engine publishes lifecycle and
// collision notifications here so editor or tooling observers can watch the
// runtime without attaching script components.
type Event interface {
	Type() string
	Source() string
	Timestamp() time.Time
	Data() any
}

// EventHandler processes an event. A returned error is aggregated by the
// publisher but does not stop delivery to other handlers.
type EventHandler func(Event) error

// Subscription is a cancelable registration of a handler for one event type.
type Subscription interface {
	ID() string
	EventType() string
	IsActive() bool
	Cancel() error
}

// EventBus is a synchronous publish/subscribe surface. Delivery happens on
// the publisher's goroutine; the runtime publishes from inside the tick, so
// handlers must be quick.
type EventBus interface {
	Publish(event Event) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
	Unsubscribe(sub Subscription) error
}
