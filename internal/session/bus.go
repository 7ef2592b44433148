package session

import "sync"

//go:generate mockgen -source=bus.go -destination=../mock/bus_mock.go -package=mock

// Event is a session lifecycle notification shared between client
// instances of the same account.
type Event int

const (
	// EventLogin announces a successful login. Peers re-establish their
	// own session from scratch; secrets are never carried in the event.
	EventLogin Event = iota
	// EventLogout announces a logout. Peers drop their in-memory keys
	// without making network calls of their own.
	EventLogout
)

// Bus is the publish/subscribe channel session events travel on. In the
// browser client this is a BroadcastChannel across tabs; here any
// in-process or cross-process transport satisfying the interface works.
type Bus interface {
	// Publish delivers event to every subscriber, the publisher's own
	// handler included. Subscribers that must not react to their own
	// events filter on state, as [Session.onPeerEvent] does.
	Publish(event Event)

	// Subscribe registers handler and returns a function that removes
	// it again.
	Subscribe(handler func(Event)) (unsubscribe func())
}

// LocalBus is the single-process [Bus]: events published on it reach
// subscribers registered on the same instance.
type LocalBus struct {
	mu       sync.Mutex
	nextID   int
	handlers map[int]func(Event)
}

// NewLocalBus constructs an empty [LocalBus].
func NewLocalBus() *LocalBus {
	return &LocalBus{handlers: make(map[int]func(Event))}
}

// Publish implements [Bus]. Handlers run synchronously on the caller's
// goroutine, matching the single-threaded delivery of the browser
// BroadcastChannel.
func (b *LocalBus) Publish(event Event) {
	b.mu.Lock()
	handlers := make([]func(Event), 0, len(b.handlers))
	for _, h := range b.handlers {
		handlers = append(handlers, h)
	}
	b.mu.Unlock()

	for _, h := range handlers {
		h(event)
	}
}

// Subscribe implements [Bus].
func (b *LocalBus) Subscribe(handler func(Event)) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.handlers[id] = handler
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.handlers, id)
		b.mu.Unlock()
	}
}
