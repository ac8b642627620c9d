package session

import "sync"

// EventKind discriminates session lifecycle events.
type EventKind int

const (
	SignedIn EventKind = iota
	SignedOut
)

// Event describes a session change for one user.
type Event struct {
	Kind   EventKind
	UserID string
}

// Broker fans session-change events out to registered listeners. State
// components subscribe so per-user caches are populated on sign-in and
// cleared on sign-out instead of reading ambient globals.
type Broker struct {
	mu        sync.RWMutex
	listeners []func(Event)
}

// NewBroker constructs an empty broker.
func NewBroker() *Broker {
	return &Broker{}
}

// Subscribe registers a listener for all future events.
func (b *Broker) Subscribe(fn func(Event)) {
	if fn == nil {
		return
	}
	b.mu.Lock()
	b.listeners = append(b.listeners, fn)
	b.mu.Unlock()
}

// Publish delivers the event to every listener synchronously, in
// subscription order.
func (b *Broker) Publish(evt Event) {
	b.mu.RLock()
	listeners := make([]func(Event), len(b.listeners))
	copy(listeners, b.listeners)
	b.mu.RUnlock()

	for _, fn := range listeners {
		fn(evt)
	}
}
