// Package events carries the process-wide auth signal from the remote API
// client boundary to the session-store side, replacing the original
// window-level event listeners with an explicit bus.
package events

import "sync"

// AuthChanged signals that the authentication state flipped somewhere in
// the application, most commonly after the API client's 401 hook cleared
// the stored credentials.
type AuthChanged struct {
	LoggedIn bool
}

// Bus is a minimal synchronous pub/sub hub. Handlers run on the publishing
// goroutine; subscribers are expected to do cheap state flips only.
type Bus struct {
	mu       sync.Mutex
	nextID   int
	handlers map[int]func(AuthChanged)
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[int]func(AuthChanged))}
}

// Subscribe registers a handler and returns its unsubscribe function.
// Subscribers register at construction and must unsubscribe on teardown.
func (b *Bus) Subscribe(handler func(AuthChanged)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	b.handlers[id] = handler
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.handlers, id)
	}
}

// Publish delivers the event to every current subscriber.
func (b *Bus) Publish(event AuthChanged) {
	b.mu.Lock()
	handlers := make([]func(AuthChanged), 0, len(b.handlers))
	for _, h := range b.handlers {
		handlers = append(handlers, h)
	}
	b.mu.Unlock()

	for _, h := range handlers {
		h(event)
	}
}
