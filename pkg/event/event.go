// Package event provides a simple synchronous event dispatcher.
//
//	d := event.New()
//	d.Listen("stock.added", func(payload any) { ... })
//	d.Fire("stock.added", change)
package event

import (
	"sync"
)

// Handler is a function that receives an event payload.
type Handler func(payload any)

// Dispatcher maps event names to their listeners.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

// New returns an empty dispatcher.
func New() *Dispatcher {
	return &Dispatcher{handlers: map[string][]Handler{}}
}

// Listen registers a handler for the given event name.
func (d *Dispatcher) Listen(event string, handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[event] = append(d.handlers[event], handler)
}

// Fire dispatches an event synchronously to all registered listeners, in
// registration order.
func (d *Dispatcher) Fire(event string, payload any) {
	d.mu.RLock()
	hs := make([]Handler, len(d.handlers[event]))
	copy(hs, d.handlers[event])
	d.mu.RUnlock()

	for _, h := range hs {
		h(payload)
	}
}

// HasListeners reports whether anything listens for event.
func (d *Dispatcher) HasListeners(event string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.handlers[event]) > 0
}

// Flush removes all listeners (useful in tests).
func (d *Dispatcher) Flush() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = map[string][]Handler{}
}
