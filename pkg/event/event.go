// Package event provides a small in-process event dispatcher. Catalog
// services fire events on every write ("product.created", "brand.deleted",
// ...) and listeners — cache invalidation, the admin WebSocket feed — react
// without the services knowing about them.
package event

import "sync"

// Handler receives an event payload.
type Handler func(payload interface{})

var (
	mu       sync.RWMutex
	handlers = map[string][]Handler{}
)

// Listen registers a handler for the given event name.
func Listen(name string, h Handler) {
	mu.Lock()
	defer mu.Unlock()
	handlers[name] = append(handlers[name], h)
}

// Fire dispatches an event synchronously to all registered listeners.
func Fire(name string, payload interface{}) {
	for _, h := range snapshot(name) {
		h(payload)
	}
}

// FireAsync dispatches the event to all listeners concurrently and returns
// immediately.
func FireAsync(name string, payload interface{}) {
	for _, h := range snapshot(name) {
		go h(payload)
	}
}

// Flush removes all listeners (useful in tests).
func Flush() {
	mu.Lock()
	defer mu.Unlock()
	handlers = map[string][]Handler{}
}

func snapshot(name string) []Handler {
	mu.RLock()
	defer mu.RUnlock()
	hs := make([]Handler, len(handlers[name]))
	copy(hs, handlers[name])
	return hs
}
