// Package emitter provides the named-event store contract consumed by the
// binder, plus Emitter, a thread-safe reference implementation used by the
// session runtime, the demo app, and tests.
package emitter

import (
	"sync"
	"sync/atomic"
)

// Handler is anything that can be notified when a subscribed event fires.
// Handlers carry a stable identity so registration and removal operate on
// the exact same handler across a subscription's lifetime (func values are
// not comparable).
type Handler interface {
	// Notify is invoked synchronously when a subscribed event is emitted.
	Notify()

	// ID returns a unique identifier for this handler.
	// Used for deduplication and removal.
	ID() uint64
}

// Store is the named-event subscription surface the binder requires.
// Implementations must tolerate repeated On calls for the same handler
// identity (no duplicate registration) and Off calls for handlers that were
// never registered (no-op).
type Store interface {
	On(event string, h Handler)
	Off(event string, h Handler)
}

// handlerIDCounter backs NextHandlerID.
var handlerIDCounter atomic.Uint64

// NextHandlerID returns a process-unique handler identity.
func NextHandlerID() uint64 {
	return handlerIDCounter.Add(1)
}

// HandlerFunc adapts a plain function to Handler, minting a stable ID at
// construction time.
type HandlerFunc struct {
	id uint64
	fn func()
}

// NewHandlerFunc wraps fn as a Handler with a fresh identity.
func NewHandlerFunc(fn func()) *HandlerFunc {
	return &HandlerFunc{id: NextHandlerID(), fn: fn}
}

// Notify implements Handler.
func (h *HandlerFunc) Notify() {
	if h.fn != nil {
		h.fn()
	}
}

// ID implements Handler.
func (h *HandlerFunc) ID() uint64 { return h.id }

// Emitter is a thread-safe named-event store. It deduplicates handlers by
// identity per event, removes idempotently, and copies the handler list
// before notifying so handlers may subscribe or unsubscribe reentrantly.
type Emitter struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

var _ Store = (*Emitter)(nil)

// New creates an empty Emitter.
func New() *Emitter {
	return &Emitter{handlers: make(map[string][]Handler)}
}

// On registers h for the named event. Registering the same handler identity
// twice is a no-op.
func (e *Emitter) On(event string, h Handler) {
	if h == nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	hid := h.ID()
	for _, existing := range e.handlers[event] {
		if existing.ID() == hid {
			return
		}
	}
	e.handlers[event] = append(e.handlers[event], h)
}

// Off removes h from the named event. Removing an unregistered handler is a
// no-op.
func (e *Emitter) Off(event string, h Handler) {
	if h == nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	hid := h.ID()
	list := e.handlers[event]
	for i, existing := range list {
		if existing.ID() == hid {
			e.handlers[event] = append(list[:i], list[i+1:]...)
			if len(e.handlers[event]) == 0 {
				delete(e.handlers, event)
			}
			return
		}
	}
}

// Emit notifies every handler registered for the named event, in
// registration order. The handler list is copied before notification so
// handlers may call On/Off without deadlocking.
func (e *Emitter) Emit(event string) {
	e.mu.RLock()
	list := e.handlers[event]
	notify := make([]Handler, len(list))
	copy(notify, list)
	e.mu.RUnlock()

	for _, h := range notify {
		h.Notify()
	}
}

// HandlerCount returns the number of handlers registered for the event.
func (e *Emitter) HandlerCount(event string) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.handlers[event])
}

// Events returns the names of events that currently have handlers.
func (e *Emitter) Events() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, 0, len(e.handlers))
	for name := range e.handlers {
		names = append(names, name)
	}
	return names
}
