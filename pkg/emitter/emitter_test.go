package emitter

import (
	"sort"
	"testing"
)

func TestEmitNotifiesInRegistrationOrder(t *testing.T) {
	e := New()
	var order []int

	for i := 0; i < 3; i++ {
		i := i
		e.On("change", NewHandlerFunc(func() { order = append(order, i) }))
	}

	e.Emit("change")

	if len(order) != 3 || order[0] != 0 || order[1] != 1 || order[2] != 2 {
		t.Errorf("notify order = %v, want [0 1 2]", order)
	}
}

func TestOnDeduplicatesByHandlerID(t *testing.T) {
	e := New()
	calls := 0
	h := NewHandlerFunc(func() { calls++ })

	e.On("change", h)
	e.On("change", h)

	if e.HandlerCount("change") != 1 {
		t.Errorf("HandlerCount = %d, want 1", e.HandlerCount("change"))
	}

	e.Emit("change")
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestOffIsIdempotent(t *testing.T) {
	e := New()
	h := NewHandlerFunc(func() {})

	e.Off("change", h) // never registered

	e.On("change", h)
	e.Off("change", h)
	e.Off("change", h)

	if e.HandlerCount("change") != 0 {
		t.Errorf("HandlerCount = %d, want 0", e.HandlerCount("change"))
	}
}

func TestOffOnlyRemovesMatchingIdentity(t *testing.T) {
	e := New()
	kept := 0
	h1 := NewHandlerFunc(func() {})
	h2 := NewHandlerFunc(func() { kept++ })

	e.On("change", h1)
	e.On("change", h2)
	e.Off("change", h1)

	e.Emit("change")

	if kept != 1 {
		t.Errorf("kept handler calls = %d, want 1", kept)
	}
}

func TestEmitUnknownEventIsNoop(t *testing.T) {
	e := New()
	e.Emit("nothing") // must not panic
}

func TestNilHandlerIgnored(t *testing.T) {
	e := New()
	e.On("change", nil)
	e.Off("change", nil)
	if e.HandlerCount("change") != 0 {
		t.Errorf("HandlerCount = %d, want 0", e.HandlerCount("change"))
	}
}

func TestReentrantOffDuringEmit(t *testing.T) {
	e := New()
	var h *HandlerFunc
	h = NewHandlerFunc(func() {
		e.Off("change", h)
	})
	e.On("change", h)

	e.Emit("change")

	if e.HandlerCount("change") != 0 {
		t.Errorf("HandlerCount = %d, want 0 after reentrant Off", e.HandlerCount("change"))
	}
}

func TestEventsListsActiveEvents(t *testing.T) {
	e := New()
	e.On("a", NewHandlerFunc(func() {}))
	e.On("b", NewHandlerFunc(func() {}))

	h := NewHandlerFunc(func() {})
	e.On("c", h)
	e.Off("c", h)

	events := e.Events()
	sort.Strings(events)
	if len(events) != 2 || events[0] != "a" || events[1] != "b" {
		t.Errorf("Events() = %v, want [a b]", events)
	}
}

func TestHandlerIDsAreUnique(t *testing.T) {
	a := NewHandlerFunc(func() {})
	b := NewHandlerFunc(func() {})
	if a.ID() == b.ID() {
		t.Errorf("handler IDs collide: %d", a.ID())
	}
}
