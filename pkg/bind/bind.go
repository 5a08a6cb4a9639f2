package bind

import (
	"sync/atomic"

	"github.com/tether-dev/tether/pkg/emitter"
	"github.com/tether-dev/tether/pkg/scope"
	"github.com/tether-dev/tether/pkg/vdom"
)

// Bind wraps comp with a Wrapper configured by opts.
// Panics if opts.Props is nil (programmer error).
func Bind(opts Options, comp vdom.PropsComponent) *Wrapper {
	if opts.Props == nil {
		panic("bind: Options.Props is required")
	}

	name := "Component"
	if named, ok := comp.(vdom.Named); ok {
		name = named.Name()
	}

	w := &Wrapper{
		opts: opts,
		comp: comp,
		name: "Wrapper(" + name + ")",
	}
	w.update = &updateHandler{id: emitter.NextHandlerID(), wrapper: w}
	return w
}

// Wrapper mediates between a store and a wrapped component. While mounted it
// keeps its store registrations equal to the most recently computed listener
// list, and it decides whether prop changes re-render the component.
//
// Lifecycle methods (Mount, ReceiveProps, Render, Unmount) are driven by the
// host runtime on a single goroutine. Invalidate is safe to call from any
// goroutine.
type Wrapper struct {
	opts Options
	comp vdom.PropsComponent
	name string

	// update is the stable handler identity registered with the store.
	// The same reference is used for every On/Off across the wrapper's
	// lifetime.
	update *updateHandler

	sc        *scope.Scope
	own       vdom.Props
	listeners []string
	mounted   bool

	// invalidated is set by store events and cleared after render. It is
	// the explicit signal that distinguishes store-driven invalidation
	// from ordinary prop updates.
	invalidated atomic.Bool

	// onInvalidate is the host hook for scheduling a re-render.
	onInvalidate func()
}

// updateHandler is the wrapper's store-facing handler. Store events force a
// re-render unconditionally, bypassing ShouldUpdate gating.
type updateHandler struct {
	id      uint64
	wrapper *Wrapper
}

func (h *updateHandler) Notify()    { h.wrapper.Invalidate() }
func (h *updateHandler) ID() uint64 { return h.id }

// Name returns the wrapper's display name, "Wrapper(<component>)".
func (w *Wrapper) Name() string {
	return w.name
}

// SetOnInvalidate registers the host callback invoked whenever a store event
// fires. The host uses it to schedule an unconditional re-render.
func (w *Wrapper) SetOnInvalidate(fn func()) {
	w.onInvalidate = fn
}

// Mount attaches the wrapper to a scope with its initial own props and
// registers the update handler for every event in the initial listener list.
// A missing store is logged and skipped.
func (w *Wrapper) Mount(sc *scope.Scope, own vdom.Props) {
	w.sc = sc
	w.own = own
	w.mounted = true

	store := w.resolveStore()
	if store == nil {
		w.warnNoStore("mount")
		return
	}

	w.listeners = w.computeListeners(own, store)
	for _, event := range w.listeners {
		store.On(event, w.update)
	}
	recordSubscribes(len(w.listeners))
}

// ReceiveProps updates own props, reconciles store subscriptions against the
// recomputed listener list, and reports whether the wrapper should
// re-render. Re-render is forced when a store event has invalidated the
// wrapper; otherwise ShouldUpdate decides, defaulting to suppressed.
func (w *Wrapper) ReceiveProps(next vdom.Props) bool {
	prev := w.own
	w.resubscribe(next)
	w.own = next

	if w.invalidated.Load() {
		return true
	}
	if w.opts.ShouldUpdate != nil {
		return w.opts.ShouldUpdate(next, prev)
	}
	return false
}

// resubscribe recomputes the listener list and applies the diff against the
// current registrations.
func (w *Wrapper) resubscribe(next vdom.Props) {
	store := w.resolveStore()
	if store == nil {
		w.warnNoStore("update")
		return
	}

	newList := w.computeListeners(next, store)
	missing, added := diffListeners(w.listeners, newList)
	for _, event := range missing {
		store.Off(event, w.update)
	}
	for _, event := range added {
		store.On(event, w.update)
	}
	w.listeners = newList

	recordUnsubscribes(len(missing))
	recordSubscribes(len(added))
}

// Unmount releases every current store registration. A missing store is
// logged and skipped.
func (w *Wrapper) Unmount() {
	w.mounted = false

	store := w.resolveStore()
	if store == nil {
		w.warnNoStore("unmount")
		return
	}

	for _, event := range w.listeners {
		store.Off(event, w.update)
	}
	recordUnsubscribes(len(w.listeners))
	w.listeners = nil
}

// Render derives props from the store, merges them under own props (own
// wins on collision), and renders the wrapped component. When the store is
// unresolvable the component renders with own props only. The invalidated
// flag is cleared once the render completes.
func (w *Wrapper) Render() *vdom.VNode {
	defer w.invalidated.Store(false)
	recordRender()

	store := w.resolveStore()
	if store == nil {
		return w.comp.RenderProps(w.own)
	}

	derived := w.opts.Props(store, w.own)
	return w.comp.RenderProps(w.own.Merge(derived))
}

// Invalidate marks the wrapper as needing a store-driven re-render and
// notifies the host. Safe to call from any goroutine.
func (w *Wrapper) Invalidate() {
	w.invalidated.Store(true)
	if w.onInvalidate != nil {
		w.onInvalidate()
	}
}

// Invalidated reports whether a store event is pending a render.
func (w *Wrapper) Invalidated() bool {
	return w.invalidated.Load()
}

// Mounted reports whether the wrapper is currently mounted.
func (w *Wrapper) Mounted() bool {
	return w.mounted
}

// Listeners returns a copy of the currently subscribed event list.
func (w *Wrapper) Listeners() []string {
	out := make([]string, len(w.listeners))
	copy(out, w.listeners)
	return out
}

// computeListeners evaluates Options.Listeners, returning nil when unset.
func (w *Wrapper) computeListeners(own vdom.Props, store emitter.Store) []string {
	if w.opts.Listeners == nil {
		return nil
	}
	return w.opts.Listeners(own, store)
}

// resolveStore looks up the store from the ambient scope by the configured
// key. Returns nil when the scope is absent, the key is unset, or the value
// does not implement emitter.Store.
func (w *Wrapper) resolveStore() emitter.Store {
	if w.sc == nil {
		return nil
	}
	v := w.sc.Get(w.opts.storeKey())
	if v == nil {
		return nil
	}
	store, ok := v.(emitter.Store)
	if !ok {
		return nil
	}
	return store
}

// warnNoStore logs the single anticipated failure: an unresolvable store.
func (w *Wrapper) warnNoStore(phase string) {
	recordMissingStore()
	w.opts.logger().Warn("no store on scope, skipping subscriptions",
		"wrapper", w.name,
		"key", w.opts.storeKey(),
		"phase", phase,
	)
}
