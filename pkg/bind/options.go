package bind

import (
	"log/slog"

	"github.com/tether-dev/tether/pkg/emitter"
	"github.com/tether-dev/tether/pkg/vdom"
)

// DefaultStoreKey is the scope key the wrapper resolves the store from when
// Options.StoreKey is empty.
const DefaultStoreKey = "store"

// Options configures a Wrapper. Options is immutable once passed to Bind.
type Options struct {
	// Props derives props from the store and the wrapper's own props.
	// Required. Called on every render while the store is resolvable.
	Props func(store emitter.Store, own vdom.Props) vdom.Props

	// Listeners returns the store events the wrapper subscribes to.
	// Recomputed on every update cycle; the wrapper reconciles its
	// registrations against the returned list. When nil the wrapper never
	// subscribes.
	Listeners func(own vdom.Props, store emitter.Store) []string

	// ShouldUpdate gates prop-driven re-renders. When nil, prop changes
	// alone never trigger a re-render; only store events do.
	ShouldUpdate func(next, prev vdom.Props) bool

	// StoreKey overrides the scope key used to resolve the store.
	StoreKey string

	// Logger receives missing-store warnings. Defaults to slog.Default().
	Logger *slog.Logger
}

// storeKey returns the effective scope key.
func (o Options) storeKey() string {
	if o.StoreKey != "" {
		return o.StoreKey
	}
	return DefaultStoreKey
}

// logger returns the effective logger.
func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
