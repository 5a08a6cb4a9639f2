// Package bind connects components to a named-event store. Bind wraps a
// component with a Wrapper that subscribes to a dynamic list of store events
// while mounted, re-derives props from the store when those events fire, and
// gates prop-driven re-renders.
//
// The store is resolved from the ambient scope under a configurable key
// (default "store"). A missing store is never fatal: the wrapper logs a
// warning and renders with own props only.
//
//	wrapped := bind.Bind(bind.Options{
//	    Props: func(store emitter.Store, own vdom.Props) vdom.Props {
//	        return vdom.Props{"count": counts.Current()}
//	    },
//	    Listeners: func(own vdom.Props, store emitter.Store) []string {
//	        return []string{"change"}
//	    },
//	}, view)
package bind
