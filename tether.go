// Package tether provides the public API for binding components to a
// named-event store.
//
// This is the recommended import for most applications:
//
//	import "github.com/tether-dev/tether"
//
// Usage:
//
//	wrapped := tether.Bind(tether.Options{
//	    Props: func(store tether.Store, own tether.Props) tether.Props {
//	        return tether.Props{"count": counts.Current()}
//	    },
//	    Listeners: func(own tether.Props, store tether.Store) []string {
//	        return []string{"change"}
//	    },
//	}, view)
package tether

import (
	"github.com/tether-dev/tether/pkg/bind"
	"github.com/tether-dev/tether/pkg/emitter"
	"github.com/tether-dev/tether/pkg/scope"
	"github.com/tether-dev/tether/pkg/vdom"
)

// =============================================================================
// Binder (re-export from pkg/bind)
// =============================================================================

// Options configures a wrapper. See bind.Options.
type Options = bind.Options

// Wrapper is the component produced by Bind.
type Wrapper = bind.Wrapper

// Bind wraps a component so it subscribes to store events while mounted and
// re-derives props from the store.
var Bind = bind.Bind

// DefaultStoreKey is the scope key the store is resolved from by default.
const DefaultStoreKey = bind.DefaultStoreKey

// =============================================================================
// Store contract and reference emitter (re-export from pkg/emitter)
// =============================================================================

// Store is the named-event subscription surface the binder requires.
type Store = emitter.Store

// Handler is an identity-carrying event handler.
type Handler = emitter.Handler

// Emitter is the thread-safe reference Store implementation.
type Emitter = emitter.Emitter

// NewEmitter creates an empty Emitter.
var NewEmitter = emitter.New

// NewHandlerFunc wraps a plain function as a Handler.
var NewHandlerFunc = emitter.NewHandlerFunc

// =============================================================================
// Ambient scope (re-export from pkg/scope)
// =============================================================================

// Scope is the ambient key/value context components resolve the store from.
type Scope = scope.Scope

// NewScope creates a scope with the given parent (nil for a root scope).
var NewScope = scope.New

// =============================================================================
// Node model (re-export from pkg/vdom)
// =============================================================================

// VNode represents a virtual DOM node.
type VNode = vdom.VNode

// Props holds named values with typed merging.
type Props = vdom.Props

// Component is anything that can render to a VNode.
type Component = vdom.Component

// PropsComponent renders from externally supplied props.
type PropsComponent = vdom.PropsComponent

// Func creates a component from a render function.
var Func = vdom.Func

// PropsFunc creates a props-taking component from a render function.
var PropsFunc = vdom.PropsFunc

// NamedPropsFunc creates a props-taking component with a debug name.
var NamedPropsFunc = vdom.NamedPropsFunc
