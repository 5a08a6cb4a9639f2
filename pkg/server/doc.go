// Package server hosts bound components over WebSocket. Each connection
// gets a Session that owns a root wrapper, a scope seeded with the shared
// store, and a single-goroutine event loop that renders on invalidation and
// pushes vdom patches to the client.
package server
