// Package vdom provides the minimal virtual node model used by the binder
// and the session runtime: VNode trees, components, typed prop merging, and
// a tree diff that produces patches for incremental client updates.
package vdom
