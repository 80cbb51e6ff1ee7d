// Package api
// Author: momentics
//
// Debug introspection contracts.

package api

// Inspector exposes a snapshot of internal state for diagnostics.
type Inspector interface {
	// DumpState emits a snapshot of the component's bookkeeping.
	DumpState() map[string]any
}

// Debug is a registry of named probes.
type Debug interface {
	Inspector

	// RegisterProbe registers a named debug probe, replacing any previous one.
	RegisterProbe(name string, fn func() any)
}
