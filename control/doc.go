// Package control
// Author: momentics <momentics@gmail.com>
//
// Debug introspection layer: a registry of named probes that snapshot
// component state on demand. Buffers from package ring register through
// their api.Inspector implementation.
package control
