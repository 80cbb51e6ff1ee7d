// control/debug.go
// Author: momentics <momentics@gmail.com>
//
// Probe registry for inspecting buffer state from example programs and tests.

package control

import (
	"sort"

	"github.com/momentics/ringlab/api"
)

var _ api.Debug = (*DebugProbes)(nil)

// DebugProbes holds registered probe functions.
type DebugProbes struct {
	probes map[string]func() any
}

// NewDebugProbes creates a probe registry.
func NewDebugProbes() *DebugProbes {
	return &DebugProbes{
		probes: make(map[string]func() any),
	}
}

// RegisterProbe inserts a named debug hook.
func (dp *DebugProbes) RegisterProbe(name string, fn func() any) {
	dp.probes[name] = fn
}

// RegisterInspector registers insp.DumpState under name.
func (dp *DebugProbes) RegisterInspector(name string, insp api.Inspector) {
	dp.RegisterProbe(name, func() any { return insp.DumpState() })
}

// Names returns registered probe names in sorted order.
func (dp *DebugProbes) Names() []string {
	names := make([]string, 0, len(dp.probes))
	for k := range dp.probes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// DumpState returns output of all probes.
func (dp *DebugProbes) DumpState() map[string]any {
	out := make(map[string]any, len(dp.probes))
	for k, fn := range dp.probes {
		out[k] = fn()
	}
	return out
}
