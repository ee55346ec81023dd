package device

import (
	"circuitcore/pkg/matrix"
	"circuitcore/pkg/model"
	"circuitcore/pkg/waveform"
)

// StampVoltageSourceDC stamps a VOLTAGE_SOURCE's DC operating point.
// An AC_SOURCE contributes only its dcBias at this regime — spec.md §9
// deliberately does not superpose a second source.
func StampVoltageSourceDC(c model.Component, nodes []int, extraIdx int, sys *matrix.System) {
	value := c.Value
	if c.Kind == model.ACSource {
		value = c.DCBias
	}
	stampBranch(sys, extraIdx, nodes[0], nodes[1], value)
}

// StampVoltageSourceAC stamps the small-signal contribution: only
// AC_SOURCE contributes its magnitude (component.Value); a plain
// VOLTAGE_SOURCE appears as a short (RHS 0), per spec.md §9.
func StampVoltageSourceAC(c model.Component, nodes []int, extraIdx int, sys *matrix.ComplexSystem) {
	value := 0.0
	if c.Kind == model.ACSource {
		value = c.Value
	}
	stampBranchAC(sys, extraIdx, nodes[0], nodes[1], value, 0)
}

// StampVoltageSourceTransient stamps the time-dependent waveform value.
func StampVoltageSourceTransient(c model.Component, nodes []int, extraIdx int, t float64, sys *matrix.System) {
	value := waveform.Evaluate(c, t)
	stampBranch(sys, extraIdx, nodes[0], nodes[1], value)
}

// StampAmmeter is the same branch pattern as a voltage source with
// RHS 0 — an ideal (zero-ohm) ammeter whose extra unknown is the
// current through it.
func StampAmmeter(nodes []int, extraIdx int, sys *matrix.System) {
	stampBranch(sys, extraIdx, nodes[0], nodes[1], 0)
}
