package device

import (
	"math"

	"circuitcore/internal/consts"
	"circuitcore/pkg/matrix"
	"circuitcore/pkg/model"
)

// StampResistor contributes a fixed conductance between its two nodes.
// The same formula is used for DC and transient; resistors carry no
// time-dependent state. The ResistorMinValue floor on the real-valued
// path keeps a drawn-but-zeroed resistance from producing an infinite
// conductance.
func StampResistor(c model.Component, nodes []int, sys *matrix.System) {
	g := 1.0 / math.Max(c.Value, consts.ResistorMinValue)
	stampConductance(sys, nodes[0], nodes[1], g)
}

func StampResistorAC(c model.Component, nodes []int, sys *matrix.ComplexSystem) {
	g := 1.0 / c.Value
	stampConductanceAC(sys, nodes[0], nodes[1], g, 0)
}

// StampVoltmeter models an (ideal) voltmeter as a near-open resistance,
// used identically across all three analyses.
func StampVoltmeter(nodes []int, sys *matrix.System) {
	stampConductance(sys, nodes[0], nodes[1], consts.VoltmeterConductance)
}

func StampVoltmeterAC(nodes []int, sys *matrix.ComplexSystem) {
	stampConductanceAC(sys, nodes[0], nodes[1], consts.VoltmeterConductance, 0)
}
