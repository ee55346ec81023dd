package device

import (
	"math"

	"circuitcore/internal/consts"
	"circuitcore/pkg/matrix"
	"circuitcore/pkg/model"
)

// StampCapacitorDC stamps the near-open DC admittance: a capacitor
// blocks DC, this keeps the node from floating entirely.
func StampCapacitorDC(nodes []int, sys *matrix.System) {
	stampConductance(sys, nodes[0], nodes[1], consts.CapacitorOpenConductance)
}

// StampCapacitorAC stamps the complex admittance Y = jωC.
func StampCapacitorAC(c model.Component, nodes []int, freq float64, sys *matrix.ComplexSystem) {
	omega := 2 * math.Pi * freq
	stampConductanceAC(sys, nodes[0], nodes[1], 0, omega*c.Value)
}

// StampCapacitorTransient stamps the Backward Euler companion model:
// conductance C/dt plus a history current source from the previous
// step's node-voltage difference.
func StampCapacitorTransient(c model.Component, nodes []int, dt float64, prevVd float64, sys *matrix.System) {
	geq := c.Value / dt
	stampConductance(sys, nodes[0], nodes[1], geq)

	iSrc := geq * prevVd
	if nodes[0] != 0 {
		sys.AddRHS(nodes[0], iSrc)
	}
	if nodes[1] != 0 {
		sys.AddRHS(nodes[1], -iSrc)
	}
}
