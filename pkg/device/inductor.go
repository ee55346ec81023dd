package device

import (
	"math"

	"circuitcore/internal/consts"
	"circuitcore/pkg/matrix"
	"circuitcore/pkg/model"
)

// StampInductorDC stamps the near-short DC admittance: an inductor is
// a wire at steady state.
func StampInductorDC(nodes []int, sys *matrix.System) {
	stampConductance(sys, nodes[0], nodes[1], consts.InductorShortConductance)
}

// StampInductorAC stamps the complex admittance Y = 1/(jωL) = -j/(ωL).
func StampInductorAC(c model.Component, nodes []int, freq float64, sys *matrix.ComplexSystem) {
	omega := 2 * math.Pi * freq
	if omega <= 0 || c.Value <= 0 {
		stampConductanceAC(sys, nodes[0], nodes[1], 0, 0)
		return
	}
	stampConductanceAC(sys, nodes[0], nodes[1], 0, -1/(omega*c.Value))
}

// StampInductorTransient stamps the Backward Euler companion model:
// conductance dt/L plus a history current source from the previous
// step's stored branch current.
func StampInductorTransient(c model.Component, nodes []int, dt, prevCurrent float64, sys *matrix.System) {
	geq := dt / c.Value
	stampConductance(sys, nodes[0], nodes[1], geq)
	stampCurrentSource(sys, nodes[0], nodes[1], -prevCurrent)
}

// NextInductorCurrent advances the stored inductor current given the
// solved node voltages for this step, per spec.md §4.6 step 4:
// i_new = i_old + (dt/L)·(v1 - v2).
func NextInductorCurrent(c model.Component, v1, v2, dt, prevCurrent float64) float64 {
	return prevCurrent + (dt/c.Value)*(v1-v2)
}
