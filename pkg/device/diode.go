package device

import (
	"circuitcore/internal/consts"
	"circuitcore/pkg/matrix"
	"circuitcore/pkg/model"
)

// forwardVoltage returns the diode/LED's forward-conduction threshold:
// the component's own value if it set one, otherwise 0.7 V.
func forwardVoltage(c model.Component) float64 {
	if c.Value > 0 {
		return c.Value
	}
	return consts.DefaultForwardVoltage
}

// StampDiode is the linearized companion of a conducting diode or LED,
// anchored at its forward voltage; DC/interactive only, per spec.md
// §4.3. Above threshold it stamps a 10 Ω "on" resistance; otherwise it
// stamps a reverse-biased near-open.
func StampDiode(c model.Component, nodes []int, ctx *Context, sys *matrix.System) {
	n1, n2 := nodes[0], nodes[1]
	vFwd := forwardVoltage(c)
	vd := ctx.VoltageAt(n1) - ctx.VoltageAt(n2)

	if vd > vFwd {
		const g = consts.DiodeOnConductance
		stampConductance(sys, n1, n2, g)
		i := g * vFwd
		if n1 != 0 {
			sys.AddRHS(n1, i)
		}
		if n2 != 0 {
			sys.AddRHS(n2, -i)
		}
		return
	}

	stampConductance(sys, n1, n2, consts.DiodeOffConductance)
}

// DiodeCurrent derives the current through a diode/LED from the solved
// voltages, used when harvesting component currents post-solve.
func DiodeCurrent(c model.Component, v1, v2 float64) float64 {
	vFwd := forwardVoltage(c)
	vd := v1 - v2
	if vd > vFwd {
		return consts.DiodeOnConductance * (vd - vFwd)
	}
	return vd * consts.DiodeOffConductance
}
