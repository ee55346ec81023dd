package device

import (
	"circuitcore/internal/consts"
	"circuitcore/pkg/matrix"
	"circuitcore/pkg/model"
)

const opampRail = consts.OpampRail

func opampGain(c model.Component) float64 {
	if c.Value > 0 {
		return c.Value
	}
	return consts.DefaultOpampGain
}

func opampInputConductance(c model.Component) float64 {
	if c.InputImpedance > 0 {
		return 1 / c.InputImpedance
	}
	return 1 / consts.DefaultInputImpedance
}

// stampOpampInputs stamps the input-impedance admittance shared by
// every regime.
func stampOpampInputs(c model.Component, nodes []int, sys *matrix.System) {
	stampConductance(sys, nodes[0], nodes[1], opampInputConductance(c))
}

func stampOpampInputsAC(c model.Component, nodes []int, sys *matrix.ComplexSystem) {
	stampConductanceAC(sys, nodes[0], nodes[1], opampInputConductance(c), 0)
}

// stampOpampLinear enforces V(out) - gain·V(+) + gain·V(-) = 0, with
// the extra unknown's column entry making it the injected output
// current (spec.md §4.3).
func stampOpampLinear(nodes []int, extraIdx int, gain float64, sys *matrix.System) {
	nPlus, nMinus, nOut := nodes[0], nodes[1], nodes[2]

	if nOut != 0 {
		sys.AddElement(extraIdx, nOut, 1)
		sys.AddElement(nOut, extraIdx, 1)
	}
	if nPlus != 0 {
		sys.AddElement(extraIdx, nPlus, -gain)
	}
	if nMinus != 0 {
		sys.AddElement(extraIdx, nMinus, gain)
	}
	sys.AddRHS(extraIdx, 0)
}

func stampOpampLinearAC(nodes []int, extraIdx int, gain float64, sys *matrix.ComplexSystem) {
	nPlus, nMinus, nOut := nodes[0], nodes[1], nodes[2]

	if nOut != 0 {
		sys.AddElement(extraIdx, nOut, 1, 0)
		sys.AddElement(nOut, extraIdx, 1, 0)
	}
	if nPlus != 0 {
		sys.AddElement(extraIdx, nPlus, -gain, 0)
	}
	if nMinus != 0 {
		sys.AddElement(extraIdx, nMinus, gain, 0)
	}
	sys.AddRHS(extraIdx, 0, 0)
}

// StampOpampDC stamps the DC/interactive behavior: the linear gain
// relation unless the current iterate's target output has saturated
// against the supply rails, in which case the extra row forces the
// output to the clamped rail voltage directly.
func StampOpampDC(c model.Component, nodes []int, extraIdx int, ctx *Context, sys *matrix.System) {
	stampOpampInputs(c, nodes, sys)

	gain := opampGain(c)
	nPlus, nMinus, nOut := nodes[0], nodes[1], nodes[2]
	target := gain * (ctx.VoltageAt(nPlus) - ctx.VoltageAt(nMinus))

	clamped := target
	saturated := false
	if clamped > opampRail {
		clamped = opampRail
		saturated = true
	} else if clamped < -opampRail {
		clamped = -opampRail
		saturated = true
	}

	if saturated {
		if nOut != 0 {
			sys.AddElement(extraIdx, nOut, 1)
			sys.AddElement(nOut, extraIdx, 1)
		}
		sys.AddRHS(extraIdx, clamped)
		return
	}

	stampOpampLinear(nodes, extraIdx, gain, sys)
}

// StampOpampAC stamps the small-signal linear relation, never clamping.
func StampOpampAC(c model.Component, nodes []int, extraIdx int, sys *matrix.ComplexSystem) {
	stampOpampInputsAC(c, nodes, sys)
	stampOpampLinearAC(nodes, extraIdx, opampGain(c), sys)
}

// StampOpampTransient stamps the linear relation without clamping —
// the asymmetry with StampOpampDC is intentional and documented in
// spec.md §9 as a known limitation, not a bug to be fixed here.
func StampOpampTransient(c model.Component, nodes []int, extraIdx int, sys *matrix.System) {
	stampOpampInputs(c, nodes, sys)
	stampOpampLinear(nodes, extraIdx, opampGain(c), sys)
}
