package device

import (
	"circuitcore/internal/consts"
	"circuitcore/pkg/matrix"
	"circuitcore/pkg/model"
)

func logicHigh(c model.Component) float64 {
	if c.Value > 0 {
		return c.Value
	}
	return consts.DefaultLogicHigh
}

// EvaluateGate applies the combinational rule for kind over the given
// input voltages against threshold = logicHigh/2.
func EvaluateGate(kind model.Kind, inputs []float64, threshold float64) bool {
	highCount := 0
	for _, v := range inputs {
		if v > threshold {
			highCount++
		}
	}

	switch kind {
	case model.AndGate:
		return highCount == len(inputs)
	case model.OrGate:
		return highCount > 0
	case model.NandGate:
		return highCount != len(inputs)
	case model.NorGate:
		return highCount == 0
	case model.XorGate:
		return highCount%2 == 1
	case model.NotGate:
		return inputs[0] <= threshold
	default:
		return false
	}
}

// StampGate forces the gate's output node to its evaluated logic level
// using the MNA branch pattern (an ideal voltage source to ground), and
// adds a tiny stabilizing conductance to every input node — DC/
// interactive only, per spec.md §4.3.
func StampGate(c model.Component, inputNodes []int, outputNode, extraIdx int, ctx *Context, sys *matrix.System) {
	high := logicHigh(c)
	threshold := high / 2

	voltages := make([]float64, len(inputNodes))
	for i, n := range inputNodes {
		voltages[i] = ctx.VoltageAt(n)
	}

	target := 0.0
	if EvaluateGate(c.Kind, voltages, threshold) {
		target = high
	}

	stampBranch(sys, extraIdx, outputNode, 0, target)

	for _, n := range inputNodes {
		if n != 0 {
			sys.AddElement(n, n, consts.GateInputStabilizer)
		}
	}
}
