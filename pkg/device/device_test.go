package device_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"circuitcore/pkg/device"
	"circuitcore/pkg/matrix"
	"circuitcore/pkg/model"
)

func solveReal(t *testing.T, sys *matrix.System) []float64 {
	t.Helper()
	require.NoError(t, sys.Solve())
	return sys.Solution()
}

func TestStampResistor_OhmsLaw(t *testing.T) {
	// 10 V source across a 100 Ω resistor to ground: node 1 should settle
	// at 10 V and the source's branch unknown should be -0.1 A (0.1 A
	// flowing out of its positive terminal into the resistor).
	sys := matrix.NewSystem(2)
	r := model.Component{ID: "R1", Kind: model.Resistor, Value: 100}
	v := model.Component{ID: "V1", Kind: model.VoltageSource, Value: 10}

	device.StampResistor(r, []int{1, 0}, sys)
	device.StampVoltageSourceDC(v, []int{1, 0}, 2, sys)

	x := solveReal(t, sys)
	assert.InDelta(t, 10.0, x[1], 1e-9)
	assert.InDelta(t, -0.1, x[2], 1e-9)
}

func TestStampDiode_ConductingUsesOnResistance(t *testing.T) {
	// Forward-biased: the diode linearizes to a 10 Ω companion anchored
	// at vFwd, so driving it with that exact source should leave node 1
	// right at vFwd.
	sys := matrix.NewSystem(1)
	d := model.Component{ID: "D1", Kind: model.Diode, Value: 0.7}
	ctx := &device.Context{Mode: device.ModeDC, Voltages: []float64{0, 2}}

	device.StampDiode(d, []int{1, 0}, ctx, sys)
	x := solveReal(t, sys)
	assert.InDelta(t, 0.7, x[1], 1e-6)
}

func TestDiodeCurrent_Directions(t *testing.T) {
	d := model.Component{ID: "D1", Kind: model.Diode, Value: 0.7}
	// Forward-biased: current follows the linearized on-conductance.
	iOn := device.DiodeCurrent(d, 2.0, 0)
	assert.Greater(t, iOn, 0.0)
	// Reverse-biased: tiny leakage current only.
	iOff := device.DiodeCurrent(d, -1.0, 0)
	assert.Less(t, iOff, 0.0)
}

func TestStampOpamp_IdealInverter(t *testing.T) {
	// Inverting amplifier, Rf = Rin = 1 kΩ, 1 V DC input: node 2 (output)
	// should settle near -1 V. Node 0 is ground, node 1 is the input
	// source, node 3 is the inverting summing junction, node 2 is output.
	// Unknown 4 is the source branch current, unknown 5 the op-amp's.
	sys := matrix.NewSystem(5)
	vin := model.Component{ID: "VIN", Kind: model.VoltageSource, Value: 1}
	rin := model.Component{ID: "RIN", Kind: model.Resistor, Value: 1000}
	rf := model.Component{ID: "RF", Kind: model.Resistor, Value: 1000}
	op := model.Component{ID: "OP1", Kind: model.Opamp}

	device.StampVoltageSourceDC(vin, []int{1, 0}, 4, sys)
	device.StampResistor(rin, []int{1, 3}, sys)
	device.StampResistor(rf, []int{3, 2}, sys)

	ctx := &device.Context{Mode: device.ModeDC, Voltages: make([]float64, 6)}
	device.StampOpampDC(op, []int{0, 3, 2}, 5, ctx, sys)

	x := solveReal(t, sys)
	assert.InDelta(t, -1.0, x[2], 0.05)
}

func TestStampGate_ANDGate(t *testing.T) {
	sys := matrix.NewSystem(4)
	g := model.Component{ID: "G1", Kind: model.AndGate, Value: 5, InputCount: 2}
	ctx := &device.Context{Mode: device.ModeDC, Voltages: []float64{0, 5, 5, 0}}

	device.StampGate(g, []int{1, 2}, 3, 4, ctx, sys)
	x := solveReal(t, sys)
	assert.InDelta(t, 5.0, x[3], 1e-6)
}

func TestStampGate_ANDGateLowInput(t *testing.T) {
	sys := matrix.NewSystem(4)
	g := model.Component{ID: "G1", Kind: model.AndGate, Value: 5, InputCount: 2}
	ctx := &device.Context{Mode: device.ModeDC, Voltages: []float64{0, 5, 0, 0}}

	device.StampGate(g, []int{1, 2}, 3, 4, ctx, sys)
	x := solveReal(t, sys)
	assert.InDelta(t, 0.0, x[3], 1e-6)
}

func TestEvaluateGate_AllKinds(t *testing.T) {
	hi := []float64{6, 6}
	lo := []float64{6, 0}
	assert.True(t, device.EvaluateGate(model.AndGate, hi, 2.5))
	assert.False(t, device.EvaluateGate(model.AndGate, lo, 2.5))
	assert.True(t, device.EvaluateGate(model.OrGate, lo, 2.5))
	assert.True(t, device.EvaluateGate(model.NandGate, lo, 2.5))
	assert.False(t, device.EvaluateGate(model.NorGate, lo, 2.5))
	assert.True(t, device.EvaluateGate(model.XorGate, lo, 2.5))
	assert.False(t, device.EvaluateGate(model.XorGate, hi, 2.5))
	assert.False(t, device.EvaluateGate(model.NotGate, []float64{6}, 2.5))
	assert.True(t, device.EvaluateGate(model.NotGate, []float64{0}, 2.5))
}

func TestReactiveState_IsExternalAndIndependentOfComponent(t *testing.T) {
	state := device.NewReactiveState()
	state.CapVoltage["C1"] = 3.3
	state.IndCurrent["L1"] = 0.5

	// Reading it back is a plain map lookup; the Component record itself
	// carries no such field (spec.md §9, §3 invariants).
	assert.Equal(t, 3.3, state.CapVoltage["C1"])
	assert.Equal(t, 0.5, state.IndCurrent["L1"])
}

func TestNextInductorCurrent(t *testing.T) {
	l := model.Component{ID: "L1", Kind: model.Inductor, Value: 1e-3}
	next := device.NextInductorCurrent(l, 1, 0, 1e-6, 0)
	assert.InDelta(t, 1e-3, next, 1e-9)
}
