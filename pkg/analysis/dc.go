package analysis

import (
	"math"

	"circuitcore/internal/consts"
	"circuitcore/pkg/circuit"
	"circuitcore/pkg/device"
	"circuitcore/pkg/model"
)

const (
	dcMaxIterations  = consts.DCMaxIterations
	dcConvergenceTol = consts.DCConvergenceTol // volts, spec.md §4.4 step 4.e
)

// SolveCircuit is the DC/Interactive Engine of spec.md §4.4: a bounded
// fixed-point iteration that linearizes every nonlinear device,
// clamped op-amp, and logic gate at the previous iterate before each
// resolve.
func SolveCircuit(components []model.Component, wires []model.Wire, frequency float64) model.Result {
	plan, err := circuit.Build(components, wires, true)
	if err != nil {
		return errorResult(model.ModeDC, "No Ground (GND) found.")
	}

	sys := matrixSystemFor(plan)
	iterate := make([]float64, plan.Size+1)

	for iter := 0; iter < dcMaxIterations; iter++ {
		sys.Clear()
		ctx := &device.Context{Mode: device.ModeDC, Voltages: iterate}
		plan.StampDC(ctx, sys)

		if solveErr := sys.Solve(); solveErr != nil {
			// Singularity here means the whole system collapsed, not a
			// mere floating subnet (those are tolerated silently by
			// the solver); surface it per spec.md §7.
			return errorResult(model.ModeDC, "Singular matrix")
		}

		next := sys.Solution()

		maxDiff := 0.0
		for n := 1; n <= plan.Graph.NumNodes; n++ {
			d := math.Abs(next[n] - iterate[n])
			if d > maxDiff {
				maxDiff = d
			}
		}

		iterate = next
		if maxDiff < dcConvergenceTol {
			break
		}
	}

	return harvestDC(plan, iterate, frequency)
}

func harvestDC(plan *circuit.Plan, solution []float64, frequency float64) model.Result {
	nodeVoltages := make(map[int]model.NodeVoltage, plan.Graph.NumNodes+1)
	for n := 0; n <= plan.Graph.NumNodes; n++ {
		nodeVoltages[n] = model.NodeVoltage{Magnitude: at(solution, n)}
	}

	nodes := buildNodeSnapshots(plan, func(n int) (float64, float64) {
		return at(solution, n), 0
	})

	currents := make(map[string]float64)
	for _, c := range plan.Components {
		nodes := plan.NodesOf(c)
		switch c.Kind {
		case model.VoltageSource, model.ACSource, model.Ammeter, model.Opamp:
			if idx, ok := plan.ExtraIndex[c.ID]; ok {
				currents[c.ID] = at(solution, idx)
			}
		case model.NotGate:
			if idx, ok := plan.ExtraIndex[c.ID]; ok {
				currents[c.ID] = at(solution, idx)
			}
		case model.Resistor:
			v1, v2 := at(solution, nodes[0]), at(solution, nodes[1])
			currents[c.ID] = (v1 - v2) / math.Max(c.Value, consts.ResistorMinValue)
		case model.Voltmeter:
			v1, v2 := at(solution, nodes[0]), at(solution, nodes[1])
			currents[c.ID] = (v1 - v2) * consts.VoltmeterConductance
		case model.Diode, model.LED:
			v1, v2 := at(solution, nodes[0]), at(solution, nodes[1])
			currents[c.ID] = device.DiodeCurrent(c, v1, v2)
		default:
			if model.IsVariadicGate(c.Kind) {
				if idx, ok := plan.ExtraIndex[c.ID]; ok {
					currents[c.ID] = at(solution, idx)
				}
			}
		}
	}

	return model.Result{
		Mode:              model.ModeDC,
		Nodes:             nodes,
		NodeVoltages:      nodeVoltages,
		ComponentCurrents: currents,
		Frequency:         frequency,
	}
}

func at(solution []float64, idx int) float64 {
	if idx < 0 || idx >= len(solution) {
		return 0
	}
	return solution[idx]
}
