package analysis

import (
	"math"

	"circuitcore/internal/consts"
	"circuitcore/pkg/circuit"
	"circuitcore/pkg/device"
	"circuitcore/pkg/model"
)

// SolveTransient is the Transient Engine of spec.md §4.6: Backward
// Euler stepping with companion models for capacitors and inductors,
// threading ReactiveState across steps. Ammeters and logic gates are
// excluded from the matrix, matching the AC Sweep Engine's size
// formula; op-amps are stamped unclamped per §4.6.
func SolveTransient(components []model.Component, wires []model.Wire, config model.TransientConfig) model.Result {
	plan, err := circuit.Build(components, wires, false)
	if err != nil || plan.Graph.NumNodes == 0 {
		return model.Result{Mode: model.ModeTransient}
	}

	dt := config.TimeStep
	if dt <= 0 {
		return errorResult(model.ModeTransient, "TimeStep must be positive")
	}

	steps := int(math.Ceil(config.StopTime/dt)) + 1
	state := device.NewReactiveState()
	plotData := make([]model.PlotPoint, 0, steps)

	var solution []float64
	for k := 0; k < steps; k++ {
		t := float64(k) * dt

		sys := matrixSystemFor(plan)
		plan.StampTransient(t, dt, state, sys)

		if solveErr := sys.Solve(); solveErr != nil {
			return errorResult(model.ModeTransient, "Singular matrix")
		}

		solution = sys.Solution()
		plan.AdvanceReactiveState(solution, dt, state)

		values := make(map[string]float64, plan.Graph.NumNodes)
		for n := 1; n <= plan.Graph.NumNodes; n++ {
			values[nodeLabel(n)] = at(solution, n)
		}
		plotData = append(plotData, model.PlotPoint{X: t, Values: values})
	}

	return harvestTransient(plan, solution, plotData)
}

func harvestTransient(plan *circuit.Plan, solution []float64, plotData []model.PlotPoint) model.Result {
	nodeVoltages := make(map[int]model.NodeVoltage, plan.Graph.NumNodes+1)
	for n := 0; n <= plan.Graph.NumNodes; n++ {
		nodeVoltages[n] = model.NodeVoltage{Magnitude: at(solution, n)}
	}

	nodes := buildNodeSnapshots(plan, func(n int) (float64, float64) {
		return at(solution, n), 0
	})

	currents := make(map[string]float64)
	for _, c := range plan.Components {
		ns := plan.NodesOf(c)
		switch c.Kind {
		case model.VoltageSource, model.ACSource, model.Opamp:
			if idx, ok := plan.ExtraIndex[c.ID]; ok {
				currents[c.ID] = at(solution, idx)
			}
		case model.Resistor:
			v1, v2 := at(solution, ns[0]), at(solution, ns[1])
			currents[c.ID] = (v1 - v2) / math.Max(c.Value, consts.ResistorMinValue)
		case model.Voltmeter:
			v1, v2 := at(solution, ns[0]), at(solution, ns[1])
			currents[c.ID] = (v1 - v2) * consts.VoltmeterConductance
		}
	}

	return model.Result{
		Mode:              model.ModeTransient,
		Nodes:             nodes,
		NodeVoltages:      nodeVoltages,
		ComponentCurrents: currents,
		PlotData:          plotData,
	}
}
