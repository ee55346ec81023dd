// Package analysis hosts the three public engine entry points
// (solveCircuit, solveACSweep, solveTransient) along with the result
// plumbing they share.
package analysis

import (
	"sort"

	"circuitcore/pkg/circuit"
	"circuitcore/pkg/matrix"
	"circuitcore/pkg/model"
)

func matrixSystemFor(plan *circuit.Plan) *matrix.System {
	return matrix.NewSystem(plan.Size)
}

func complexSystemFor(plan *circuit.Plan) *matrix.ComplexSystem {
	return matrix.NewComplexSystem(plan.Size)
}

func complexAt(solution []matrix.Complex, idx int) matrix.Complex {
	if idx < 0 || idx >= len(solution) {
		return matrix.Complex{}
	}
	return solution[idx]
}

// nodeComponentIDs groups, per node id, every component id touching it.
func nodeComponentIDs(plan *circuit.Plan) map[int][]string {
	byNode := make(map[int]map[string]bool)
	for _, c := range plan.Components {
		for _, n := range plan.NodesOf(c) {
			if byNode[n] == nil {
				byNode[n] = make(map[string]bool)
			}
			byNode[n][c.ID] = true
		}
	}

	out := make(map[int][]string, len(byNode))
	for n, set := range byNode {
		ids := make([]string, 0, len(set))
		for id := range set {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		out[n] = ids
	}
	return out
}

// buildNodeSnapshots assembles the Result.Nodes list by inverting the
// port→node map, for node ids 0..numNodes.
func buildNodeSnapshots(plan *circuit.Plan, voltageAt func(node int) (magnitude, phase float64)) []model.NodeSnapshot {
	compIDs := nodeComponentIDs(plan)

	nodes := make([]model.NodeSnapshot, 0, plan.Graph.NumNodes+1)
	for n := 0; n <= plan.Graph.NumNodes; n++ {
		mag, phase := voltageAt(n)
		nodes = append(nodes, model.NodeSnapshot{
			ID:           n,
			Voltage:      mag,
			Phase:        phase,
			ComponentIDs: compIDs[n],
		})
	}
	return nodes
}

func errorResult(mode model.Mode, msg string) model.Result {
	return model.Result{Mode: mode, Error: msg}
}
