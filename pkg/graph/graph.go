// Package graph builds the electrical node map: it unions every port
// connected, directly or transitively, by a wire into one node, with
// node 0 reserved for the ground rail. This is the Graph Builder of
// spec.md §4.2.
package graph

import (
	"errors"

	"circuitcore/pkg/model"
)

// ErrNoGround is returned when no GROUND component is present.
var ErrNoGround = errors.New("no ground (GND) found")

// Graph is the result of unioning ports into electrical nodes.
type Graph struct {
	PortToNode map[model.PortKey]int
	NumNodes   int // highest non-ground node id allocated
}

// PortCount returns how many ports a component of kind k exposes.
// inputCount is only consulted for the variadic logic gates.
func PortCount(k model.Kind, inputCount int) int {
	switch k {
	case model.Ground:
		return 1
	case model.Opamp:
		return 3
	default:
		if model.IsVariadicGate(k) {
			if inputCount < 2 {
				inputCount = 2
			}
			return inputCount + 1 // inputs 0..inputCount-1, output at inputCount
		}
		return 2
	}
}

// Build enumerates every valid port, unions wire-connected ports via
// BFS, and assigns node ids: node 0 to any group touching a GROUND
// component, the next unused positive integer otherwise. Ports not
// named by any wire still receive their own singleton node — a
// floating subnet, handled tolerantly downstream by the solver.
func Build(components []model.Component, wires []model.Wire) (*Graph, error) {
	adjacency := make(map[model.PortKey][]model.PortKey)
	allPorts := make([]model.PortKey, 0)
	groundPorts := make(map[model.PortKey]bool)

	for _, c := range components {
		n := PortCount(c.Kind, c.InputCount)
		for p := 0; p < n; p++ {
			key := model.PortKey{ComponentID: c.ID, Port: p}
			allPorts = append(allPorts, key)
			adjacency[key] = nil
			if c.Kind == model.Ground {
				groundPorts[key] = true
			}
		}
	}

	for _, w := range wires {
		adjacency[w.From] = append(adjacency[w.From], w.To)
		adjacency[w.To] = append(adjacency[w.To], w.From)
	}

	portToNode := make(map[model.PortKey]int, len(allPorts))
	visited := make(map[model.PortKey]bool, len(allPorts))
	nextNode := 1
	sawGround := false

	for _, start := range allPorts {
		if visited[start] {
			continue
		}

		group := bfsGroup(start, adjacency, visited)

		isGroundGroup := false
		for _, p := range group {
			if groundPorts[p] {
				isGroundGroup = true
				break
			}
		}

		var nodeID int
		if isGroundGroup {
			nodeID = 0
			sawGround = true
		} else {
			nodeID = nextNode
			nextNode++
		}
		for _, p := range group {
			portToNode[p] = nodeID
		}
	}

	if !sawGround {
		return nil, ErrNoGround
	}

	return &Graph{PortToNode: portToNode, NumNodes: nextNode - 1}, nil
}

// bfsGroup returns the connected component containing start, marking
// every port it visits in visited.
func bfsGroup(start model.PortKey, adjacency map[model.PortKey][]model.PortKey, visited map[model.PortKey]bool) []model.PortKey {
	queue := []model.PortKey{start}
	visited[start] = true
	group := make([]model.PortKey, 0, 4)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		group = append(group, cur)

		for _, next := range adjacency[cur] {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	return group
}
