package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"circuitcore/pkg/graph"
	"circuitcore/pkg/model"
)

func TestBuild_NoGround(t *testing.T) {
	components := []model.Component{
		{ID: "R1", Kind: model.Resistor},
	}
	_, err := graph.Build(components, nil)
	require.ErrorIs(t, err, graph.ErrNoGround)
}

func TestBuild_VoltageDivider(t *testing.T) {
	components := []model.Component{
		{ID: "V1", Kind: model.VoltageSource, Value: 10},
		{ID: "R1", Kind: model.Resistor, Value: 1000},
		{ID: "R2", Kind: model.Resistor, Value: 1000},
		{ID: "GND", Kind: model.Ground},
	}
	wires := []model.Wire{
		{ID: "w1", From: model.PortKey{ComponentID: "V1", Port: 0}, To: model.PortKey{ComponentID: "R1", Port: 0}},
		{ID: "w2", From: model.PortKey{ComponentID: "R1", Port: 1}, To: model.PortKey{ComponentID: "R2", Port: 0}},
		{ID: "w3", From: model.PortKey{ComponentID: "R2", Port: 1}, To: model.PortKey{ComponentID: "V1", Port: 1}},
		{ID: "w4", From: model.PortKey{ComponentID: "V1", Port: 1}, To: model.PortKey{ComponentID: "GND", Port: 0}},
	}

	g, err := graph.Build(components, wires)
	require.NoError(t, err)
	assert.Equal(t, 2, g.NumNodes)

	groundNode := g.PortToNode[model.PortKey{ComponentID: "GND", Port: 0}]
	assert.Equal(t, 0, groundNode)

	midA := g.PortToNode[model.PortKey{ComponentID: "R1", Port: 1}]
	midB := g.PortToNode[model.PortKey{ComponentID: "R2", Port: 0}]
	assert.Equal(t, midA, midB)
	assert.NotEqual(t, 0, midA)
}

func TestBuild_FloatingSubnetGetsOwnNode(t *testing.T) {
	components := []model.Component{
		{ID: "GND", Kind: model.Ground},
		{ID: "R1", Kind: model.Resistor, Value: 100},
	}
	g, err := graph.Build(components, nil)
	require.NoError(t, err)
	// R1's two ports are unmentioned by any wire: each is its own node.
	assert.Equal(t, 2, g.NumNodes)
}

func TestPortCount(t *testing.T) {
	assert.Equal(t, 1, graph.PortCount(model.Ground, 0))
	assert.Equal(t, 3, graph.PortCount(model.Opamp, 0))
	assert.Equal(t, 2, graph.PortCount(model.Resistor, 0))
	assert.Equal(t, 5, graph.PortCount(model.AndGate, 4))
	assert.Equal(t, 3, graph.PortCount(model.AndGate, 1)) // floor of 2 inputs
}
