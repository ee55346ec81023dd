package netlist_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"circuitcore/pkg/model"
	"circuitcore/pkg/netlist"
)

const samplePreset = `{
	"components": [
		{"id": "V1", "type": "VOLTAGE_SOURCE", "value": 10, "position": {"x": 1, "y": 2}, "label": "Vin"},
		{"id": "R1", "type": "RESISTOR", "value": 100, "rotation": 90},
		{"id": "GND", "type": "GROUND", "value": 0}
	],
	"wires": [
		{"id": "w1", "from": {"componentId": "V1", "port": 0}, "to": {"componentId": "R1", "port": 0}},
		{"id": "w2", "from": {"componentId": "R1", "port": 1}, "to": {"componentId": "GND", "port": 0}}
	]
}`

func TestDecode_IgnoresLayoutMetadata(t *testing.T) {
	components, wires, err := netlist.Decode(strings.NewReader(samplePreset))
	require.NoError(t, err)
	require.Len(t, components, 3)
	require.Len(t, wires, 2)

	assert.Equal(t, model.VoltageSource, components[0].Kind)
	assert.Equal(t, 10.0, components[0].Value)
	assert.Equal(t, "V1", components[0].ID)
}

func TestDecode_UnknownKindRejected(t *testing.T) {
	const bad = `{"components":[{"id":"X1","type":"TRANSISTOR","value":1}],"wires":[]}`
	_, _, err := netlist.Decode(strings.NewReader(bad))
	require.Error(t, err)
}

func TestDecode_WirePortKeysRoundtrip(t *testing.T) {
	_, wires, err := netlist.Decode(strings.NewReader(samplePreset))
	require.NoError(t, err)
	assert.Equal(t, "V1", wires[0].From.ComponentID)
	assert.Equal(t, "R1", wires[0].To.ComponentID)
}
