// Package netlist decodes the schematic editor's JSON preset format into
// the pkg/model records the engines consume. This replaces the teacher's
// SPICE-deck text parser: same "bring an external description into the
// core's data model" concern, different wire format.
package netlist

import (
	"encoding/json"
	"fmt"
	"io"

	"circuitcore/pkg/model"
)

// presetComponent mirrors spec.md §6's preset component shape.
// Position, rotation, and label are accepted and discarded; the core
// has no use for layout metadata.
type presetComponent struct {
	ID             string  `json:"id"`
	Type           string  `json:"type"`
	Value          float64 `json:"value"`
	Frequency      float64 `json:"frequency"`
	Waveform       string  `json:"waveform"`
	DCBias         float64 `json:"dcBias"`
	DutyCycle      float64 `json:"dutyCycle"`
	InputImpedance float64 `json:"inputImpedance"`
	InputCount     int     `json:"inputCount"`
	MaxCurrent     float64 `json:"maxCurrent"`

	Position json.RawMessage `json:"position"`
	Rotation json.RawMessage `json:"rotation"`
	Label    string          `json:"label"`
}

type presetPort struct {
	ComponentID string `json:"componentId"`
	Port        int    `json:"port"`
}

type presetWire struct {
	ID   string     `json:"id"`
	From presetPort `json:"from"`
	To   presetPort `json:"to"`
}

type preset struct {
	Components []presetComponent `json:"components"`
	Wires      []presetWire      `json:"wires"`
}

// Decode reads a JSON preset from r and converts it into components and
// wires for the engines in pkg/analysis. Unknown component kinds are
// rejected: the host is expected to only ever emit the kinds spec.md §3
// enumerates.
func Decode(r io.Reader) ([]model.Component, []model.Wire, error) {
	var p preset
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, nil, fmt.Errorf("decode preset: %w", err)
	}
	return convert(p)
}

func convert(p preset) ([]model.Component, []model.Wire, error) {
	components := make([]model.Component, 0, len(p.Components))
	for _, pc := range p.Components {
		kind := model.Kind(pc.Type)
		if !validKind(kind) {
			return nil, nil, fmt.Errorf("unknown component kind %q for id %q", pc.Type, pc.ID)
		}

		components = append(components, model.Component{
			ID:             pc.ID,
			Kind:           kind,
			Value:          pc.Value,
			Frequency:      pc.Frequency,
			Waveform:       model.Waveform(pc.Waveform),
			DCBias:         pc.DCBias,
			DutyCycle:      pc.DutyCycle,
			InputImpedance: pc.InputImpedance,
			InputCount:     pc.InputCount,
			MaxCurrent:     pc.MaxCurrent,
		})
	}

	wires := make([]model.Wire, 0, len(p.Wires))
	for _, pw := range p.Wires {
		wires = append(wires, model.Wire{
			ID:   pw.ID,
			From: model.PortKey{ComponentID: pw.From.ComponentID, Port: pw.From.Port},
			To:   model.PortKey{ComponentID: pw.To.ComponentID, Port: pw.To.Port},
		})
	}

	return components, wires, nil
}

var validKinds = map[model.Kind]bool{
	model.Resistor:      true,
	model.Capacitor:     true,
	model.Inductor:      true,
	model.VoltageSource: true,
	model.ACSource:      true,
	model.Diode:         true,
	model.LED:           true,
	model.Voltmeter:     true,
	model.Ammeter:       true,
	model.Ground:        true,
	model.Opamp:         true,
	model.NotGate:       true,
	model.AndGate:       true,
	model.OrGate:        true,
	model.NandGate:      true,
	model.NorGate:       true,
	model.XorGate:       true,
}

func validKind(k model.Kind) bool { return validKinds[k] }
