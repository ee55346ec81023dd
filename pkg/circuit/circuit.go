// Package circuit glues the Graph Builder and the Stamp Library
// together: it resolves each component's port nodes, assigns extra
// MNA unknowns in the deterministic order spec.md §9 requires
// (voltage sources → ammeters → op-amps → logic gates), and drives the
// per-regime stamping pass.
package circuit

import (
	"circuitcore/pkg/device"
	"circuitcore/pkg/graph"
	"circuitcore/pkg/matrix"
	"circuitcore/pkg/model"
)

// Plan is the resolved wiring of one circuit for one analysis regime.
// IncludeDCExtras controls whether ammeters and logic gates get extra
// unknowns: spec.md §4.5 and §4.6 exclude both from the AC and
// transient matrix size.
type Plan struct {
	Components      []model.Component
	byID            map[string]model.Component
	Graph           *graph.Graph
	ExtraIndex      map[string]int // componentID -> 1-based extra-unknown row/col
	Size            int
	IncludeDCExtras bool
}

// Build resolves node numbering and extra-unknown indices. Voltage
// sources (VOLTAGE_SOURCE, AC_SOURCE) always get one; ammeters and
// logic gates (AND/OR/NAND/NOR/XOR/NOT) only get one when
// includeDCExtras is set; op-amps always get one.
func Build(components []model.Component, wires []model.Wire, includeDCExtras bool) (*Plan, error) {
	g, err := graph.Build(components, wires)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]model.Component, len(components))
	for _, c := range components {
		byID[c.ID] = c
	}

	extra := make(map[string]int)
	next := g.NumNodes + 1

	assign := func(pred func(model.Kind) bool) {
		for _, c := range components {
			if pred(c.Kind) {
				extra[c.ID] = next
				next++
			}
		}
	}

	assign(func(k model.Kind) bool { return k == model.VoltageSource || k == model.ACSource })
	if includeDCExtras {
		assign(func(k model.Kind) bool { return k == model.Ammeter })
	}
	assign(func(k model.Kind) bool { return k == model.Opamp })
	if includeDCExtras {
		assign(func(k model.Kind) bool { return k == model.NotGate || model.IsVariadicGate(k) })
	}

	return &Plan{
		Components:      components,
		byID:            byID,
		Graph:           g,
		ExtraIndex:      extra,
		Size:            next - 1,
		IncludeDCExtras: includeDCExtras,
	}, nil
}

// NodesOf returns the resolved node id for every port of c, in port order.
func (p *Plan) NodesOf(c model.Component) []int {
	n := graph.PortCount(c.Kind, c.InputCount)
	nodes := make([]int, n)
	for i := 0; i < n; i++ {
		nodes[i] = p.Graph.PortToNode[model.PortKey{ComponentID: c.ID, Port: i}]
	}
	return nodes
}

// StampDC runs one fixed-point stamping pass for the DC/interactive
// engine, using ctx.Voltages as the current iterate.
func (p *Plan) StampDC(ctx *device.Context, sys *matrix.System) {
	for _, c := range p.Components {
		nodes := p.NodesOf(c)
		switch c.Kind {
		case model.Resistor:
			device.StampResistor(c, nodes, sys)
		case model.Capacitor:
			device.StampCapacitorDC(nodes, sys)
		case model.Inductor:
			device.StampInductorDC(nodes, sys)
		case model.Voltmeter:
			device.StampVoltmeter(nodes, sys)
		case model.Diode, model.LED:
			device.StampDiode(c, nodes, ctx, sys)
		case model.VoltageSource, model.ACSource:
			device.StampVoltageSourceDC(c, nodes, p.ExtraIndex[c.ID], sys)
		case model.Ammeter:
			device.StampAmmeter(nodes, p.ExtraIndex[c.ID], sys)
		case model.Opamp:
			device.StampOpampDC(c, nodes, p.ExtraIndex[c.ID], ctx, sys)
		case model.NotGate:
			device.StampGate(c, nodes[:1], nodes[1], p.ExtraIndex[c.ID], ctx, sys)
		default:
			if model.IsVariadicGate(c.Kind) {
				in := nodes[:len(nodes)-1]
				out := nodes[len(nodes)-1]
				device.StampGate(c, in, out, p.ExtraIndex[c.ID], ctx, sys)
			}
			// GROUND and anything else: no electrical contribution.
		}
	}
}

// StampAC runs one complex stamping pass for the AC Sweep Engine at a
// single frequency. Ammeters, logic gates, and diodes/LEDs are omitted
// per spec.md §4.5.
func (p *Plan) StampAC(freq float64, sys *matrix.ComplexSystem) {
	for _, c := range p.Components {
		nodes := p.NodesOf(c)
		switch c.Kind {
		case model.Resistor:
			device.StampResistorAC(c, nodes, sys)
		case model.Capacitor:
			device.StampCapacitorAC(c, nodes, freq, sys)
		case model.Inductor:
			device.StampInductorAC(c, nodes, freq, sys)
		case model.Voltmeter:
			device.StampVoltmeterAC(nodes, sys)
		case model.VoltageSource, model.ACSource:
			device.StampVoltageSourceAC(c, nodes, p.ExtraIndex[c.ID], sys)
		case model.Opamp:
			device.StampOpampAC(c, nodes, p.ExtraIndex[c.ID], sys)
		}
	}
}

// StampTransient runs one real stamping pass for a single transient
// time step, pulling companion-model history out of state.
func (p *Plan) StampTransient(t, dt float64, state *device.ReactiveState, sys *matrix.System) {
	for _, c := range p.Components {
		nodes := p.NodesOf(c)
		switch c.Kind {
		case model.Resistor:
			device.StampResistor(c, nodes, sys)
		case model.Capacitor:
			device.StampCapacitorTransient(c, nodes, dt, state.CapVoltage[c.ID], sys)
		case model.Inductor:
			device.StampInductorTransient(c, nodes, dt, state.IndCurrent[c.ID], sys)
		case model.Voltmeter:
			device.StampVoltmeter(nodes, sys)
		case model.VoltageSource, model.ACSource:
			device.StampVoltageSourceTransient(c, nodes, p.ExtraIndex[c.ID], t, sys)
		case model.Opamp:
			device.StampOpampTransient(c, nodes, p.ExtraIndex[c.ID], sys)
		}
	}
}

// AdvanceReactiveState updates state after a transient step's solution
// is accepted, per spec.md §4.6 step 4.
func (p *Plan) AdvanceReactiveState(solution []float64, dt float64, state *device.ReactiveState) {
	for _, c := range p.Components {
		switch c.Kind {
		case model.Capacitor:
			nodes := p.NodesOf(c)
			v1, v2 := voltageAt(solution, nodes[0]), voltageAt(solution, nodes[1])
			state.CapVoltage[c.ID] = v1 - v2
		case model.Inductor:
			nodes := p.NodesOf(c)
			v1, v2 := voltageAt(solution, nodes[0]), voltageAt(solution, nodes[1])
			prev := state.IndCurrent[c.ID]
			state.IndCurrent[c.ID] = device.NextInductorCurrent(c, v1, v2, dt, prev)
		}
	}
}

func voltageAt(solution []float64, node int) float64 {
	if node <= 0 || node >= len(solution) {
		return 0
	}
	return solution[node]
}

// ComponentByID looks up a component by id.
func (p *Plan) ComponentByID(id string) (model.Component, bool) {
	c, ok := p.byID[id]
	return c, ok
}
