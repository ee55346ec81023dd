// Package device is the Stamp Library of spec.md §4.3: one file per
// component kind, each contributing its admittance and RHS terms to
// the MNA system for whichever analysis regime is asking.
package device

import "circuitcore/pkg/matrix"

// Mode selects which regime a Stamp call is being made for. Several
// kinds behave differently, or not at all, across the three.
type Mode int

const (
	ModeDC Mode = iota
	ModeAC
	ModeTransient
)

// Context carries everything a stamp needs beyond its own node
// indices and extra-unknown index: the current nonlinear iterate (DC),
// the angular frequency inputs (AC), and the step timing (transient).
type Context struct {
	Mode      Mode
	Time      float64
	TimeStep  float64
	Frequency float64

	// Voltages is the current node-voltage iterate, 1-indexed by node
	// id exactly like matrix.System.Solution(); Voltages[0] is unused.
	// Nonlinear devices and logic gates read it to linearize themselves
	// at the current operating point.
	Voltages []float64
}

// VoltageAt returns the iterate's voltage at node, treating ground (0)
// and an out-of-range index as 0 V.
func (ctx *Context) VoltageAt(node int) float64 {
	if node <= 0 || ctx.Voltages == nil || node >= len(ctx.Voltages) {
		return 0
	}
	return ctx.Voltages[node]
}

// ReactiveState is the transient companion-model memory for
// capacitors and inductors, keyed by component id. Per spec.md §9 this
// is local to one solveTransient invocation and never touches the
// immutable Component record.
type ReactiveState struct {
	// CapVoltage[id] is v1-v2 at the previous accepted time step.
	CapVoltage map[string]float64
	// IndCurrent[id] is the inductor branch current at the previous step.
	IndCurrent map[string]float64
}

func NewReactiveState() *ReactiveState {
	return &ReactiveState{
		CapVoltage: make(map[string]float64),
		IndCurrent: make(map[string]float64),
	}
}

// stampConductance adds a symmetric admittance g between n1 and n2 to
// a real system, skipping whichever terminal is grounded (0).
func stampConductance(sys *matrix.System, n1, n2 int, g float64) {
	if n1 != 0 {
		sys.AddElement(n1, n1, g)
		if n2 != 0 {
			sys.AddElement(n1, n2, -g)
		}
	}
	if n2 != 0 {
		sys.AddElement(n2, n2, g)
		if n1 != 0 {
			sys.AddElement(n2, n1, -g)
		}
	}
}

// stampConductanceAC is the complex-system counterpart of stampConductance.
func stampConductanceAC(sys *matrix.ComplexSystem, n1, n2 int, re, im float64) {
	if n1 != 0 {
		sys.AddElement(n1, n1, re, im)
		if n2 != 0 {
			sys.AddElement(n1, n2, -re, -im)
		}
	}
	if n2 != 0 {
		sys.AddElement(n2, n2, re, im)
		if n1 != 0 {
			sys.AddElement(n2, n1, -re, -im)
		}
	}
}

// stampCurrentSource adds a fixed current i to the RHS of a real
// system, injected into n1 and drawn out of n2 (the source drives i
// from n2 to n1).
func stampCurrentSource(sys *matrix.System, n1, n2 int, i float64) {
	if n1 != 0 {
		sys.AddRHS(n1, i)
	}
	if n2 != 0 {
		sys.AddRHS(n2, -i)
	}
}

// stampBranch is the MNA independent-source pattern used by voltage
// sources and ammeters alike: an extra unknown (the branch current) at
// row/column extraIdx, enforcing V(nPos) - V(nNeg) = rhs.
func stampBranch(sys *matrix.System, extraIdx, nPos, nNeg int, rhs float64) {
	if nPos != 0 {
		sys.AddElement(extraIdx, nPos, 1)
		sys.AddElement(nPos, extraIdx, 1)
	}
	if nNeg != 0 {
		sys.AddElement(extraIdx, nNeg, -1)
		sys.AddElement(nNeg, extraIdx, -1)
	}
	sys.AddRHS(extraIdx, rhs)
}

// stampBranchAC is the complex-system counterpart of stampBranch.
func stampBranchAC(sys *matrix.ComplexSystem, extraIdx, nPos, nNeg int, rhsRe, rhsIm float64) {
	if nPos != 0 {
		sys.AddElement(extraIdx, nPos, 1, 0)
		sys.AddElement(nPos, extraIdx, 1, 0)
	}
	if nNeg != 0 {
		sys.AddElement(extraIdx, nNeg, -1, 0)
		sys.AddElement(nNeg, extraIdx, -1, 0)
	}
	sys.AddRHS(extraIdx, rhsRe, rhsIm)
}
