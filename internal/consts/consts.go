// Package consts centralizes the numeric policy constants the Stamp
// Library, Linear Solver, and DC engine are specified against, the way
// the teacher centralizes physical constants for its device models.
package consts

const (
	// PivotTolerance is the Gaussian-elimination degenerate-pivot
	// threshold (spec.md §4.1, §9): below this, a column is treated as
	// belonging to a floating subnet rather than failing the solve.
	PivotTolerance = 1e-12

	// DCMaxIterations bounds the DC/interactive fixed-point loop.
	DCMaxIterations = 20
	// DCConvergenceTol is the per-node voltage delta, in volts, below
	// which the fixed-point loop is considered converged.
	DCConvergenceTol = 0.01

	// OpampRail is the default supply-rail clamp for DC op-amp saturation.
	OpampRail = 15.0
	// DefaultOpampGain is used when a component sets no open-loop gain.
	DefaultOpampGain = 1e5
	// DefaultInputImpedance is used when an op-amp sets no input impedance.
	DefaultInputImpedance = 1e7

	// DefaultLogicHigh is the nominal logic-high output voltage used
	// when a gate component sets no value.
	DefaultLogicHigh = 5.0
	// GateInputStabilizer is the tiny conductance added to each gate
	// input node to keep the matrix well-posed when the gate is the
	// only thing connected there.
	GateInputStabilizer = 1e-12

	// DefaultForwardVoltage is the diode/LED conduction threshold used
	// when a component sets no forward voltage.
	DefaultForwardVoltage = 0.7
	// DiodeOnConductance is the linearized "on" admittance of a
	// forward-biased diode or LED companion model (10 Ω equivalent).
	DiodeOnConductance = 0.1
	// DiodeOffConductance is the near-open admittance of a
	// reverse-biased diode or LED.
	DiodeOffConductance = 1e-9

	// ResistorMinValue floors a drawn-but-zeroed resistance so its
	// conductance stays finite.
	ResistorMinValue = 1e-6
	// CapacitorOpenConductance is the near-open DC admittance of a
	// capacitor (it blocks DC).
	CapacitorOpenConductance = 1e-12
	// InductorShortConductance is the near-short DC admittance of an
	// inductor (it is a wire at steady state).
	InductorShortConductance = 1e6
	// VoltmeterConductance is the near-open admittance of an ideal
	// voltmeter, used identically across all three analyses.
	VoltmeterConductance = 1e-9
)
