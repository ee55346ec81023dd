// Package model defines the wire data types exchanged between the
// schematic editor and the simulation core: components, wires, analysis
// configuration, and the Result shape every analysis returns.
package model

// Kind identifies the electrical behavior of a Component.
type Kind string

const (
	Resistor      Kind = "RESISTOR"
	Capacitor     Kind = "CAPACITOR"
	Inductor      Kind = "INDUCTOR"
	VoltageSource Kind = "VOLTAGE_SOURCE"
	ACSource      Kind = "AC_SOURCE"
	Diode         Kind = "DIODE"
	LED           Kind = "LED"
	Voltmeter     Kind = "VOLTMETER"
	Ammeter       Kind = "AMMETER"
	Ground        Kind = "GROUND"
	Opamp         Kind = "OPAMP"
	NotGate       Kind = "NOT_GATE"
	AndGate       Kind = "AND_GATE"
	OrGate        Kind = "OR_GATE"
	NandGate      Kind = "NAND_GATE"
	NorGate       Kind = "NOR_GATE"
	XorGate       Kind = "XOR_GATE"
)

// Waveform selects the transient excitation shape of a source.
type Waveform string

const (
	Sine     Waveform = "SINE"
	Square   Waveform = "SQUARE"
	Triangle Waveform = "TRIANGLE"
	Sawtooth Waveform = "SAWTOOTH"
	Pulse    Waveform = "PULSE"
)

// logicGateKinds lists every Kind whose input count is variable and
// configured via Component.InputCount.
var logicGateKinds = map[Kind]bool{
	AndGate:  true,
	OrGate:   true,
	NandGate: true,
	NorGate:  true,
	XorGate:  true,
}

// IsVariadicGate reports whether k takes Component.InputCount inputs
// plus one output port, per spec.md §3.
func IsVariadicGate(k Kind) bool { return logicGateKinds[k] }

// Component is one element of the circuit description. Value's meaning
// is kind-dependent (resistance, capacitance, inductance, source
// voltage, op-amp gain, diode forward voltage, ...). The optional
// fields are only meaningful for the kinds that use them; see spec.md
// §3 for the mapping.
type Component struct {
	ID    string
	Kind  Kind
	Value float64

	Frequency      float64
	Waveform       Waveform
	DCBias         float64
	DutyCycle      float64
	InputImpedance float64
	InputCount     int
	MaxCurrent     float64
}

// Wire connects two component ports together.
type Wire struct {
	ID   string
	From PortKey
	To   PortKey
}

// PortKey addresses a single terminal of a component.
type PortKey struct {
	ComponentID string
	Port        int
}

// ACSweepConfig configures the AC Sweep Engine (spec.md §4.5).
type ACSweepConfig struct {
	StartFreq float64
	StopFreq  float64
	Points    int
}

// TransientConfig configures the Transient Engine (spec.md §4.6).
type TransientConfig struct {
	TimeStep float64
	StopTime float64
}

// Mode names the analysis that produced a Result.
type Mode string

const (
	ModeDC        Mode = "DC"
	ModeACSweep   Mode = "AC_SWEEP"
	ModeTransient Mode = "TRANSIENT"
)

// NodeVoltage is the phasor (DC/transient: phase always 0) solved at a node.
type NodeVoltage struct {
	Magnitude float64
	Phase     float64
}

// NodeSnapshot describes one electrical node in a Result.
type NodeSnapshot struct {
	ID           int
	Voltage      float64
	Phase        float64
	ComponentIDs []string
}

// PlotPoint is one sample of an AC or transient trace. X is frequency
// (Hz) for AC_SWEEP or time (s) for TRANSIENT. Values maps a node label
// ("N1", "N2", ...) to its magnitude (AC_SWEEP) or signed voltage
// (TRANSIENT) at this sample.
type PlotPoint struct {
	X      float64
	Values map[string]float64
}

// Result is returned by every analysis entry point. It is always
// well-formed; on failure Mode and Error are set and the other fields
// are left at their zero value, per spec.md §7.
type Result struct {
	Mode              Mode
	Nodes             []NodeSnapshot
	NodeVoltages      map[int]NodeVoltage
	ComponentCurrents map[string]float64
	PlotData          []PlotPoint
	Frequency         float64
	Error             string
}
