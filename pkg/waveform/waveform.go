// Package waveform evaluates the time-domain excitation of
// VOLTAGE_SOURCE and AC_SOURCE components during transient analysis,
// per spec.md §4.6.
package waveform

import (
	"math"

	"circuitcore/pkg/model"
)

// Evaluate returns the source's instantaneous value at time t. A
// component with no frequency set (Frequency <= 0) is a plain DC step
// at its Value; an unrecognized Waveform string falls back to SINE,
// per spec.md §7.
func Evaluate(c model.Component, t float64) float64 {
	if c.Frequency <= 0 {
		return c.Value
	}

	a := c.Value
	b := c.DCBias
	period := 1 / c.Frequency
	duty := c.DutyCycle
	if duty <= 0 || duty >= 1 {
		duty = 0.5
	}
	tau := math.Mod(t, period)
	if tau < 0 {
		tau += period
	}

	switch c.Waveform {
	case model.Square:
		if tau < period*duty {
			return a + b
		}
		return -a + b

	case model.Triangle:
		quarter := period / 4
		switch {
		case tau < quarter:
			return a*(tau/quarter) + b
		case tau < 3*quarter:
			return a*(1-2*(tau-quarter)/(2*quarter)) + b
		default:
			return -a*(1-(tau-3*quarter)/quarter) + b
		}

	case model.Sawtooth:
		return 2*a*(tau/period) - a + b

	case model.Pulse:
		if tau < period*duty {
			return a + b
		}
		return b

	case model.Sine:
		fallthrough
	default:
		return a*math.Sin(2*math.Pi*c.Frequency*t) + b
	}
}
