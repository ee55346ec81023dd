package model

import "fmt"

// FormatSI renders value with an SI magnitude prefix, matching the
// table output the host CLI prints for node voltages and currents.
func FormatSI(value float64, unit string) string {
	abs := value
	if abs < 0 {
		abs = -abs
	}

	switch {
	case abs >= 1:
		return fmt.Sprintf("%.4f %s", value, unit)
	case abs >= 1e-3:
		return fmt.Sprintf("%.4f m%s", value*1e3, unit)
	case abs >= 1e-6:
		return fmt.Sprintf("%.4f u%s", value*1e6, unit)
	case abs >= 1e-9:
		return fmt.Sprintf("%.4f n%s", value*1e9, unit)
	default:
		return fmt.Sprintf("%.4e %s", value, unit)
	}
}

// FormatFrequency renders a frequency with a Hz/kHz/MHz prefix.
func FormatFrequency(freq float64) string {
	switch {
	case freq >= 1e6:
		return fmt.Sprintf("%.3f MHz", freq/1e6)
	case freq >= 1e3:
		return fmt.Sprintf("%.3f kHz", freq/1e3)
	default:
		return fmt.Sprintf("%.3f Hz", freq)
	}
}
