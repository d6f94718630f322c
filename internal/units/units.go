// Package units renders component values with SI prefixes for display.
package units

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// FormatCapacitance renders a capacitance in farads, e.g. 1e-8 -> "10 nF".
func FormatCapacitance(farads float64) string {
	return format(farads, 2, "F")
}

// FormatFrequency renders a frequency in hertz, e.g. 1500 -> "1.5 kHz".
func FormatFrequency(hz float64) string {
	return format(hz, 3, "Hz")
}

func format(v float64, digits int, unit string) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		// ComputeSI has no prefix for non-finite magnitudes
		return strconv.FormatFloat(v, 'g', -1, 64) + " " + unit
	}
	if v == 0 {
		return "0 " + unit
	}
	return humanize.SIWithDigits(v, digits, unit)
}
