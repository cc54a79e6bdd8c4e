package resistors

import (
	"math"
	"strconv"
)

var prefixes = []struct {
	scale  float64
	symbol string
}{
	{1e9, "GΩ"},
	{1e6, "MΩ"},
	{1e3, "kΩ"},
}

// Format renders v the way it would be printed on a parts list, e.g.
// "4.7kΩ ±5%". Values are rounded to three decimals for display only.
func Format(v Value) string {
	amount, unit := v.Resistance, "Ω"
	for _, p := range prefixes {
		if v.Resistance >= p.scale {
			amount, unit = v.Resistance/p.scale, p.symbol
			break
		}
	}
	return trimFloat(amount) + unit + " ±" + trimFloat(v.Tolerance) + "%"
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(math.Round(f*1000)/1000, 'f', -1, 64)
}
