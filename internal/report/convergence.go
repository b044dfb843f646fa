package report

import (
	"fmt"
	"math"

	"github.com/guptarohit/asciigraph"
)

// Convergence draws the CG residual history as an ASCII chart of
// log10(‖r‖/‖r₀‖). Returns an empty string when there is no history.
func Convergence(history []float64, tolerance float64) string {
	if len(history) == 0 {
		return ""
	}
	data := make([]float64, len(history))
	for i, v := range history {
		if v <= 0 {
			v = 1e-16
		}
		data[i] = math.Log10(v)
	}
	caption := fmt.Sprintf("log10 relative residual, %d iterations", len(history))
	if tolerance > 0 {
		caption += fmt.Sprintf(", target %.1f", math.Log10(tolerance))
	}
	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Offset(4),
		asciigraph.Caption(caption),
	)
}
