// Package viz renders sampled spring tracks as terminal plots.
package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/springsim/internal/sim"
)

const (
	plotHeight = 12
	plotWidth  = 80
)

// PlotValues renders the position track.
func PlotValues(r *sim.Result, caption string) string {
	return asciigraph.Plot(r.Values,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}

// PlotVelocities renders the velocity track.
func PlotVelocities(r *sim.Result, caption string) string {
	return asciigraph.Plot(r.Velocities,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}

// Summary formats the run metrics in a fixed order.
func Summary(r *sim.Result) string {
	out := ""
	for _, name := range []string{"overshoot", "peak_velocity", "crossings", "settled_at", "final_error"} {
		if v, ok := r.Metrics[name]; ok {
			out += fmt.Sprintf("  %s: %.6f\n", name, v)
		}
	}
	return out
}
