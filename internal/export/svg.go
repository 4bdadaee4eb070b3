// Package export writes sampled spring tracks to external formats.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/springsim/internal/sim"
)

// TrackToSVG renders a sampled track as an SVG polyline, value against
// time, with a horizontal marker at the target.
func TrackToSVG(r *sim.Result, target float64, width, height int) string {
	if len(r.Times) < 2 {
		return ""
	}

	minY, maxY := r.Values[0], r.Values[0]
	for _, v := range r.Values {
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}
	if target < minY {
		minY = target
	}
	if target > maxY {
		maxY = target
	}

	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	minX := r.Times[0]
	rangeX := r.Times[len(r.Times)-1] - minX
	if rangeX == 0 {
		rangeX = 1
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	targetY := float64(height) - (target-minY)/rangeY*float64(height)
	sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#444466" stroke-dasharray="4 4"/>
`, targetY, width, targetY))

	sb.WriteString(`<path fill="none" stroke="#00ff88" stroke-width="1.5" d="M`)
	for i := range r.Times {
		x := (r.Times[i] - minX) / rangeX * float64(width)
		y := float64(height) - (r.Values[i]-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	sb.WriteString(`"/>
</svg>`)

	return sb.String()
}
