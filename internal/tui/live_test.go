package tui

import (
	"math"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/springsim/spring"
)

// A negative damping ratio makes the stepped track grow without bound.
// The view must keep rendering once the samples go non-finite.
func TestViewSurvivesDivergentTrack(t *testing.T) {
	s := spring.WithResponseDampingRatio(0.05, -3)

	var cur tea.Model = NewModel(s, "divergent", 0, 0, 1, 30)
	for i := 0; i < 600; i++ {
		cur, _ = cur.Update(tickMsg(time.Now()))
	}
	got := cur.(Model)

	v := float64(got.value)
	require.True(t, math.IsInf(v, 0) || math.IsNaN(v), "track should have diverged, value=%v", v)

	for _, h := range got.history {
		require.False(t, math.IsInf(h, 0) || math.IsNaN(h), "history holds non-finite sample %v", h)
	}

	view := got.View()
	require.NotEmpty(t, view)
	require.Contains(t, view, "diverged")
}

func TestSparklineClampsNonFiniteSamples(t *testing.T) {
	m := NewModel(spring.Smooth(), "clamp", 0, 0, 1, 30)
	m.history = []float64{0, math.NaN(), 1, math.Inf(1)}

	require.NotPanics(t, func() { m.renderSparkline() })
}
