// Package tui animates a spring track live in the terminal.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/springsim/internal/viz"
	"github.com/san-kum/springsim/spring"
)

const (
	trackWidth   = 60
	historyDepth = 120
)

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

type tickMsg time.Time

type Model struct {
	spring   spring.Spring
	value    spring.Scalar
	velocity spring.Scalar
	target   spring.Scalar
	label    string

	fps     int
	elapsed float64
	paused  bool
	history []float64
	width   int
}

func NewModel(s spring.Spring, label string, value, velocity, target float64, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	return Model{
		spring:   s,
		value:    spring.Scalar(value),
		velocity: spring.Scalar(velocity),
		target:   spring.Scalar(target),
		label:    label,
		fps:      fps,
		history:  make([]float64, 0, historyDepth),
		width:    80,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ":
			// Retarget to the opposite end; the spring carries its
			// current velocity into the new motion.
			if m.target == 0 {
				m.target = 1
			} else {
				m.target = 0
			}
			return m, nil
		case "p":
			m.paused = !m.paused
			return m, nil
		case "r":
			m.value = 0
			m.velocity = 0
			m.target = 1
			m.elapsed = 0
			m.history = m.history[:0]
			return m, nil
		}

	case tickMsg:
		if !m.paused {
			dt := 1 / float64(m.fps)
			spring.Update(m.spring, &m.value, &m.velocity, m.target, dt)
			m.elapsed += dt

			// A diverging track produces Inf/NaN samples; keep them out
			// of the history so the sparkline scale stays finite.
			if v := float64(m.value); !math.IsInf(v, 0) && !math.IsNaN(v) {
				m.history = append(m.history, v)
				if len(m.history) > historyDepth {
					m.history = m.history[1:]
				}
			}
		}
		return m, m.tick()
	}

	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(viz.Header.Render(fmt.Sprintf(" springsim live: %s ", m.label)))
	b.WriteString("\n\n")

	b.WriteString(viz.Panel.Render(m.renderTrack() + "\n\n" + m.renderSparkline()))
	b.WriteString("\n\n")

	b.WriteString(viz.White.Render(fmt.Sprintf(
		"  t=%6.2fs  value=%7.4f  velocity=%8.4f  target=%.1f",
		m.elapsed, float64(m.value), float64(m.velocity), float64(m.target),
	)))
	b.WriteString("\n")
	b.WriteString(viz.Dim.Render(fmt.Sprintf(
		"  duration=%.2f  bounce=%.2f  ratio=%.2f  settles=%.2fs",
		m.spring.Duration(), m.spring.Bounce(), m.spring.DampingRatio(), m.spring.SettlingDuration(),
	)))
	b.WriteString("\n\n")

	if v := float64(m.value); math.IsInf(v, 0) || math.IsNaN(v) {
		b.WriteString(viz.Magenta.Render("  track diverged; press r to reset"))
		b.WriteString("\n")
	}

	status := viz.Dim.Render("[running]")
	if m.paused {
		status = viz.Yellow.Render("[paused]")
	}
	b.WriteString("  " + status + viz.Dim.Render("  space: retarget  p: pause  r: reset  q: quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderTrack() string {
	// Map [-0.5, 1.5] onto the track so overshoot stays visible.
	cell := func(v float64) int {
		pos := int((v + 0.5) / 2 * float64(trackWidth))
		if pos < 0 {
			pos = 0
		}
		if pos >= trackWidth {
			pos = trackWidth - 1
		}
		return pos
	}

	track := make([]rune, trackWidth)
	for i := range track {
		track[i] = '·'
	}
	track[cell(float64(m.target))] = '|'
	track[cell(float64(m.value))] = '●'

	return "  " + viz.Cyan.Render(string(track))
}

func (m Model) renderSparkline() string {
	if len(m.history) == 0 {
		return ""
	}

	min, max := m.history[0], m.history[0]
	for _, v := range m.history {
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	span := max - min
	if span == 0 {
		span = 1
	}

	var b strings.Builder
	for _, v := range m.history {
		idx := int((v - min) / span * float64(len(sparkRunes)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkRunes) {
			idx = len(sparkRunes) - 1
		}
		b.WriteRune(sparkRunes[idx])
	}
	return "  " + viz.Green.Render(b.String())
}

// Run starts the live view and blocks until the user quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m).Run()
	return err
}
