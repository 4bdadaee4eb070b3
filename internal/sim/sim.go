// Package sim samples spring tracks over time by repeated in-place
// stepping, and derives summary metrics from the samples.
package sim

import (
	"fmt"
	"math"

	"github.com/san-kum/springsim/spring"
)

type Config struct {
	Value    float64
	Velocity float64
	Target   float64
	Dt       float64
	Time     float64
}

type Result struct {
	Times      []float64
	Values     []float64
	Velocities []float64
	Metrics    map[string]float64
}

// Run steps a scalar track with spring.Update and records every sample,
// including the initial state.
func Run(s spring.Spring, cfg Config) (*Result, error) {
	if cfg.Dt <= 0 {
		return nil, fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Time < 0 {
		return nil, fmt.Errorf("time must be nonnegative, got %f", cfg.Time)
	}

	steps := int(cfg.Time / cfg.Dt)
	result := &Result{
		Times:      make([]float64, 0, steps+1),
		Values:     make([]float64, 0, steps+1),
		Velocities: make([]float64, 0, steps+1),
		Metrics:    make(map[string]float64),
	}

	value := spring.Scalar(cfg.Value)
	velocity := spring.Scalar(cfg.Velocity)
	target := spring.Scalar(cfg.Target)

	t := 0.0
	result.record(t, value, velocity)

	for i := 0; i < steps; i++ {
		spring.Update(s, &value, &velocity, target, cfg.Dt)
		t = float64(i+1) * cfg.Dt
		result.record(t, value, velocity)

		if math.IsNaN(float64(value)) || math.IsInf(float64(value), 0) {
			return result, fmt.Errorf("track diverged at t=%f", t)
		}
	}

	result.Metrics = computeMetrics(result, cfg)
	return result, nil
}

func (r *Result) record(t float64, value, velocity spring.Scalar) {
	r.Times = append(r.Times, t)
	r.Values = append(r.Values, float64(value))
	r.Velocities = append(r.Velocities, float64(velocity))
}

func computeMetrics(r *Result, cfg Config) map[string]float64 {
	m := make(map[string]float64)

	direction := cfg.Target - cfg.Value
	overshoot := 0.0
	peakVelocity := 0.0
	crossings := 0
	prevSide := math.Signbit(cfg.Value - cfg.Target)

	for i, v := range r.Values {
		if direction != 0 {
			past := (v - cfg.Target) / direction
			if past > overshoot {
				overshoot = past
			}
		}

		if speed := math.Abs(r.Velocities[i]); speed > peakVelocity {
			peakVelocity = speed
		}

		side := math.Signbit(v - cfg.Target)
		if i > 0 && side != prevSide {
			crossings++
		}
		prevSide = side
	}

	m["overshoot"] = overshoot
	m["peak_velocity"] = peakVelocity
	m["crossings"] = float64(crossings)
	m["final_error"] = math.Abs(r.Values[len(r.Values)-1] - cfg.Target)
	m["settled_at"] = settledAt(r, cfg.Target, 0.001)

	return m
}

// settledAt returns the first sampled time after which the value stays
// within epsilon of target, or -1 if the track never settles in the
// sampled window.
func settledAt(r *Result, target, epsilon float64) float64 {
	settled := -1.0
	for i, v := range r.Values {
		if math.Abs(v-target) <= epsilon {
			if settled < 0 {
				settled = r.Times[i]
			}
		} else {
			settled = -1
		}
	}
	return settled
}

// Drift measures the worst divergence between the stepped track and the
// one-shot closed form over the same window, demonstrating step
// composability.
func Drift(s spring.Spring, cfg Config) (float64, error) {
	r, err := Run(s, cfg)
	if err != nil {
		return 0, err
	}

	target := spring.Scalar(cfg.Target - cfg.Value)
	velocity := spring.Scalar(cfg.Velocity)

	worst := 0.0
	for i, t := range r.Times {
		exact := cfg.Value + float64(spring.Value(s, target, velocity, t))
		if d := math.Abs(r.Values[i] - exact); d > worst {
			worst = d
		}
	}
	return worst, nil
}
