package spring

import (
	"math"
	"testing"
)

func TestValueStartsAtZeroDisplacement(t *testing.T) {
	for _, s := range []Spring{Smooth(), Snappy(), Bouncy(), WithMassStiffnessDamping(1, 100, 30, true)} {
		got := Value(s, Scalar(1), Scalar(0), 0)
		if got != 0 {
			t.Errorf("expected position 0 at time 0, got %f", float64(got))
		}
	}
}

func TestValueConvergesToTarget(t *testing.T) {
	targets := []Scalar{1, -3, 250}

	for _, s := range []Spring{Smooth(), Snappy(), Bouncy()} {
		for _, target := range targets {
			got := float64(Value(s, target, Scalar(0), 10))
			if math.Abs(got-float64(target)) > 1e-6*math.Abs(float64(target)) {
				t.Errorf("expected convergence to %f, got %f", float64(target), got)
			}
		}
	}
}

func TestVelocityMatchesNumericDerivative(t *testing.T) {
	const h = 1e-6

	for _, s := range []Spring{Bouncy(), Smooth(), WithMassStiffnessDamping(1, 100, 30, true)} {
		for _, tm := range []float64{0.05, 0.3, 1.2} {
			ahead := float64(Value(s, Scalar(1), Scalar(2), tm+h))
			behind := float64(Value(s, Scalar(1), Scalar(2), tm-h))
			numeric := (ahead - behind) / (2 * h)
			analytic := float64(Velocity(s, Scalar(1), Scalar(2), tm))

			if math.Abs(numeric-analytic) > 1e-4 {
				t.Errorf("velocity mismatch at t=%f: numeric %f, analytic %f", tm, numeric, analytic)
			}
		}
	}
}

func TestStepComposability(t *testing.T) {
	springs := []Spring{Smooth(), Bouncy(), WithMassStiffnessDamping(1, 100, 30, true)}

	for _, s := range springs {
		value := Scalar(0)
		velocity := Scalar(3)
		target := Scalar(1)

		const total = 1.0
		const steps = 100

		for i := 0; i < steps; i++ {
			Update(s, &value, &velocity, target, total/steps)
		}

		oneShotValue := float64(Value(s, target, Scalar(3), total))
		oneShotVelocity := float64(Velocity(s, target, Scalar(3), total))

		if math.Abs(float64(value)-oneShotValue) > 1e-6 {
			t.Errorf("stepped value %f diverged from one-shot %f", float64(value), oneShotValue)
		}

		if math.Abs(float64(velocity)-oneShotVelocity) > 1e-6 {
			t.Errorf("stepped velocity %f diverged from one-shot %f", float64(velocity), oneShotVelocity)
		}
	}
}

func TestUpdateFromNonzeroValue(t *testing.T) {
	s := Snappy()

	value := Scalar(0.4)
	velocity := Scalar(-1)
	target := Scalar(1)

	// One step must equal evaluating the closed form with the remaining
	// offset as the target amount of change.
	expectedDelta := Value(s, target.Sub(Scalar(0.4)), Scalar(-1), 0.25)
	expectedVelocity := Velocity(s, target.Sub(Scalar(0.4)), Scalar(-1), 0.25)

	Update(s, &value, &velocity, target, 0.25)

	if math.Abs(float64(value)-(0.4+float64(expectedDelta))) > 1e-12 {
		t.Errorf("expected value %f, got %f", 0.4+float64(expectedDelta), float64(value))
	}

	if math.Abs(float64(velocity)-float64(expectedVelocity)) > 1e-12 {
		t.Errorf("expected velocity %f, got %f", float64(expectedVelocity), float64(velocity))
	}
}

func TestNegativeTimeEvaluatesAnalytically(t *testing.T) {
	s := Bouncy()

	got := float64(Value(s, Scalar(1), Scalar(0), -0.2))
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Errorf("expected finite value at negative time, got %f", got)
	}

	if got == 0 {
		t.Error("negative time must not be clamped to the initial state")
	}
}

func TestForceFormula(t *testing.T) {
	s := WithMassStiffnessDamping(2, 80, 6, false)

	target := Scalar(1)
	position := Scalar(0.25)
	velocity := Scalar(2)

	// stiffness*(target-position) - damping*velocity, both already
	// mass-scaled by the derived properties
	expected := s.Stiffness()*(1-0.25) - s.Damping()*2
	got := float64(Force(s, target, position, velocity))

	if math.Abs(got-expected) > 1e-9 {
		t.Errorf("expected force %f, got %f", expected, got)
	}
}

func TestOverdampedDoesNotOvershoot(t *testing.T) {
	s := WithMassStiffnessDamping(1, 100, 30, true)

	prev := 0.0
	for tm := 0.05; tm <= 3; tm += 0.05 {
		v := float64(Value(s, Scalar(1), Scalar(0), tm))
		if v > 1+1e-9 {
			t.Fatalf("overdamped spring overshot target at t=%f: %f", tm, v)
		}
		if v < prev-1e-9 {
			t.Fatalf("overdamped spring moved away from target at t=%f: %f < %f", tm, v, prev)
		}
		prev = v
	}
}

func TestUndampedNeverSettles(t *testing.T) {
	s := New(5, 0, 1)

	if !math.IsInf(SettlingDuration(s, Scalar(1), Scalar(0), 0.001), 1) {
		t.Error("expected +Inf settling duration for an undamped spring")
	}
}

func TestSettlingDurationBoundsEnvelope(t *testing.T) {
	s := Bouncy()

	settled := SettlingDuration(s, Scalar(1), Scalar(0), 0.001)
	if settled <= 0 || math.IsInf(settled, 0) {
		t.Fatalf("expected positive finite settling duration, got %f", settled)
	}

	for _, dt := range []float64{0, 0.25, 1} {
		v := float64(Value(s, Scalar(1), Scalar(0), settled+dt))
		if math.Abs(v-1) > 0.001 {
			t.Errorf("value %f at t=%f is outside epsilon of target", v, settled+dt)
		}
	}
}

func TestSettlingDurationDefaultsMatchGeneric(t *testing.T) {
	s := Snappy()

	if s.SettlingDuration() != SettlingDuration(s, Scalar(1), Scalar(0), 0.001) {
		t.Error("SettlingDuration property must use target 1, velocity 0, epsilon 0.001")
	}
}

type pair struct {
	a, b float64
}

func (p pair) Add(o pair) pair           { return pair{p.a + o.a, p.b + o.b} }
func (p pair) Sub(o pair) pair           { return pair{p.a - o.a, p.b - o.b} }
func (p pair) Scale(f float64) pair      { return pair{p.a * f, p.b * f} }
func (p pair) MagnitudeSquared() float64 { return p.a*p.a + p.b*p.b }

func TestVectorEvaluationIsComponentwise(t *testing.T) {
	s := Bouncy()

	target := pair{1, -2}
	velocity := pair{0.5, 3}

	got := Value(s, target, velocity, 0.4)
	wantA := float64(Value(s, Scalar(1), Scalar(0.5), 0.4))
	wantB := float64(Value(s, Scalar(-2), Scalar(3), 0.4))

	if math.Abs(got.a-wantA) > 1e-12 || math.Abs(got.b-wantB) > 1e-12 {
		t.Errorf("vector evaluation not componentwise: got (%f, %f), want (%f, %f)", got.a, got.b, wantA, wantB)
	}

	gotV := Velocity(s, target, velocity, 0.4)
	wantVA := float64(Velocity(s, Scalar(1), Scalar(0.5), 0.4))
	wantVB := float64(Velocity(s, Scalar(-2), Scalar(3), 0.4))

	if math.Abs(gotV.a-wantVA) > 1e-12 || math.Abs(gotV.b-wantVB) > 1e-12 {
		t.Errorf("vector velocity not componentwise: got (%f, %f), want (%f, %f)", gotV.a, gotV.b, wantVA, wantVB)
	}
}
