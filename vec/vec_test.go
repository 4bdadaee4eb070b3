package vec

import (
	"math"
	"testing"

	"github.com/san-kum/springsim/spring"
)

func TestVec2Algebra(t *testing.T) {
	a := Vec2{3, 4}
	b := Vec2{1, -2}

	sum := a.Add(b)
	if sum != (Vec2{4, 2}) {
		t.Errorf("expected {4 2}, got %v", sum)
	}

	diff := a.Sub(b)
	if diff != (Vec2{2, 6}) {
		t.Errorf("expected {2 6}, got %v", diff)
	}

	if a.MagnitudeSquared() != 25 {
		t.Errorf("expected magnitude squared 25, got %f", a.MagnitudeSquared())
	}

	if a.Magnitude() != 5 {
		t.Errorf("expected magnitude 5, got %f", a.Magnitude())
	}

	scaled := a.Scale(0.5)
	if scaled != (Vec2{1.5, 2}) {
		t.Errorf("expected {1.5 2}, got %v", scaled)
	}
}

func TestVec3Algebra(t *testing.T) {
	a := Vec3{1, 2, 2}

	if a.MagnitudeSquared() != 9 {
		t.Errorf("expected magnitude squared 9, got %f", a.MagnitudeSquared())
	}

	if a.Scale(2) != (Vec3{2, 4, 4}) {
		t.Errorf("expected {2 4 4}, got %v", a.Scale(2))
	}
}

func TestNPadsShorterOperand(t *testing.T) {
	a := N{1, 2, 3}
	b := N{10}

	sum := a.Add(b)
	if sum[0] != 11 || sum[1] != 2 || sum[2] != 3 {
		t.Errorf("expected [11 2 3], got %v", sum)
	}

	diff := a.Sub(b)
	if diff[0] != -9 || diff[1] != 2 || diff[2] != 3 {
		t.Errorf("expected [-9 2 3], got %v", diff)
	}
}

func TestNCloneIsIndependent(t *testing.T) {
	a := N{1, 2}
	c := a.Clone()
	c[0] = 99

	if a[0] != 1 {
		t.Error("clone must not share backing storage")
	}
}

func TestSpringStepsVec2Componentwise(t *testing.T) {
	s := spring.Bouncy()

	value := Vec2{0, 0.5}
	velocity := Vec2{1, -2}
	target := Vec2{1, -1}

	sx := spring.Scalar(0)
	sy := spring.Scalar(0.5)
	vx := spring.Scalar(1)
	vy := spring.Scalar(-2)

	for i := 0; i < 30; i++ {
		spring.Update(s, &value, &velocity, target, 0.02)
		spring.Update(s, &sx, &vx, spring.Scalar(1), 0.02)
		spring.Update(s, &sy, &vy, spring.Scalar(-1), 0.02)
	}

	if math.Abs(value.X-float64(sx)) > 1e-12 || math.Abs(value.Y-float64(sy)) > 1e-12 {
		t.Errorf("Vec2 track diverged from scalar tracks: got %v, want {%f %f}", value, float64(sx), float64(sy))
	}
}

func TestSpringSettlesNTrack(t *testing.T) {
	s := spring.Smooth()

	value := N{0, 0, 0}
	velocity := N{0, 1, -1}
	target := N{1, 2, 3}

	for i := 0; i < 300; i++ {
		spring.Update(s, &value, &velocity, target, 0.01)
	}

	for i := range target {
		if math.Abs(value[i]-target[i]) > 1e-6 {
			t.Errorf("component %d did not settle: got %f, want %f", i, value[i], target[i])
		}
	}
}

func TestNIsValid(t *testing.T) {
	if !(N{1, 2, 3}).IsValid() {
		t.Error("finite vector reported invalid")
	}

	if (N{1, math.NaN()}).IsValid() {
		t.Error("NaN component reported valid")
	}

	if (N{math.Inf(1)}).IsValid() {
		t.Error("Inf component reported valid")
	}
}
