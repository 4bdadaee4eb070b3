// Package vec provides ready-made vector types for the spring motion
// solver: fixed-size Vec2/Vec3 values and the variable-length N.
package vec

import "math"

// Vec2 is a two-component vector.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(factor float64) Vec2 { return Vec2{v.X * factor, v.Y * factor} }

func (v Vec2) MagnitudeSquared() float64 { return v.X*v.X + v.Y*v.Y }

// Magnitude returns the length of the vector.
func (v Vec2) Magnitude() float64 { return math.Sqrt(v.MagnitudeSquared()) }

// Vec3 is a three-component vector.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Scale(factor float64) Vec3 { return Vec3{v.X * factor, v.Y * factor, v.Z * factor} }

func (v Vec3) MagnitudeSquared() float64 { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

// Magnitude returns the length of the vector.
func (v Vec3) Magnitude() float64 { return math.Sqrt(v.MagnitudeSquared()) }

// N is a variable-length vector of independently animated components.
// Binary operations treat missing components of the shorter operand as
// zero.
type N []float64

func (n N) Add(o N) N {
	result := make(N, len(n))
	for i := range n {
		if i < len(o) {
			result[i] = n[i] + o[i]
		} else {
			result[i] = n[i]
		}
	}
	return result
}

func (n N) Sub(o N) N {
	result := make(N, len(n))
	for i := range n {
		if i < len(o) {
			result[i] = n[i] - o[i]
		} else {
			result[i] = n[i]
		}
	}
	return result
}

func (n N) Scale(factor float64) N {
	result := make(N, len(n))
	for i := range n {
		result[i] = n[i] * factor
	}
	return result
}

func (n N) MagnitudeSquared() float64 {
	sum := 0.0
	for _, v := range n {
		sum += v * v
	}
	return sum
}

// Clone returns an independent copy.
func (n N) Clone() N {
	c := make(N, len(n))
	copy(c, n)
	return c
}

// IsValid reports whether every component is finite.
func (n N) IsValid() bool {
	for _, v := range n {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
