package spring

// Vector is the capability set the motion solver requires of an
// animatable value: an additive group plus scaling by a float64 and a
// squared-magnitude reduction. The solver treats every component as an
// independent scalar, so any aggregate whose components obey the scalar
// laws qualifies; see the vec package for ready-made implementations.
type Vector[V any] interface {
	Add(V) V
	Sub(V) V
	Scale(float64) V
	MagnitudeSquared() float64
}

// Scalar adapts a float64 to the Vector capability set.
type Scalar float64

func (s Scalar) Add(o Scalar) Scalar { return s + o }

func (s Scalar) Sub(o Scalar) Scalar { return s - o }

func (s Scalar) Scale(factor float64) Scalar { return Scalar(float64(s) * factor) }

func (s Scalar) MagnitudeSquared() float64 { return float64(s) * float64(s) }
