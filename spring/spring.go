package spring

import "math"

// tau is one full turn in radians.
const tau = 2 * math.Pi

// Spring describes the motion of a damped harmonic oscillator.
//
// The three stored constants fully determine the motion. angularFrequency
// is the damped oscillation frequency, with the physical regime encoded in
// its sign: positive means underdamped (the spring oscillates), zero means
// critically damped, and negative means overdamped, in which case its
// magnitude is sqrt(decayConstant² - ωn²) for natural frequency ωn.
// decayConstant is the exponential decay rate of the motion envelope.
//
// A Spring is a plain immutable value: copy it, compare it with ==, share
// it across goroutines freely.
type Spring struct {
	angularFrequency float64
	decayConstant    float64
	mass             float64
}

// New creates a spring directly from its internal constants.
func New(angularFrequency, decayConstant, mass float64) Spring {
	return Spring{
		angularFrequency: angularFrequency,
		decayConstant:    decayConstant,
		mass:             mass,
	}
}

// AngularFrequency returns the damped oscillation frequency in rad/s.
func (s Spring) AngularFrequency() float64 { return s.angularFrequency }

// DecayConstant returns the exponential decay rate of the envelope.
func (s Spring) DecayConstant() float64 { return s.decayConstant }

// Mass returns the mass attached to the end of the spring.
func (s Spring) Mass() float64 { return s.mass }

// WithDuration creates a spring with the given perceptual duration and no
// bounce.
func WithDuration(duration float64) Spring {
	return WithDurationBounce(duration, 0)
}

// WithDurationBounce creates a spring with the given perceptual duration
// and bounce.
//
// duration defines the pace of the spring: approximately the settling
// duration, but for very bouncy springs it is the period of oscillation.
// bounce is 0 for a critically damped spring, positive up to 1 for
// increasing bounciness (1 is undamped oscillation), and negative down to
// -1 for overdamped springs. Values outside (-1, 1] are not clamped; a
// bounce at or below -1 yields non-finite constants and NaN derived
// properties.
func WithDurationBounce(duration, bounce float64) Spring {
	angularVelocityFactor := -tau
	dampingRatio := math.Inf(1)

	if bounce > -1 {
		dampingRatio = 1
		if bounce < 0 {
			dampingRatio = 1 / (bounce + 1)
		} else if bounce != 0 {
			dampingRatio = 0
			if bounce <= 1 {
				dampingRatio = 1 - bounce
			}
		}
		if dampingRatio <= 1 {
			angularVelocityFactor = tau
		}
	}

	return Spring{
		angularFrequency: math.Sqrt(math.Abs(1-dampingRatio*dampingRatio)) * angularVelocityFactor / duration,
		decayConstant:    dampingRatio * tau / duration,
		mass:             1,
	}
}

// Duration returns the perceptual duration, which defines the pace of the
// spring.
func (s Spring) Duration() float64 {
	omega := s.angularFrequency
	decay := s.decayConstant
	return tau / math.Sqrt(decay*decay+omega*math.Abs(omega))
}

// Bounce returns how bouncy the spring is.
//
// 0 is a critically damped spring, positive values up to 1 are
// increasingly bouncy, negative values down to -1 are overdamped.
func (s Spring) Bounce() float64 {
	halfDecay := s.decayConstant / 2
	decaySquared := s.decayConstant * s.decayConstant
	frequencySquared := s.angularFrequency * s.angularFrequency

	if s.angularFrequency >= 0 {
		oscillationPeriod := -tau / math.Sqrt(frequencySquared+decaySquared)
		return oscillationPeriod*halfDecay/math.Pi + 1
	}
	decayPeriod := tau / math.Sqrt(decaySquared-frequencySquared)
	return 1/(decayPeriod*halfDecay/math.Pi) - 1
}

// WithMassStiffnessDamping creates a spring from its physical constants.
//
// When the inputs describe an overdamped system and allowOverdamping is
// false, the spring is treated as critically damped instead, which avoids
// the sluggish tail of a true overdamped response. A mass of 0 produces
// NaN in every derived property.
func WithMassStiffnessDamping(mass, stiffness, damping float64, allowOverdamping bool) Spring {
	naturalFrequency := math.Sqrt(stiffness / mass)
	decayConstant := damping / (2 * mass)

	var angularFrequency float64
	if decayConstant > naturalFrequency && !allowOverdamping {
		angularFrequency = 0
		decayConstant = naturalFrequency
	} else {
		oscillation := math.Sqrt(math.Abs(stiffness/mass - decayConstant*decayConstant))
		if decayConstant > naturalFrequency {
			angularFrequency = -oscillation
		} else {
			angularFrequency = oscillation
		}
	}

	return Spring{
		angularFrequency: angularFrequency,
		decayConstant:    decayConstant,
		mass:             mass,
	}
}

// Stiffness returns the spring coefficient.
//
// Increasing the stiffness reduces the number of oscillations and the
// settling duration; decreasing it does the opposite.
func (s Spring) Stiffness() float64 {
	return s.mass * (s.angularFrequency*s.angularFrequency + s.decayConstant*s.decayConstant)
}

// Damping returns how the motion is damped due to friction forces.
func (s Spring) Damping() float64 {
	return s.decayConstant * 2 * s.mass
}

// WithResponseDampingRatio creates a spring from a response time and a
// damping ratio.
//
// response defines the stiffness as an approximate duration in seconds;
// dampingRatio is the drag as a fraction of the amount needed for critical
// damping. Neither input is clamped: dampingRatio above 1 produces a true
// overdamped spring, negative values a growing oscillation.
func WithResponseDampingRatio(response, dampingRatio float64) Spring {
	tauFactor := tau
	if dampingRatio > 1 {
		tauFactor = -tau
	}
	ratioSquared := dampingRatio * dampingRatio

	return Spring{
		angularFrequency: tauFactor * math.Sqrt(math.Abs(1-ratioSquared)) / response,
		decayConstant:    tau * dampingRatio / response,
		mass:             1,
	}
}

// Response returns the stiffness of the spring expressed as an approximate
// duration in seconds.
func (s Spring) Response() float64 {
	decaySquared := s.decayConstant * s.decayConstant
	responseTerm := s.angularFrequency * math.Abs(s.angularFrequency)
	return tau / math.Sqrt(decaySquared+responseTerm)
}

// DampingRatio returns the drag applied to the spring as a fraction of the
// amount needed to produce critical damping.
func (s Spring) DampingRatio() float64 {
	return s.decayConstant * s.Response() / tau
}
