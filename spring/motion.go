package spring

import "math"

// Value calculates the value of the spring at a given time for a target
// amount of change.
//
// The motion is evaluated in closed form, in the reference frame where the
// spring starts at zero displacement and moves toward target with the
// given initial velocity. Negative times evaluate through the same
// formulas; they are not clamped.
func Value[V Vector[V]](s Spring, target, initialVelocity V, time float64) V {
	switch {
	case s.angularFrequency > 0:
		angle := s.angularFrequency * time
		sin := math.Sin(angle)
		cos := math.Cos(angle)

		displacement := target.Scale(s.decayConstant).Sub(initialVelocity).
			Scale(sin / s.angularFrequency).
			Add(target.Scale(cos))
		return target.Sub(displacement.Scale(math.Exp(-s.decayConstant * time)))

	case s.angularFrequency < 0:
		negFrequencyMinusDecay := -s.angularFrequency - s.decayConstant
		expTerm1 := math.Exp(negFrequencyMinusDecay * time)
		expTerm2 := math.Exp((s.angularFrequency - s.decayConstant) * time)

		dampingFactor := (s.decayConstant-s.angularFrequency)*expTerm1 + negFrequencyMinusDecay*expTerm2
		scaleFactor := dampingFactor/(s.angularFrequency*2) + 1
		velocityFactor := (expTerm1 - expTerm2) / (s.angularFrequency * 2)

		return target.Scale(scaleFactor).Sub(initialVelocity.Scale(velocityFactor))

	default:
		displacement := target.Add(target.Scale(s.decayConstant).Sub(initialVelocity).Scale(time))
		return target.Sub(displacement.Scale(math.Exp(-s.decayConstant * time)))
	}
}

// Velocity calculates the velocity of the spring at a given time for a
// target amount of change. It is the analytic time derivative of Value,
// branch for branch.
func Velocity[V Vector[V]](s Spring, target, initialVelocity V, time float64) V {
	switch {
	case s.angularFrequency > 0:
		dampingTerm := math.Exp(-s.decayConstant * time)
		angle := s.angularFrequency * time
		sin := math.Sin(angle)
		cos := math.Cos(angle)

		targetTerm := target.Scale((s.angularFrequency*sin + s.decayConstant*cos) * dampingTerm)
		displacementFactor := (s.decayConstant*sin - s.angularFrequency*cos) * dampingTerm / s.angularFrequency
		velocityTerm := target.Scale(s.decayConstant).Sub(initialVelocity).Scale(displacementFactor)
		return velocityTerm.Add(targetTerm)

	case s.angularFrequency < 0:
		negFrequencyMinusDecay := -s.angularFrequency - s.decayConstant
		frequencyMinusDecay := s.angularFrequency - s.decayConstant

		term1 := negFrequencyMinusDecay * math.Exp(negFrequencyMinusDecay*time)
		term2 := frequencyMinusDecay * math.Exp(frequencyMinusDecay*time)

		scaleFactor := ((s.decayConstant-s.angularFrequency)*term1+negFrequencyMinusDecay*term2)/(s.angularFrequency*2) + 1
		velocityFactor := (term1 - term2) / (s.angularFrequency * 2)

		return target.Scale(scaleFactor).Sub(initialVelocity.Scale(velocityFactor))

	default:
		dampingTerm := math.Exp(-s.decayConstant * time)
		timeFactor := (s.decayConstant*time - 1) * dampingTerm
		velocityDelta := target.Scale(s.decayConstant).Sub(initialVelocity)
		dampedTarget := target.Scale(s.decayConstant * dampingTerm)
		return velocityDelta.Scale(timeFactor).Add(dampedTarget)
	}
}

// Update advances the current value and velocity of the spring by
// deltaTime seconds toward target, overwriting both in place.
//
// Stepping is exactly composable: N calls of deltaTime T/N land on the
// same state (up to rounding) as one Value/Velocity evaluation at T from
// the original state. The caller owns the pair and must serialize
// concurrent updates to it.
func Update[V Vector[V]](s Spring, value, velocity *V, target V, deltaTime float64) {
	delta := target.Sub(*value)
	deltaVelocity := Velocity(s, delta, *velocity, deltaTime)
	deltaValue := Value(s, delta, *velocity, deltaTime)
	*velocity = deltaVelocity
	*value = (*value).Add(deltaValue)
}

// Force calculates the force upon the spring for a current position,
// target, and velocity, in units of the vector type per second squared.
func Force[V Vector[V]](s Spring, target, position, velocity V) V {
	dampingForce := velocity.Scale(-s.decayConstant * 2 * s.mass)
	delta := target.Sub(position)
	springForce := delta.Scale((s.angularFrequency*s.angularFrequency + s.decayConstant*s.decayConstant) * s.mass)
	return springForce.Add(dampingForce)
}

// SettlingDuration returns the estimated duration required for the spring
// to be considered at rest: the time past which the value stays within
// epsilon of target.
//
// An undamped spring never settles and returns +Inf. For oscillatory
// motion the decay envelope gives the answer in closed form; non-positive
// angular frequencies fall back to a coarse scan of the trajectory.
func SettlingDuration[V Vector[V]](s Spring, target, initialVelocity V, epsilon float64) float64 {
	if s.decayConstant == 0 {
		return math.Inf(1)
	}

	if s.angularFrequency <= 0 {
		bestTime := -1.0
		bestDistance := math.Inf(1)
		t := 0.0

		for i := 0; i < 1024; i++ {
			current := Value(s, target, initialVelocity, t)
			distance := math.Sqrt(current.Sub(target).MagnitudeSquared())
			if math.IsNaN(distance) || math.IsInf(distance, 0) {
				break
			}

			if bestDistance >= epsilon {
				if distance < bestDistance {
					bestTime = t
					bestDistance = distance
				}
			} else if distance >= epsilon {
				bestDistance = math.Inf(1)
			} else if t-bestTime > 1 {
				return bestTime
			}

			t += 0.1
		}

		return 0
	}

	magnitude := math.Sqrt(target.Scale(s.decayConstant).Sub(initialVelocity).MagnitudeSquared()) +
		math.Sqrt(target.MagnitudeSquared())
	settlingTime := -math.Log(epsilon/magnitude) / s.decayConstant
	return math.Max(settlingTime, 0)
}
