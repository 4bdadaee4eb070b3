package spring

import "math"

// f64Epsilon is the smallest value x such that 1+x != 1.
const f64Epsilon = 0x1p-52

// WithSettlingDurationDampingRatio creates a spring that comes to rest
// within settlingDuration seconds at the given damping ratio.
//
// settlingDuration is clamped to [0.01, 10] and dampingRatio to (0, 1].
// epsilon is the threshold below which all subsequent values must stay for
// the spring to count as settled. The angular frequency satisfying the
// settling constraint is found with a damped Newton iteration over the
// branch-specific envelope; inputs for which the iteration diverges leave
// NaN in the stored constants.
func WithSettlingDurationDampingRatio(settlingDuration, dampingRatio, epsilon float64) Spring {
	ratio := clamp(dampingRatio, f64Epsilon, 1)
	duration := clamp(settlingDuration, 0.01, 10)

	ratioSquaredDuration := ratio * ratio * duration
	naturalTerm := math.Sqrt(1 - ratio*ratio)
	envelopeRatio := ratio / naturalTerm
	dampedTime := duration * ratio

	findRoot := func(guess float64, maxIterations int, response, derivative func(float64) float64, result *float64) bool {
		current := guess
		timeScale := 1 / duration
		remaining := maxIterations

		scaled := timeScale * current
		approximation := scaled

		current = response(approximation)
		next := approximation - current/derivative(approximation)
		approximation = next

		if math.IsInf(next, 0) || math.IsNaN(next) {
			*result = approximation
			return false
		}
		if remaining == 1 {
			*result = approximation
			return true
		}
		scaled = next - response(next)/derivative(approximation)
		approximation = scaled
		if math.IsInf(scaled, 0) || math.IsNaN(scaled) {
			*result = approximation
			return false
		}
		remaining -= 2
		if remaining == 0 {
			*result = approximation
			return true
		}

		difference := next - scaled
		for {
			current = scaled - response(scaled)/derivative(approximation)
			approximation = current
			if math.IsInf(current, 0) || math.IsNaN(current) {
				*result = approximation
				return false
			}

			timeScale = math.Abs(current - scaled)
			if timeScale <= epsilon {
				*result = approximation
				return difference <= epsilon*1e5
			}
			difference = scaled - current
			scaled = current
			remaining--
			if remaining <= 0 {
				break
			}
		}
		*result = approximation
		return true
	}

	dampedEnvelope := func(x float64) float64 {
		return epsilon - math.Abs(envelopeRatio*math.Exp(-dampedTime*x))
	}
	dampedDerivative := func(x float64) float64 {
		squared := x * x
		return squared * ratioSquaredDuration / (math.Exp(dampedTime*x) * squared * naturalTerm)
	}
	criticalEnvelope := func(x float64) float64 {
		threshold := epsilon
		if x < 0 {
			threshold = -epsilon
		}
		response := duration * x
		return math.Exp(-response)*(response+1) - threshold
	}
	criticalDerivative := func(x float64) float64 {
		return -duration * duration * x / math.Exp(duration*x)
	}

	response, derivative := dampedEnvelope, dampedDerivative
	if ratio >= 1 {
		response, derivative = criticalEnvelope, criticalDerivative
	}

	var root float64
	if findRoot(5, 12, response, derivative, &root) {
		_ = findRoot(1, 20, response, derivative, &root)
	}

	omega := root
	omegaSquared := omega * omega
	omega = omega * 2 * ratio
	halfOmega := omega / 2
	omega = math.Sqrt(math.Abs(omegaSquared - halfOmega*halfOmega))
	decay := halfOmega
	if root < halfOmega {
		decay = root
		omega = 0
	}

	return Spring{
		angularFrequency: omega,
		decayConstant:    decay,
		mass:             1,
	}
}

// SettlingDuration returns the estimated duration required for the spring
// to be considered at rest, using a target of 1, an initial velocity of 0,
// and an epsilon of 0.001.
func (s Spring) SettlingDuration() float64 {
	return SettlingDuration(s, Scalar(1), Scalar(0), 0.001)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
