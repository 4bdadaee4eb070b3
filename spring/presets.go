package spring

// Preset bounce values.
const (
	smoothBounce = 0.0
	snappyBounce = 0.15
	bouncyBounce = 0.3

	presetDuration = 0.5
)

// Smooth returns a spring with a predefined duration and no bounce.
func Smooth() Spring {
	return WithDurationBounce(presetDuration, smoothBounce)
}

// SmoothWith returns a smooth spring tuned with an explicit duration and
// extra bounce on top of the base bounce of 0.
func SmoothWith(duration, extraBounce float64) Spring {
	return WithDurationBounce(duration, smoothBounce+extraBounce)
}

// Snappy returns a spring with a predefined duration and a small amount of
// bounce that feels more snappy.
func Snappy() Spring {
	return WithDurationBounce(presetDuration, snappyBounce)
}

// SnappyWith returns a snappy spring tuned with an explicit duration and
// extra bounce on top of the base bounce of 0.15.
func SnappyWith(duration, extraBounce float64) Spring {
	return WithDurationBounce(duration, snappyBounce+extraBounce)
}

// Bouncy returns a spring with a predefined duration and a higher amount
// of bounce.
func Bouncy() Spring {
	return WithDurationBounce(presetDuration, bouncyBounce)
}

// BouncyWith returns a bouncy spring tuned with an explicit duration and
// extra bounce on top of the base bounce of 0.3.
func BouncyWith(duration, extraBounce float64) Spring {
	return WithDurationBounce(duration, bouncyBounce+extraBounce)
}
