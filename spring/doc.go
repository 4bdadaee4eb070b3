// Package spring models the motion of a damped harmonic oscillator in
// closed form.
//
// A [Spring] is an immutable descriptor built from any of four equivalent
// parameterizations: (duration, bounce), (mass, stiffness, damping),
// (response, dampingRatio), or (settlingDuration, dampingRatio), and can
// be read back in any of them. The solver functions [Value], [Velocity],
// [Update], [Force], and [SettlingDuration] evaluate the motion
// analytically for any type satisfying the [Vector] capability set, from
// plain scalars to multi-component aggregates.
//
// There is no error channel: degenerate inputs (zero mass, zero response,
// out-of-range bounce) propagate as IEEE-754 NaN through every derived
// quantity, and callers that care must test with math.IsNaN. All
// operations run in constant time per vector component and allocate
// nothing.
package spring
