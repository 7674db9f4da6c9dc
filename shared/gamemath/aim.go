package gamemath

// AimVelocity returns the velocity a projectile fired from origin should use
// to travel toward target. The delta between the points is divided by
// divisor, giving the per-step displacement, and scaled by stepsPerSecond to
// get a per-second rate.
func AimVelocity(origin, target Position, divisor, stepsPerSecond float64) Vector {
	if divisor == 0 {
		return Vector{}
	}
	d := target.Vector().Sub(origin.Vector())
	return d.Scale(stepsPerSecond / divisor)
}
