package constants

// Rocket holds the constants describing the rocket's resources and the
// landing/crash/lift-off thresholds of the surface state machine (§3,
// §4.4).
var Rocket = struct {
	FuelMax   float64
	HealthMax float64

	Width  float64
	Height float64
	Mass   float64

	// LandingMaxSpeed is the impact-speed ceiling for a contact to be
	// classified as a landing rather than a crash (§4.4).
	LandingMaxSpeed float64
	// LandingMaxAngleDeg is the maximum angle, in degrees, between the
	// rocket's long axis and the outward surface normal for a landing.
	LandingMaxAngleDeg float64
	// LandingMaxAngularVelocity bounds the spin rate allowed for a
	// landing, in rad/s.
	LandingMaxAngularVelocity float64

	// CrashSpeedThreshold is the impact speed at or above which any
	// near-surface contact is a crash, regardless of angle (§4.4).
	CrashSpeedThreshold float64
	// CrashAngleDeg is the angular deviation, in degrees, at or above
	// which a near-surface contact is a crash.
	CrashAngleDeg float64
	// CrashAngularVelocity is the spin rate, in rad/s, at or above
	// which a near-surface contact is a crash.
	CrashAngularVelocity float64

	// CrashProximityThreshold is the altitude band used by the
	// imminent-crash predictor of §4.7.
	CrashProximityThreshold float64

	// InitialVelMagnitude is the magnitude of the outward impulsive
	// velocity applied on lift-off (§4.4).
	InitialVelMagnitude float64
	// ImpulseForce is the one-shot force applied at the rocket's
	// center of mass on lift-off, on top of the velocity impulse.
	ImpulseForce float64

	// TakeoffThrustThresholdPercent is the fraction of the main
	// thruster's maxPower that triggers the lift-off protocol while
	// Landed (§4.3, §4.4).
	TakeoffThrustThresholdPercent float64

	// RotationStabilityFactor is the damping factor applied to
	// angular velocity in assisted-controls mode (§4.1 step 3).
	RotationStabilityFactor float64
}{
	FuelMax:   100.0,
	HealthMax: 100.0,

	Width:  12.0,
	Height: 24.0,
	Mass:   1.0,

	LandingMaxSpeed:           30.0,
	LandingMaxAngleDeg:        20.0,
	LandingMaxAngularVelocity: 0.2,

	CrashSpeedThreshold:  120.0,
	CrashAngleDeg:        45.0,
	CrashAngularVelocity: 1.0,

	CrashProximityThreshold: 40.0,

	InitialVelMagnitude: 18.0,
	ImpulseForce:        400.0,

	TakeoffThrustThresholdPercent: 0.35,

	RotationStabilityFactor: 0.08,
}
