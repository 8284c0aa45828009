// Package constants holds the tunable physics, rocket, thruster,
// collision, and reward constants of the simulation kernel (§1 C1),
// together with their override surface from a loaded world preset.
//
// Constants live as package-level typed values rather than behind an
// interface: the kernel has exactly one physics rule set per process,
// and a reset never needs to swap it out for another.
package constants

import "time"

// Physics holds the constants governing the fixed-step integration
// loop (§4.1) and gravity model (§4.2).
var Physics = struct {
	// G is the gravitational constant used in F = G·m1·m2/r². Overridable
	// by a world preset's `physics.G` field (§6).
	G float64

	// MaxDt is the hard clamp on a single Step(dt) call, per §4.1:
	// "dt is clamped to ≤ 1/30 s".
	MaxDt float64

	// TimeScale multiplies dt before the rigid-body solver sub-steps,
	// giving a single hook to slow down or speed up the simulated
	// world without touching the caller's wall-clock cadence.
	TimeScale float64

	// VelocityIterations and PositionIterations are the box2d solver's
	// constraint-solving iteration counts.
	VelocityIterations int
	PositionIterations int

	// CollisionDelay is the window after initWorld during which
	// contact events are ignored, to avoid spawn-penetration
	// penalties (§4.1, §4.5).
	CollisionDelay time.Duration

	// GravityEpsilonSq is the minimum squared distance considered by
	// gravityAt before a body is skipped, preventing the 1/r²
	// singularity described in §4.2.
	GravityEpsilonSq float64

	// LandedCheckInterval is the cadence of the periodic landed
	// re-check described in §4.1 step 8 and §4.4.
	LandedCheckInterval time.Duration

	// LiftoffGraceDuration is the length of the post-liftoff window
	// during which the landed-detection subsystem may not re-enter
	// Landed (§3, §4.4).
	LiftoffGraceDuration time.Duration
}{
	G:                    1e-4,
	MaxDt:                1.0 / 30.0,
	TimeScale:            1.0,
	VelocityIterations:   8,
	PositionIterations:   3,
	CollisionDelay:       300 * time.Millisecond,
	GravityEpsilonSq:     1e-6,
	LandedCheckInterval:  150 * time.Millisecond,
	LiftoffGraceDuration: 500 * time.Millisecond,
}
