package rocketmodel

import (
	"time"

	"github.com/aurorafield/rocketsim/internal/constants"
	"github.com/aurorafield/rocketsim/internal/vec2"
)

// Rocket is the single source of truth for rocket intent: pose,
// resources, thruster powers, surface state, and cargo (§3, §5). The
// solver's rigid body is rebuilt from this model every tick that the
// rocket is surface-constrained, and is the only thing the model
// synchronizes from otherwise (§4.1, §9).
type Rocket struct {
	Position        vec2.Vec2
	Angle           float64
	Velocity        vec2.Vec2
	AngularVelocity float64

	Mass   float64
	Width  float64
	Height float64

	Fuel   float64
	Health float64

	Thrusters map[constants.ThrusterID]*Thruster

	Surface SurfaceState

	// LiftoffGraceEnd is a monotone simulated-time timestamp: while
	// simTime < LiftoffGraceEnd, the periodic landed-check must not
	// re-enter Landed (§3, §4.4).
	LiftoffGraceEnd time.Duration

	Cargo []CargoItem

	spawn spawnConfig
}

// spawnConfig captures the pose and surface state Reset restores the
// rocket to (§3 Lifecycle: "reset() restores defaults and re-places at
// the configured spawn").
type spawnConfig struct {
	position vec2.Vec2
	angle    float64
	hostName string
	surface  SurfaceState
}

// New constructs a rocket at the given spawn pose with no anchor
// (Flying). Callers that spawn landed (the usual case per §12 Game
// Setup) should follow New with SetSpawnSurface.
func New(position vec2.Vec2, angle float64, hostName string) *Rocket {
	r := &Rocket{
		Mass:      constants.Rocket.Mass,
		Width:     constants.Rocket.Width,
		Height:    constants.Rocket.Height,
		Thrusters: newThrusterSet(),
		spawn: spawnConfig{
			position: position,
			angle:    angle,
			hostName: hostName,
			surface:  FlyingState(),
		},
	}
	r.reset(position, angle, r.spawn.surface)
	return r
}

// SetSpawnSurface records the surface state Reset should restore
// (e.g. Landed on the spawn host) and applies it immediately to the
// rocket's current state.
func (r *Rocket) SetSpawnSurface(s SurfaceState) {
	r.spawn.surface = s
	r.Surface = s
}

// reset restores default resources/state and places the rocket at
// pos/angle/surface, common to both New and Reset.
func (r *Rocket) reset(pos vec2.Vec2, angle float64, surface SurfaceState) {
	r.Position = pos
	r.Angle = angle
	r.Velocity = vec2.Zero
	r.AngularVelocity = 0
	r.Fuel = constants.Rocket.FuelMax
	r.Health = constants.Rocket.HealthMax
	r.Surface = surface
	r.LiftoffGraceEnd = 0
	r.Cargo = nil
	for _, t := range r.Thrusters {
		t.Power = 0
	}
}

// Reset restores the rocket to its configured spawn (§3 Lifecycle,
// §4.6 ResetRocket): fuel and health to max, Destroyed cleared, pose
// and surface state to the configured spawn on the configured host
// body.
func (r *Rocket) Reset() {
	r.reset(r.spawn.position, r.spawn.angle, r.spawn.surface)
}

// SpawnHost returns the name of the body the rocket is configured to
// spawn on.
func (r *Rocket) SpawnHost() string {
	return r.spawn.hostName
}

// IsDestroyed reports whether the rocket has latched into a
// post-destruction state (Destroyed or AttachedDebris). Per §3, this
// never reverts.
func (r *Rocket) IsDestroyed() bool {
	return r.Surface.Kind == Destroyed || r.Surface.Kind == AttachedDebris
}

// IsLanded reports whether the rocket is currently anchored Landed
// (not AttachedDebris — that is a distinct post-destruction state).
func (r *Rocket) IsLanded() bool {
	return r.Surface.Kind == Landed
}

// IsFueled reports whether any thruster force may be non-zero this
// tick (§3 invariant: fuel=0 ⇒ all thruster forces are zero).
func (r *Rocket) IsFueled() bool {
	return r.Fuel > 0
}

// MainRatio returns the main thruster's power/maxPower ratio, the
// quantity tested against constants.Rocket.TakeoffThrustThresholdPercent
// by the lift-off protocol (§4.3, §4.4).
func (r *Rocket) MainRatio() float64 {
	return r.Thrusters[constants.Main].Ratio()
}

// BurnFuel is the single writer of Fuel (§4.3, §5): it decrements Fuel
// by Σ_i Consumption[i]·(power_i/maxPower_i)·dt, clamped to [0, Fuel].
// Destroyed rockets never burn fuel (§3 invariant).
func (r *Rocket) BurnFuel(dt float64) {
	if r.IsDestroyed() {
		return
	}
	burn := 0.0
	for id, t := range r.Thrusters {
		burn += constants.Consumption[id] * t.Ratio() * dt
	}
	r.Fuel -= burn
	if r.Fuel < 0 {
		r.Fuel = 0
	}
	if r.Fuel > constants.Rocket.FuelMax {
		r.Fuel = constants.Rocket.FuelMax
	}
}

// InLiftoffGrace reports whether simTime is still within the post-
// lift-off grace window (§3, §4.4).
func (r *Rocket) InLiftoffGrace(simTime time.Duration) bool {
	return simTime < r.LiftoffGraceEnd
}

// SnapToLastValidPose recovers from a NumericalError (§7) by resetting
// velocity and angular velocity to zero and leaving position
// unchanged — the caller is expected to have already restored Position
// from its last known-finite value before calling this.
func (r *Rocket) SnapToLastValidPose() {
	r.Velocity = vec2.Zero
	r.AngularVelocity = 0
}
