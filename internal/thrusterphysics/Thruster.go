// Package thrusterphysics implements §4.3: mapping thruster power to
// force and torque applied at each thruster's fixed offset, and the
// lift-off impulse protocol of §4.4 that the main thruster can trigger
// while the rocket is Landed.
package thrusterphysics

import (
	"math"
	"time"

	"github.com/ByteArena/box2d"

	"github.com/aurorafield/rocketsim/internal/constants"
	"github.com/aurorafield/rocketsim/internal/rocketmodel"
	"github.com/aurorafield/rocketsim/internal/vec2"
)

// Result summarizes one tick's thruster application, consumed by the
// Physics Controller for diagnostics (§4.1 step 9) and event emission.
type Result struct {
	// TotalForce is the sum of every thruster's applied force, in
	// world space, for the "total thrust" vector annotation of the
	// SimulationSnapshot (§3).
	TotalForce vec2.Vec2

	// LiftoffTriggered reports whether this tick's main-thruster ratio
	// crossed the takeoff threshold while Landed, firing §4.4's
	// lift-off transition.
	LiftoffTriggered bool

	// LiftedOffFrom is the body the rocket lifted off from, valid only
	// when LiftoffTriggered.
	LiftedOffFrom string
}

// direction returns the world-space unit direction a thruster pushes
// the rocket, given the rocket's current angle (§4.3): main fires
// along angle-π/2, rear along angle+π/2, left/right perpendicular to
// their lever arm.
func direction(id constants.ThrusterID, rocketAngle float64) vec2.Vec2 {
	switch id {
	case constants.Main:
		return vec2.FromPolar(1, rocketAngle-math.Pi/2)
	case constants.Rear:
		return vec2.FromPolar(1, rocketAngle+math.Pi/2)
	case constants.Left:
		// Perpendicular to the lever arm (offset angle rotated with
		// the hull), producing net torque with a small linear
		// component.
		offset := constants.ThrusterOffsets[id]
		return vec2.FromPolar(1, rocketAngle+offset.Angle+math.Pi/2)
	case constants.Right:
		offset := constants.ThrusterOffsets[id]
		return vec2.FromPolar(1, rocketAngle+offset.Angle-math.Pi/2)
	default:
		return vec2.Zero
	}
}

// applicationPoint returns the world-space point of application for a
// thruster: rocket center + R(angle)·offset (§4.3).
func applicationPoint(r *rocketmodel.Rocket, id constants.ThrusterID) vec2.Vec2 {
	offset := constants.ThrusterOffsets[id]
	local := vec2.FromPolar(offset.Distance, offset.Angle)
	return r.Position.Add(local.Rotated(r.Angle))
}

// magnitude returns a thruster's force magnitude for the current tick
// (§4.3): zero if the rocket carries no fuel, regardless of the power
// setting, which may remain non-zero until clipped here.
func magnitude(r *rocketmodel.Rocket, id constants.ThrusterID) float64 {
	if !r.IsFueled() {
		return 0
	}
	t := r.Thrusters[id]
	return constants.BaseThrust[id] * t.Ratio() * constants.Effectiveness[id] *
		constants.GlobalThrustMultiplier
}

// Apply computes and applies every thruster's force/torque to the
// rocket's box2d body for one tick, and fires the lift-off protocol if
// the main thruster crosses its threshold while Landed. Fuel is never
// written here (§4.3's single-writer policy) — Apply only reads
// r.IsFueled()/r.Thrusters; the caller is responsible for calling
// rocketmodel.Rocket.BurnFuel once per tick.
//
// Destroyed rockets apply no force (§3 invariant) and cannot lift off.
func Apply(body *box2d.B2Body, r *rocketmodel.Rocket, simTime time.Duration) Result {
	var result Result
	if r.IsDestroyed() {
		return result
	}

	for _, id := range constants.AllThrusters {
		mag := magnitude(r, id)
		if mag == 0 {
			continue
		}
		dir := direction(id, r.Angle)
		force := dir.Scale(mag)
		point := applicationPoint(r, id)

		body.ApplyForce(
			box2d.MakeB2Vec2(force.X, force.Y),
			box2d.MakeB2Vec2(point.X, point.Y),
			true,
		)
		result.TotalForce = result.TotalForce.Add(force)
	}

	if r.IsLanded() && r.MainRatio() > constants.Rocket.TakeoffThrustThresholdPercent {
		liftedFrom := r.Surface.BodyName
		triggerLiftoff(body, r, simTime)
		result.LiftoffTriggered = true
		result.LiftedOffFrom = liftedFrom
	}

	return result
}

// triggerLiftoff is the lift-off routine of §4.4: the only code path
// that clears Landed mid-tick (§5). It zeroes the relative offset,
// starts the grace timer, and applies both an impulsive velocity and a
// one-shot force to defeat static friction and any interpenetration
// the solver injected at rest.
func triggerLiftoff(body *box2d.B2Body, r *rocketmodel.Rocket, simTime time.Duration) {
	outward := vec2.FromPolar(1, r.Angle-math.Pi/2)

	r.Surface = rocketmodel.SurfaceState{Kind: rocketmodel.Flying}
	r.LiftoffGraceEnd = simTime + constants.Physics.LiftoffGraceDuration

	impulseVelocity := outward.Scale(constants.Rocket.InitialVelMagnitude)
	r.Velocity = r.Velocity.Add(impulseVelocity)
	body.SetLinearVelocity(box2d.MakeB2Vec2(r.Velocity.X, r.Velocity.Y))

	force := outward.Scale(constants.Rocket.ImpulseForce)
	body.ApplyForceToCenter(box2d.MakeB2Vec2(force.X, force.Y), true)
}
