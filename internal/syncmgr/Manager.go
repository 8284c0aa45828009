// Package syncmgr implements §4.1/§4.4's two-way synchronization
// between the rocket model (source of truth for intent) and the box2d
// solver body: surface-pose stabilization while Landed/AttachedDebris,
// optional rotation-stability assist while Flying, post-step pose
// sync, and the periodic landed re-check with its anti-oscillation
// hysteresis.
package syncmgr

import (
	"math"
	"time"

	"github.com/ByteArena/box2d"

	"github.com/aurorafield/rocketsim/internal/collision"
	"github.com/aurorafield/rocketsim/internal/constants"
	"github.com/aurorafield/rocketsim/internal/rocketmodel"
	"github.com/aurorafield/rocketsim/internal/simerr"
	"github.com/aurorafield/rocketsim/internal/universe"
	"github.com/aurorafield/rocketsim/internal/vec2"
)

// Manager owns the periodic-check cadence and the warn-once reporter
// for vanished anchor bodies (§4.1 step 8, §7 StateError).
type Manager struct {
	sinceLastCheck time.Duration
	reporter       *simerr.Reporter
}

// New returns a Manager logging recoverable StateErrors via log.
func New(reporter *simerr.Reporter) *Manager {
	return &Manager{reporter: reporter}
}

// PreStepSurfaceConstraint is §4.1 step 2. While Landed or
// AttachedDebris, it recomputes the rocket's absolute pose from the
// anchor body's current pose plus the stored relative offset and
// overwrites the solver body accordingly. It is a no-op while Flying
// or Destroyed, and the caller skips calling it entirely for the
// single tick after a lift-off detection (§4.1).
func (m *Manager) PreStepSurfaceConstraint(u *universe.Universe, r *rocketmodel.Rocket, body *box2d.B2Body) {
	if !r.Surface.AnchoredToBody() {
		return
	}

	anchor := u.FindByName(r.Surface.BodyName)
	if anchor == nil {
		m.reporter.Once("vanished:"+r.Surface.BodyName,
			"syncmgr: anchor body %q no longer exists; downgrading to Flying", r.Surface.BodyName)
		if r.Surface.Kind == rocketmodel.Landed {
			r.Surface = rocketmodel.FlyingState()
		}
		return
	}

	rotatedOffset := r.Surface.RelativeOffset.Rotated(anchor.OrbitAngleOrZero())
	pos := anchor.Position.Add(rotatedOffset)
	normal := pos.Sub(anchor.Position).Normalized()
	angle := math.Atan2(normal.Y, normal.X) + math.Pi/2

	r.Position = pos
	r.Angle = angle
	r.Velocity = anchor.Velocity
	r.AngularVelocity = 0

	body.SetTransform(box2d.MakeB2Vec2(pos.X, pos.Y), angle)
	body.SetLinearVelocity(box2d.MakeB2Vec2(anchor.Velocity.X, anchor.Velocity.Y))
	body.SetAngularVelocity(0)
}

// RotationStabilize is §4.1 step 3: assisted-controls angular damping,
// applied only while Flying, with no lateral thruster active.
func (m *Manager) RotationStabilize(r *rocketmodel.Rocket, body *box2d.B2Body, assistedControls, lateralActive bool) {
	if !assistedControls || lateralActive || r.Surface.Kind != rocketmodel.Flying {
		return
	}
	delta := -r.AngularVelocity * constants.Rocket.RotationStabilityFactor
	newAngular := body.GetAngularVelocity() + delta
	body.SetAngularVelocity(newAngular)
}

// PostStepSync is §4.1 step 7: unless the rocket is manually handled
// (anchored Landed/AttachedDebris, or Destroyed with no anchor), the
// model's pose is overwritten from the solver's post-integration pose.
func (m *Manager) PostStepSync(r *rocketmodel.Rocket, body *box2d.B2Body) {
	if r.Surface.Kind != rocketmodel.Flying {
		return
	}

	pos := body.GetPosition()
	next := vec2.Vec2{X: pos.X, Y: pos.Y}
	if !next.IsFinite() {
		// NumericalError (§7): snap to the last valid pose and recover
		// rather than propagate NaN/Inf through the rest of the tick.
		m.reporter.Once("nan-pose", "syncmgr: non-finite pose detected, snapping to last valid pose")
		body.SetTransform(box2d.MakeB2Vec2(r.Position.X, r.Position.Y), r.Angle)
		body.SetLinearVelocity(box2d.B2Vec2{})
		body.SetAngularVelocity(0)
		r.SnapToLastValidPose()
		return
	}

	r.Position = next
	r.Angle = body.GetAngle()
	v := body.GetLinearVelocity()
	r.Velocity = vec2.Vec2{X: v.X, Y: v.Y}
	r.AngularVelocity = body.GetAngularVelocity()
}

// Tick advances the periodic-check clock and runs PeriodicLandedCheck
// once constants.Physics.LandedCheckInterval has elapsed (§4.1 step
// 8), skipping it entirely for a Destroyed rocket.
func (m *Manager) Tick(dt time.Duration, u *universe.Universe, r *rocketmodel.Rocket, body *box2d.B2Body, simTime time.Duration) {
	if r.IsDestroyed() {
		return
	}

	m.sinceLastCheck += dt
	if m.sinceLastCheck < constants.Physics.LandedCheckInterval {
		return
	}
	m.sinceLastCheck = 0
	m.periodicLandedCheck(u, r, body, simTime)
}

// periodicLandedCheck implements §4.4's hysteresis: it must not mark
// Landed while (a) the lift-off grace timer is active, (b) the main
// thruster ratio exceeds the takeoff threshold, or (c) the rocket's
// velocity relative to the candidate body is not near zero. These
// three checks are explicitly OR'd together — the source of multiple
// past bugs in the corpus this kernel was modeled on.
func (m *Manager) periodicLandedCheck(u *universe.Universe, r *rocketmodel.Rocket, body *box2d.B2Body, simTime time.Duration) {
	if r.Surface.Kind != rocketmodel.Flying {
		return
	}

	nearest := u.NearestTo(r.Position)
	if nearest == nil {
		return
	}

	altitude := r.Position.Distance(nearest.Position) - nearest.Radius
	const nearSurfaceBand = 4.0
	if altitude > nearSurfaceBand {
		return
	}

	relativeVelocity := r.Velocity.Sub(nearest.Velocity).Length()

	suppressed := r.InLiftoffGrace(simTime) ||
		r.MainRatio() > constants.Rocket.TakeoffThrustThresholdPercent ||
		relativeVelocity > constants.Rocket.LandingMaxSpeed*0.1
	if suppressed {
		return
	}

	synthetic := collision.Contact{
		BodyName:              nearest.Name,
		RocketPosition:        r.Position,
		RocketAngle:           r.Angle,
		RocketVelocity:        r.Velocity,
		RocketAngularVelocity: r.AngularVelocity,
		OtherPosition:         nearest.Position,
		OtherVelocity:         nearest.Velocity,
	}
	if collision.Evaluate(synthetic) != collision.Landed {
		return
	}

	normal := r.Position.Sub(nearest.Position).Normalized()
	surfaceAngle := math.Atan2(normal.Y, normal.X) + math.Pi/2
	relOffset := r.Position.Sub(nearest.Position).Rotated(-nearest.OrbitAngleOrZero())

	r.Velocity = vec2.Zero
	r.AngularVelocity = 0
	r.Angle = surfaceAngle
	r.Surface = rocketmodel.LandedState(nearest.Name, relOffset, 0)

	body.SetLinearVelocity(box2d.B2Vec2{})
	body.SetAngularVelocity(0)
	body.SetTransform(box2d.MakeB2Vec2(r.Position.X, r.Position.Y), r.Angle)
}
