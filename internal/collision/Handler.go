package collision

import (
	"math"

	"github.com/ByteArena/box2d"

	"github.com/aurorafield/rocketsim/internal/constants"
	"github.com/aurorafield/rocketsim/internal/rocketmodel"
	"github.com/aurorafield/rocketsim/internal/universe"
	"github.com/aurorafield/rocketsim/internal/vec2"
)

// Outcome classifies a processed contact (§4.5).
type Outcome int

const (
	// Bounce is neither a landing nor a crash: the rocket remains
	// Flying and the rebound is box2d's own fixture restitution,
	// damped afterward by applyBounce.
	Bounce Outcome = iota
	Landed
	Crashed
)

// Result is the classification of one contact plus the data needed by
// the caller to emit events and apply damping.
type Result struct {
	Outcome  Outcome
	BodyName string
	Position vec2.Vec2
}

// Evaluate applies the tri-condition tests of §4.4/§4.5 to a single
// contact and returns its classification, without mutating any model.
// Exposed standalone so the §8 contact-symmetry law can be tested
// directly against it.
func Evaluate(c Contact) Outcome {
	speed := c.ImpactSpeed()
	angleDeg := c.NormalAngleDeg()
	angularVel := math.Abs(c.RocketAngularVelocity)

	if speed >= constants.Rocket.CrashSpeedThreshold ||
		angleDeg >= constants.Rocket.CrashAngleDeg ||
		angularVel >= constants.Rocket.CrashAngularVelocity {
		return Crashed
	}

	if speed <= constants.Rocket.LandingMaxSpeed &&
		angleDeg <= constants.Rocket.LandingMaxAngleDeg &&
		angularVel <= constants.Rocket.LandingMaxAngularVelocity {
		return Landed
	}

	return Bounce
}

// Handle processes every contact queued since the last drain against
// the rocket model and universe, driving the Flying→Landed and
// →Destroyed transitions of §4.4. A contact arriving while the rocket
// is Landed is still classified, so a crash-triggering contact can
// fire Landed→Destroyed (§4.4); once the rocket is destroyed, the
// remaining contacts are not processed and no result is returned for
// them.
//
// Only the first Landed or Crashed outcome in the batch is applied:
// once the rocket's surface state changes, later contacts in the same
// batch are stale (the rocket body they described no longer exists at
// that pose).
//
// body is the rocket's solver body. A Bounce outcome damps its actual
// linear/angular velocity directly: the rocket stays Flying, and
// syncmgr's post-step sync copies the body's velocity back onto the
// model every tick, so damping the model fields instead would be
// overwritten before it ever took effect.
func Handle(u *universe.Universe, r *rocketmodel.Rocket, body *box2d.B2Body, contacts []Contact) []Result {
	var results []Result

	for _, c := range contacts {
		if r.IsDestroyed() {
			break
		}

		outcome := Evaluate(c)
		results = append(results, Result{Outcome: outcome, BodyName: c.BodyName, Position: c.RocketPosition})

		switch outcome {
		case Landed:
			applyLanding(u, r, c)
			return results
		case Crashed:
			applyCrash(u, r, c)
			return results
		case Bounce:
			applyBounce(body)
		}
	}

	return results
}

// applyBounce damps the rebound energy box2d's fixture restitution
// (constants.Collision.Restitution, set at construction time) just
// produced, by constants.Collision.Damping, so a shallow bounce
// doesn't ricochet indefinitely. body is nil when a contact batch is
// evaluated without a live solver body (e.g. in tests exercising only
// Landed/Crashed paths), in which case there's nothing to damp.
func applyBounce(body *box2d.B2Body) {
	if body == nil {
		return
	}

	v := body.GetLinearVelocity()
	body.SetLinearVelocity(box2d.MakeB2Vec2(
		v.X*constants.Collision.Damping,
		v.Y*constants.Collision.Damping,
	))
	body.SetAngularVelocity(body.GetAngularVelocity() * constants.Collision.Damping)
}

// applyLanding drives Flying→Landed (§4.4): zero velocities, snap the
// angle to the surface normal, and compute the stored relative offset.
func applyLanding(u *universe.Universe, r *rocketmodel.Rocket, c Contact) {
	body := u.FindByName(c.BodyName)
	if body == nil {
		return
	}

	normal := c.RocketPosition.Sub(body.Position).Normalized()

	r.Velocity = vec2.Zero
	r.AngularVelocity = 0
	r.Angle = math.Atan2(normal.Y, normal.X) + math.Pi/2

	relOffset := c.RocketPosition.Sub(body.Position).Rotated(-body.OrbitAngleOrZero())
	r.Surface = rocketmodel.LandedState(c.BodyName, relOffset, 0)
}

// applyCrash drives the →Destroyed transition (§4.4). Since a
// contact-triggered crash always touches a body, the rocket becomes
// AttachedDebris anchored to that body rather than plain Destroyed
// (Glossary: "the destroyed rocket continues to co-move with a body it
// contacted"), computing a fresh relative offset the same way a
// landing does.
func applyCrash(u *universe.Universe, r *rocketmodel.Rocket, c Contact) {
	r.Health = 0
	body := u.FindByName(c.BodyName)
	if body == nil {
		r.Surface = rocketmodel.DestroyedState()
		return
	}
	relOffset := c.RocketPosition.Sub(body.Position).Rotated(-body.OrbitAngleOrZero())
	r.Surface = rocketmodel.AttachedDebrisState(c.BodyName, relOffset, 0)
}
