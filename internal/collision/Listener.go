// Package collision implements §4.5: filtering box2d contact events to
// rocket↔celestial pairs and discriminating a landing from a crash
// from the impact characteristics.
package collision

import (
	"math"

	"github.com/ByteArena/box2d"

	"github.com/aurorafield/rocketsim/internal/bodyfactory"
	"github.com/aurorafield/rocketsim/internal/vec2"
)

// Contact is one rocket↔celestial contact captured during a box2d
// Step, carrying the pose/velocity snapshot needed to classify it
// after the step completes (§4.5: "relative speed at contact point",
// "angle between rocket's long axis and outward normal", "current
// angular velocity").
type Contact struct {
	BodyName string

	RocketPosition        vec2.Vec2
	RocketAngle           float64
	RocketVelocity        vec2.Vec2
	RocketAngularVelocity float64

	OtherPosition vec2.Vec2
	OtherVelocity vec2.Vec2
}

// Listener implements box2d.B2ContactListener, queuing every
// rocket↔celestial contact seen during a Step for the Physics
// Controller to drain and classify once the step completes (§4.1 step
// 6 runs after step 5's solver integration). Contacts seen while
// disabled (the COLLISION_DELAY window of §4.1/§4.5) are dropped.
type Listener struct {
	pending  []Contact
	disabled bool
}

// NewListener returns a Listener that begins with collisions disabled,
// matching initWorld's COLLISION_DELAY window (§4.1).
func NewListener() *Listener {
	return &Listener{disabled: true}
}

// SetEnabled toggles whether new contacts are recorded. The Physics
// Controller calls this once the COLLISION_DELAY window elapses.
func (l *Listener) SetEnabled(enabled bool) {
	l.disabled = !enabled
}

// Drain returns every contact queued since the last Drain and clears
// the queue.
func (l *Listener) Drain() []Contact {
	out := l.pending
	l.pending = nil
	return out
}

// BeginContact records a rocket↔celestial contact, capturing the
// velocities and pose at the instant box2d reports first contact —
// the Glossary's "Impact speed" is measured here, before the solver's
// contact response has been applied.
func (l *Listener) BeginContact(contact box2d.B2ContactInterface) {
	if l.disabled {
		return
	}

	bodyA := contact.GetFixtureA().GetBody()
	bodyB := contact.GetFixtureB().GetBody()

	rocketBody, otherBody, ok := rocketCelestialPair(bodyA, bodyB)
	if !ok {
		return
	}
	name, ok := celestialName(otherBody)
	if !ok {
		return
	}

	rv := rocketBody.GetLinearVelocity()
	ov := otherBody.GetLinearVelocity()
	rp := rocketBody.GetPosition()
	op := otherBody.GetPosition()

	l.pending = append(l.pending, Contact{
		BodyName:              name,
		RocketPosition:        vec2.Vec2{X: rp.X, Y: rp.Y},
		RocketAngle:           rocketBody.GetAngle(),
		RocketVelocity:        vec2.Vec2{X: rv.X, Y: rv.Y},
		RocketAngularVelocity: rocketBody.GetAngularVelocity(),
		OtherPosition:         vec2.Vec2{X: op.X, Y: op.Y},
		OtherVelocity:         vec2.Vec2{X: ov.X, Y: ov.Y},
	})
}

// EndContact is unused: §4.5 only needs the instant of first contact.
func (l *Listener) EndContact(contact box2d.B2ContactInterface) {}

// PreSolve and PostSolve are unused: in the non-landing, non-crash
// case of §4.5 box2d's fixture restitution produces the rebound, and
// Handle damps it afterward.
func (l *Listener) PreSolve(contact box2d.B2ContactInterface, oldManifold box2d.B2Manifold) {
}
func (l *Listener) PostSolve(contact box2d.B2ContactInterface, impulse *box2d.B2ContactImpulse) {
}

// rocketCelestialPair identifies which of a and b is the rocket body
// and which is a celestial body, in either fixture order (§8 law:
// "contact test symmetry — swapping body/rocket order ... yields
// identical classification").
func rocketCelestialPair(a, b *box2d.B2Body) (rocket, other *box2d.B2Body, ok bool) {
	if _, isRocket := a.GetUserData().(bodyfactory.RocketUserData); isRocket {
		if _, isCelestial := b.GetUserData().(bodyfactory.CelestialUserData); isCelestial {
			return a, b, true
		}
	}
	if _, isRocket := b.GetUserData().(bodyfactory.RocketUserData); isRocket {
		if _, isCelestial := a.GetUserData().(bodyfactory.CelestialUserData); isCelestial {
			return b, a, true
		}
	}
	return nil, nil, false
}

func celestialName(body *box2d.B2Body) (string, bool) {
	data, ok := body.GetUserData().(bodyfactory.CelestialUserData)
	if !ok {
		return "", false
	}
	return data.Name, true
}

// ImpactSpeed returns the scalar relative speed at contact (§4.5).
func (c Contact) ImpactSpeed() float64 {
	return c.RocketVelocity.Sub(c.OtherVelocity).Length()
}

// NormalAngleDeg returns the angle, in degrees, between the rocket's
// long axis and the outward surface normal at the contact point. The
// rocket's long (nose) axis points at RocketAngle−π/2, the direction
// the main thruster pushes and the one a landed pose (angle = normal
// angle + π/2) aligns with the normal; the outward normal for a
// circular celestial body is the direction from its center to the
// rocket (§4.5).
func (c Contact) NormalAngleDeg() float64 {
	nose := vec2.FromPolar(1, c.RocketAngle-math.Pi/2)
	normal := c.RocketPosition.Sub(c.OtherPosition).Normalized()
	cosTheta := nose.Dot(normal)
	if cosTheta > 1 {
		cosTheta = 1
	}
	if cosTheta < -1 {
		cosTheta = -1
	}
	return math.Abs(math.Acos(cosTheta)) * 180 / math.Pi
}
