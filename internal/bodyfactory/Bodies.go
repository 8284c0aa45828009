// Package bodyfactory builds the box2d rigid bodies backing the
// rocket and the celestial bodies (§4 C4 Body Factory). Celestial
// bodies are created as box2d kinematic bodies — their pose is always
// overwritten by the Universe model, never integrated by the solver,
// matching §3's "bodies with a parent are kinematic" invariant and the
// kinematic-body pattern box2d itself is built around. Gravity is not
// box2d's built-in uniform field; it is accumulated per-body by the
// Physics Controller using the inverse-square law of §4.2 and applied
// as an explicit force, so every world is constructed with zero box2d
// gravity.
package bodyfactory

import (
	"github.com/ByteArena/box2d"

	"github.com/aurorafield/rocketsim/internal/constants"
	"github.com/aurorafield/rocketsim/internal/rocketmodel"
	"github.com/aurorafield/rocketsim/internal/universe"
)

// CelestialUserData tags a box2d body as representing a named
// celestial body, so the Collision Handler can recover the body's
// identity from a contact event without a reverse lookup table.
type CelestialUserData struct {
	Name string
}

// RocketUserData tags a box2d body as the rocket.
type RocketUserData struct{}

// NewWorld returns a box2d world with zero built-in gravity: gravity
// in this simulation is the per-body inverse-square field of §4.2,
// applied explicitly by the Physics Controller.
func NewWorld() box2d.B2World {
	return box2d.MakeB2World(box2d.B2Vec2{X: 0, Y: 0})
}

// BuildCelestial creates a kinematic box2d body mirroring a celestial
// body's current pose. Its pose is overwritten every tick by
// SyncCelestial; it never receives forces.
func BuildCelestial(world *box2d.B2World, b *universe.Body) *box2d.B2Body {
	def := box2d.NewB2BodyDef()
	def.Type = 1 // kinematic body
	def.Position = box2d.MakeB2Vec2(b.Position.X, b.Position.Y)
	body := world.CreateBody(def)
	body.SetUserData(CelestialUserData{Name: b.Name})

	shape := box2d.NewB2CircleShape()
	shape.SetRadius(b.Radius)

	fixture := box2d.MakeB2FixtureDef()
	fixture.Shape = shape
	fixture.Density = 0
	fixture.Friction = 0.3
	fixture.Restitution = constants.Collision.Restitution
	body.CreateFixtureFromDef(&fixture)

	SyncCelestial(body, b)
	return body
}

// SyncCelestial overwrites a celestial box2d body's pose from the
// model, the "kinematic body: setPosition/setVelocity" step of §4.1.
func SyncCelestial(body *box2d.B2Body, b *universe.Body) {
	body.SetTransform(box2d.MakeB2Vec2(b.Position.X, b.Position.Y), 0)
	body.SetLinearVelocity(box2d.MakeB2Vec2(b.Velocity.X, b.Velocity.Y))
	body.SetAngularVelocity(0)
}

// BuildRocket creates the dynamic box2d body for the rocket, sized
// from the model's Width/Height and given a density chosen so the
// fixture's computed mass matches rocketmodel.Rocket.Mass (the
// rocket's mass is fixed per §3, so this is a one-time placement, not
// an ongoing sync).
func BuildRocket(world *box2d.B2World, r *rocketmodel.Rocket) *box2d.B2Body {
	def := box2d.NewB2BodyDef()
	def.Type = 2 // dynamic body
	def.Position = box2d.MakeB2Vec2(r.Position.X, r.Position.Y)
	def.Angle = r.Angle
	body := world.CreateBody(def)
	body.SetUserData(RocketUserData{})

	halfW := r.Width / 2
	halfH := r.Height / 2
	shape := box2d.NewB2PolygonShape()
	shape.SetAsBox(halfW, halfH)

	area := r.Width * r.Height
	density := 1.0
	if area > 0 {
		density = r.Mass / area
	}

	fixture := box2d.MakeB2FixtureDef()
	fixture.Shape = shape
	fixture.Density = density
	fixture.Friction = 0.4
	fixture.Restitution = constants.Collision.Restitution

	body.CreateFixtureFromDef(&fixture)
	body.SetLinearVelocity(box2d.MakeB2Vec2(r.Velocity.X, r.Velocity.Y))
	body.SetAngularVelocity(r.AngularVelocity)

	return body
}
