package universe

import (
	"math"

	"github.com/aurorafield/rocketsim/internal/constants"
	"github.com/aurorafield/rocketsim/internal/vec2"
	"github.com/aurorafield/rocketsim/internal/worldpreset"
)

// Universe owns every celestial body and advances their scripted
// orbits each tick (§4.2). It never mutates the rocket.
type Universe struct {
	bodies  []*Body
	byName  map[string]*Body
	elapsed float64
}

// New builds a Universe from a validated world preset. Bodies are
// constructed in preset order; a body's parent must already exist in
// the preset (worldpreset.Preset.Validate enforces this at load time).
func New(preset worldpreset.Preset) *Universe {
	u := &Universe{
		byName: make(map[string]*Body, len(preset.Bodies)),
	}

	for _, pb := range preset.Bodies {
		b := &Body{
			Name:   pb.Name,
			Mass:   pb.Mass,
			Radius: pb.Radius,
			Color:  pb.Color,
			Parent: pb.Parent,
		}
		if pb.OrbitDistance != nil {
			b.OrbitDistance = *pb.OrbitDistance
		}
		if pb.OrbitAngle != nil {
			b.OrbitAngle = *pb.OrbitAngle
		}
		if pb.OrbitSpeed != nil {
			b.OrbitSpeed = *pb.OrbitSpeed
		}
		u.bodies = append(u.bodies, b)
		u.byName[b.Name] = b
	}

	// Resolve initial positions for orbiting bodies so that the first
	// Advance call is not required before bodies have sane poses.
	for _, b := range u.bodies {
		if b.HasOrbit() {
			u.place(b)
		}
	}

	return u
}

// place recomputes a kinematic body's position/velocity from its
// current orbit angle and its parent's current pose (§4.2).
func (u *Universe) place(b *Body) {
	parent, ok := u.byName[b.Parent]
	if !ok {
		// Unresolved at runtime only if the preset was mutated after
		// validation; validation guarantees this does not happen for
		// freshly loaded presets.
		return
	}
	offset := vec2.FromPolar(b.OrbitDistance, b.OrbitAngle)
	b.Position = parent.Position.Add(offset)

	// Analytical derivative of position w.r.t. time:
	// d/dt (distance·cosθ, distance·sinθ) = distance·θ'·(-sinθ, cosθ)
	b.Velocity = parent.Velocity.Add(vec2.Vec2{
		X: -b.OrbitDistance * b.OrbitSpeed * math.Sin(b.OrbitAngle),
		Y: b.OrbitDistance * b.OrbitSpeed * math.Cos(b.OrbitAngle),
	})
}

// Advance moves every scripted orbit forward by dt seconds (§4.2):
// angle += orbitSpeed·dt, then position/velocity are rederived.
// Bodies are advanced in construction order; since an orbit's pose
// depends only on its (already-placed) parent and not on siblings,
// order among siblings does not matter, but a moon's parent must be
// placed before the moon itself — preset order is expected to list
// parents first, matching how every example world preset in this
// repo's tests is authored.
func (u *Universe) Advance(dt float64) {
	u.elapsed += dt
	for _, b := range u.bodies {
		if !b.HasOrbit() {
			continue
		}
		b.OrbitAngle += b.OrbitSpeed * dt
		u.place(b)
	}
}

// FindByName returns the body with the given name, or nil if no such
// body exists (§4.2 query surface).
func (u *Universe) FindByName(name string) *Body {
	return u.byName[name]
}

// Bodies returns every celestial body, in construction order.
func (u *Universe) Bodies() []*Body {
	return u.bodies
}

// NearestTo returns the body whose surface is closest to point p, or
// nil if the universe has no bodies (§4.2 query surface).
func (u *Universe) NearestTo(p vec2.Vec2) *Body {
	var nearest *Body
	best := math.Inf(1)
	for _, b := range u.bodies {
		alt := p.Distance(b.Position) - b.Radius
		if alt < best {
			best = alt
			nearest = b
		}
	}
	return nearest
}

// GravityAt returns the combined gravitational acceleration at point
// p from every body, Σ G·m/r²·r̂, ignoring bodies closer than
// constants.Physics.GravityEpsilonSq to avoid the 1/r² singularity
// (§4.2).
func (u *Universe) GravityAt(p vec2.Vec2) vec2.Vec2 {
	total := vec2.Zero
	for _, b := range u.bodies {
		total = total.Add(u.gravityFromBody(p, b))
	}
	return total
}

// gravityFromBody returns the gravitational acceleration at p due to a
// single body, used both by GravityAt (superposition, §8 law) and
// directly by tests checking superposition.
func (u *Universe) gravityFromBody(p vec2.Vec2, b *Body) vec2.Vec2 {
	delta := b.Position.Sub(p)
	rSq := delta.LengthSq()
	if rSq < constants.Physics.GravityEpsilonSq {
		return vec2.Zero
	}
	magnitude := constants.Physics.G * b.Mass / rSq
	return delta.Normalized().Scale(magnitude)
}

// GravityFromBody exposes gravityFromBody for the superposition law
// test in §8 ("gravityAt(p) = Σ_i gravityAt(p, body_i)").
func (u *Universe) GravityFromBody(p vec2.Vec2, name string) vec2.Vec2 {
	b := u.byName[name]
	if b == nil {
		return vec2.Zero
	}
	return u.gravityFromBody(p, b)
}
