// Package universe implements the celestial-body model and its
// scripted orbital kinematics (§3 CelestialBody, §4.2).
package universe

import "github.com/aurorafield/rocketsim/internal/vec2"

// Body is a celestial body: a planet, moon, or other orbiting mass.
// Bodies with a Parent are kinematic — their pose is driven by the
// scripted orbit, never by force integration (§3 invariant).
type Body struct {
	Name string

	Position vec2.Vec2
	Velocity vec2.Vec2

	Mass   float64
	Radius float64
	Color  string

	// Parent is the name of the body this one orbits, or "" if this
	// body is stationary.
	Parent string

	OrbitDistance float64
	OrbitAngle    float64
	OrbitSpeed    float64
}

// HasOrbit reports whether this body follows a scripted orbit around
// a parent, as opposed to being stationary (§3).
func (b *Body) HasOrbit() bool {
	return b.Parent != ""
}

// Kinematic reports whether this body's pose is driven externally
// (i.e. it is not gravitationally reactive), the §3 invariant that
// bodies with a parent are kinematic.
func (b *Body) Kinematic() bool {
	return b.HasOrbit()
}

// OrbitAngleOrZero returns the body's current orbit angle, or zero for
// a stationary body. Used to express a rocket's relative offset in a
// frame that co-rotates with its anchor body (§4.4 surface pose
// stabilization).
func (b *Body) OrbitAngleOrZero() float64 {
	if !b.HasOrbit() {
		return 0
	}
	return b.OrbitAngle
}
