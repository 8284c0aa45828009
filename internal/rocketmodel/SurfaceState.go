// Package rocketmodel implements the Rocket data model: pose,
// resources, thrusters, cargo, and the surface-state machine of §3
// and §4.4.
package rocketmodel

import "github.com/aurorafield/rocketsim/internal/vec2"

// SurfaceKind tags the variant of SurfaceState (§3).
type SurfaceKind int

const (
	Flying SurfaceKind = iota
	Landed
	AttachedDebris
	Destroyed
)

func (k SurfaceKind) String() string {
	switch k {
	case Flying:
		return "Flying"
	case Landed:
		return "Landed"
	case AttachedDebris:
		return "AttachedDebris"
	case Destroyed:
		return "Destroyed"
	default:
		return "Unknown"
	}
}

// SurfaceState is the tagged variant of §3: Flying has no payload;
// Landed and AttachedDebris carry the anchor body's name plus the
// rocket's pose relative to it; Destroyed has no payload. BodyName and
// RelativeOffset/LocalAngle are only meaningful for the Landed and
// AttachedDebris kinds (§3 invariant: "relativeOffset is only defined
// while surface state is Landed").
type SurfaceState struct {
	Kind SurfaceKind

	BodyName       string
	RelativeOffset vec2.Vec2
	LocalAngle     float64
}

// FlyingState returns the Flying surface state.
func FlyingState() SurfaceState {
	return SurfaceState{Kind: Flying}
}

// DestroyedState returns the Destroyed surface state.
func DestroyedState() SurfaceState {
	return SurfaceState{Kind: Destroyed}
}

// LandedState returns a Landed state anchored to bodyName.
func LandedState(bodyName string, relativeOffset vec2.Vec2, localAngle float64) SurfaceState {
	return SurfaceState{
		Kind:           Landed,
		BodyName:       bodyName,
		RelativeOffset: relativeOffset,
		LocalAngle:     localAngle,
	}
}

// AttachedDebrisState returns an AttachedDebris state anchored to
// bodyName, carrying over the pose the rocket had at the instant of
// destruction (§4.4: "Landed → AttachedDebris occurs only via the
// destroy transition while touching a body").
func AttachedDebrisState(bodyName string, relativeOffset vec2.Vec2, localAngle float64) SurfaceState {
	return SurfaceState{
		Kind:           AttachedDebris,
		BodyName:       bodyName,
		RelativeOffset: relativeOffset,
		LocalAngle:     localAngle,
	}
}

// AnchoredToBody reports whether this state anchors the rocket to a
// named body (Landed or AttachedDebris).
func (s SurfaceState) AnchoredToBody() bool {
	return s.Kind == Landed || s.Kind == AttachedDebris
}
