// Package setup implements Game Setup (§4 C12): building the universe
// and rocket models from a validated world preset, and resolving the
// rocket's initial spawn placement on its configured host body's
// surface.
package setup

import (
	"fmt"
	"math"

	"github.com/aurorafield/rocketsim/internal/constants"
	"github.com/aurorafield/rocketsim/internal/rocketmodel"
	"github.com/aurorafield/rocketsim/internal/universe"
	"github.com/aurorafield/rocketsim/internal/vec2"
	"github.com/aurorafield/rocketsim/internal/worldpreset"
)

// Build constructs a Universe and a Rocket from a validated preset,
// placing the rocket at `rocket.spawn`: `altitude` above the host
// body's surface (default 0, i.e. resting on the surface) at `angle`
// radians from the host's local +X axis (default 0). The rocket is
// oriented along the outward surface normal, matching the pose
// convention the Collision Handler produces for any other landing
// (Handler.applyLanding); it is spawned Landed on the host when the
// altitude is 0 and Flying otherwise. A preset `physics.G` value
// overwrites constants.Physics.G.
//
// preset.Validate is assumed to have already run (worldpreset.Load
// calls it); Build returns an error only if the host body cannot be
// resolved, which Validate guarantees cannot happen for a preset it
// accepted.
func Build(preset worldpreset.Preset) (*universe.Universe, *rocketmodel.Rocket, error) {
	if preset.Physics.G != nil {
		constants.Physics.G = *preset.Physics.G
	}
	u := universe.New(preset)

	host := u.FindByName(preset.Rocket.Spawn.HostName)
	if host == nil {
		return nil, nil, fmt.Errorf("setup: spawn host %q not found in universe", preset.Rocket.Spawn.HostName)
	}

	altitude := 0.0
	if preset.Rocket.Spawn.Altitude != nil {
		altitude = *preset.Rocket.Spawn.Altitude
	}
	angle := 0.0
	if preset.Rocket.Spawn.Angle != nil {
		angle = *preset.Rocket.Spawn.Angle
	}

	offset := vec2.FromPolar(host.Radius+altitude, angle)
	spawnPos := host.Position.Add(offset)
	spawnAngle := angle + math.Pi/2

	r := rocketmodel.New(spawnPos, spawnAngle, host.Name)

	if altitude == 0 {
		relOffset := offset.Rotated(-host.OrbitAngleOrZero())
		r.SetSpawnSurface(rocketmodel.LandedState(host.Name, relOffset, 0))
	}

	return u, r, nil
}
