package syncmgr

import (
	"math"
	"testing"
	"time"

	"github.com/ByteArena/box2d"

	"github.com/aurorafield/rocketsim/internal/bodyfactory"
	"github.com/aurorafield/rocketsim/internal/constants"
	"github.com/aurorafield/rocketsim/internal/rocketmodel"
	"github.com/aurorafield/rocketsim/internal/simerr"
	"github.com/aurorafield/rocketsim/internal/universe"
	"github.com/aurorafield/rocketsim/internal/vec2"
	"github.com/aurorafield/rocketsim/internal/worldpreset"
)

func earthUniverse() *universe.Universe {
	return universe.New(worldpreset.Preset{
		Bodies: []worldpreset.Body{{Name: "Earth", Mass: 1, Radius: 100}},
		Rocket: worldpreset.RocketPreset{Spawn: worldpreset.Spawn{HostName: "Earth"}},
	})
}

func newManager() *Manager {
	return New(simerr.NewReporter(nil))
}

func TestPreStepSurfaceConstraintTracksAnchor(t *testing.T) {
	u := earthUniverse()
	r := rocketmodel.New(vec2.Vec2{X: 0, Y: 105}, math.Pi/2, "Earth")
	r.SetSpawnSurface(rocketmodel.LandedState("Earth", vec2.Vec2{X: 0, Y: 105}, 0))

	world := bodyfactory.NewWorld()
	body := bodyfactory.BuildRocket(&world, r)

	m := newManager()
	m.PreStepSurfaceConstraint(u, r, body)

	if math.Abs(r.Position.X) > 1e-9 || math.Abs(r.Position.Y-105) > 1e-9 {
		t.Errorf("landed pose should track the anchor + stored offset, got %v", r.Position)
	}
}

func TestPreStepSurfaceConstraintNoOpWhileFlying(t *testing.T) {
	u := earthUniverse()
	r := rocketmodel.New(vec2.Vec2{X: 50, Y: 500}, 0, "Earth")

	world := bodyfactory.NewWorld()
	body := bodyfactory.BuildRocket(&world, r)

	before := r.Position
	m := newManager()
	m.PreStepSurfaceConstraint(u, r, body)

	if r.Position != before {
		t.Errorf("PreStepSurfaceConstraint should not move a Flying rocket, got %v want %v", r.Position, before)
	}
}

func TestPreStepSurfaceConstraintRecoversFromVanishedAnchor(t *testing.T) {
	u := earthUniverse()
	r := rocketmodel.New(vec2.Vec2{X: 0, Y: 105}, 0, "Earth")
	r.SetSpawnSurface(rocketmodel.LandedState("Moon", vec2.Vec2{X: 0, Y: 105}, 0))

	world := bodyfactory.NewWorld()
	body := bodyfactory.BuildRocket(&world, r)

	m := newManager()
	m.PreStepSurfaceConstraint(u, r, body)

	if r.Surface.Kind != rocketmodel.Flying {
		t.Errorf("a Landed state anchored to a vanished body should downgrade to Flying, got %v", r.Surface.Kind)
	}
}

func TestRotationStabilizeDampsWhileFlyingAndAssisted(t *testing.T) {
	r := rocketmodel.New(vec2.Vec2{X: 0, Y: 1000}, 0, "Earth")
	r.AngularVelocity = 2.0

	world := bodyfactory.NewWorld()
	body := bodyfactory.BuildRocket(&world, r)
	body.SetAngularVelocity(2.0)

	m := newManager()
	m.RotationStabilize(r, body, true, false)

	want := 2.0 - 2.0*constants.Rocket.RotationStabilityFactor
	if math.Abs(body.GetAngularVelocity()-want) > 1e-9 {
		t.Errorf("RotationStabilize angular velocity = %v, want %v", body.GetAngularVelocity(), want)
	}
}

func TestRotationStabilizeSkippedWhenLateralActive(t *testing.T) {
	r := rocketmodel.New(vec2.Vec2{X: 0, Y: 1000}, 0, "Earth")
	r.AngularVelocity = 2.0

	world := bodyfactory.NewWorld()
	body := bodyfactory.BuildRocket(&world, r)
	body.SetAngularVelocity(2.0)

	m := newManager()
	m.RotationStabilize(r, body, true, true)

	if math.Abs(body.GetAngularVelocity()-2.0) > 1e-9 {
		t.Errorf("lateral thruster input should suppress rotation stabilization, angular velocity changed to %v", body.GetAngularVelocity())
	}
}

func TestPostStepSyncCopiesSolverPoseWhileFlying(t *testing.T) {
	r := rocketmodel.New(vec2.Vec2{X: 0, Y: 1000}, 0, "Earth")

	world := bodyfactory.NewWorld()
	body := bodyfactory.BuildRocket(&world, r)
	world.Step(1.0/60.0, 8, 3)

	m := newManager()
	m.PostStepSync(r, body)

	pos := body.GetPosition()
	if r.Position.X != pos.X || r.Position.Y != pos.Y {
		t.Errorf("PostStepSync did not copy solver pose: model=%v solver=(%v,%v)", r.Position, pos.X, pos.Y)
	}
}

func TestPostStepSyncNoOpWhileLanded(t *testing.T) {
	r := rocketmodel.New(vec2.Vec2{X: 0, Y: 105}, 0, "Earth")
	r.SetSpawnSurface(rocketmodel.LandedState("Earth", vec2.Vec2{X: 0, Y: 105}, 0))

	world := bodyfactory.NewWorld()
	body := bodyfactory.BuildRocket(&world, r)
	body.SetTransform(box2d.MakeB2Vec2(999, 999), 1.234)

	before := r.Position
	m := newManager()
	m.PostStepSync(r, body)

	if r.Position != before {
		t.Errorf("PostStepSync should not overwrite a Landed rocket's model pose, got %v want %v", r.Position, before)
	}
}

func TestTickSkipsDestroyedRocket(t *testing.T) {
	u := earthUniverse()
	r := rocketmodel.New(vec2.Vec2{X: 0, Y: 1000}, 0, "Earth")
	r.Surface = rocketmodel.DestroyedState()

	world := bodyfactory.NewWorld()
	body := bodyfactory.BuildRocket(&world, r)

	m := newManager()
	// A long single tick should still be a no-op for a destroyed rocket.
	m.Tick(time.Second, u, r, body, time.Second)
	if r.Surface.Kind != rocketmodel.Destroyed {
		t.Error("Tick should never re-enter a landed check for a destroyed rocket")
	}
}
