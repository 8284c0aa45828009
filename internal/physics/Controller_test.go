package physics

import (
	"testing"

	"github.com/aurorafield/rocketsim/internal/eventbus"
	"github.com/aurorafield/rocketsim/internal/rocketmodel"
	"github.com/aurorafield/rocketsim/internal/simerr"
	"github.com/aurorafield/rocketsim/internal/universe"
	"github.com/aurorafield/rocketsim/internal/vec2"
	"github.com/aurorafield/rocketsim/internal/worldpreset"
)

func newTestController(t *testing.T) (*Controller, *universe.Universe, *rocketmodel.Rocket) {
	t.Helper()
	u := universe.New(worldpreset.Preset{
		Bodies: []worldpreset.Body{{Name: "Earth", Mass: 1e9, Radius: 100}},
		Rocket: worldpreset.RocketPreset{Spawn: worldpreset.Spawn{HostName: "Earth"}},
	})
	r := rocketmodel.New(vec2.Vec2{X: 0, Y: 1000}, 0, "Earth")
	bus := eventbus.New()
	c := New(bus, simerr.NewReporter(nil))
	c.InitWorld(u, r)
	return c, u, r
}

func TestStepIsNoOpBeforeInitWorld(t *testing.T) {
	c := New(eventbus.New(), simerr.NewReporter(nil))
	diag := c.Step(1.0 / 60.0)
	if diag.Gravity != vec2.Zero || diag.TotalThrust != vec2.Zero || diag.Contacts != nil {
		t.Errorf("Step before InitWorld should return a zero StepDiagnostics, got %+v", diag)
	}
}

func TestStepIsNoOpWhilePaused(t *testing.T) {
	c, _, r := newTestController(t)
	before := r.Position

	c.Pause()
	c.Step(1.0 / 60.0)

	if r.Position != before {
		t.Errorf("Step while paused should not move the rocket, got %v want %v", r.Position, before)
	}
	if !c.Paused() {
		t.Error("Paused() should report true after Pause()")
	}
}

func TestResumeAllowsStepping(t *testing.T) {
	c, _, _ := newTestController(t)
	c.Pause()
	c.Resume()

	c.Step(1.0 / 60.0)
	if c.Paused() {
		t.Error("Paused() should report false after Resume()")
	}
}

func TestStepClampsDtToMaxDt(t *testing.T) {
	c, _, _ := newTestController(t)
	before := c.SimTime()

	c.Step(10.0) // far beyond MaxDt

	elapsed := c.SimTime() - before
	if elapsed <= 0 || elapsed > 40_000_000 { // > 1/30s in ns would be ~33.3ms
		t.Errorf("Step(10.0) should clamp dt to MaxDt (~33ms), simTime advanced by %v", elapsed)
	}
}

func TestStepReportsGravityDiagnostics(t *testing.T) {
	c, _, _ := newTestController(t)
	diag := c.Step(1.0 / 60.0)
	if diag.Gravity == vec2.Zero {
		t.Error("Step should report non-zero gravity toward a massive nearby body")
	}
}

func TestStopMakesStepANoOp(t *testing.T) {
	c, _, r := newTestController(t)
	before := r.Position

	c.Stop()
	c.Step(1.0 / 60.0)

	if r.Position != before {
		t.Errorf("Step after Stop should not move the rocket, got %v want %v", r.Position, before)
	}
}
