package rocketmodel

import (
	"testing"

	"github.com/aurorafield/rocketsim/internal/constants"
	"github.com/aurorafield/rocketsim/internal/vec2"
)

func TestNewSpawnsFlyingByDefault(t *testing.T) {
	r := New(vec2.Vec2{X: 1, Y: 2}, 0, "Earth")
	if r.Surface.Kind != Flying {
		t.Errorf("New() surface kind = %v, want Flying", r.Surface.Kind)
	}
	if r.Fuel != constants.Rocket.FuelMax || r.Health != constants.Rocket.HealthMax {
		t.Errorf("New() fuel/health = %v/%v, want max", r.Fuel, r.Health)
	}
}

func TestSetSpawnSurfaceAppliesImmediately(t *testing.T) {
	r := New(vec2.Vec2{}, 0, "Earth")
	landed := LandedState("Earth", vec2.Vec2{X: 10, Y: 0}, 0)
	r.SetSpawnSurface(landed)

	if r.Surface.Kind != Landed {
		t.Errorf("after SetSpawnSurface, Surface.Kind = %v, want Landed", r.Surface.Kind)
	}
}

func TestResetRestoresConfiguredSpawnSurface(t *testing.T) {
	r := New(vec2.Vec2{X: 5, Y: 5}, 0, "Earth")
	r.SetSpawnSurface(LandedState("Earth", vec2.Vec2{X: 10, Y: 0}, 0))

	// Simulate a flight: lift off, burn fuel, take damage, move it.
	r.Surface = SurfaceState{Kind: Flying}
	r.Position = vec2.Vec2{X: 999, Y: 999}
	r.Fuel = 3
	r.Health = 1

	r.Reset()

	if r.Surface.Kind != Landed {
		t.Errorf("Reset() surface kind = %v, want Landed (the configured spawn)", r.Surface.Kind)
	}
	if r.Surface.BodyName != "Earth" {
		t.Errorf("Reset() surface anchor = %q, want Earth", r.Surface.BodyName)
	}
	if r.Fuel != constants.Rocket.FuelMax || r.Health != constants.Rocket.HealthMax {
		t.Errorf("Reset() fuel/health = %v/%v, want max", r.Fuel, r.Health)
	}
	if r.Position != (vec2.Vec2{X: 5, Y: 5}) {
		t.Errorf("Reset() position = %v, want spawn position", r.Position)
	}
}

func TestResetIsIdempotent(t *testing.T) {
	r := New(vec2.Vec2{X: 1, Y: 1}, 0.4, "Earth")
	r.SetSpawnSurface(LandedState("Earth", vec2.Vec2{X: 1, Y: 0}, 0))

	r.Reset()
	first := *r
	r.Reset()
	second := *r

	if first.Position != second.Position || first.Surface != second.Surface || first.Fuel != second.Fuel {
		t.Errorf("Reset() is not idempotent: first=%+v second=%+v", first, second)
	}
}

func TestIsDestroyedCoversBothPostDestructionKinds(t *testing.T) {
	r := New(vec2.Vec2{}, 0, "Earth")

	r.Surface = DestroyedState()
	if !r.IsDestroyed() {
		t.Error("Destroyed surface should report IsDestroyed() == true")
	}

	r.Surface = AttachedDebrisState("Earth", vec2.Zero, 0)
	if !r.IsDestroyed() {
		t.Error("AttachedDebris surface should report IsDestroyed() == true")
	}

	r.Surface = FlyingState()
	if r.IsDestroyed() {
		t.Error("Flying surface should report IsDestroyed() == false")
	}
}

func TestBurnFuelClampsAtZero(t *testing.T) {
	r := New(vec2.Vec2{}, 0, "Earth")
	r.Fuel = 0.1
	r.Thrusters[constants.Main].Power = constants.Rocket.FuelMax

	r.BurnFuel(10)

	if r.Fuel != 0 {
		t.Errorf("BurnFuel over-drawing should clamp to 0, got %v", r.Fuel)
	}
}

func TestBurnFuelNeverNegativeOrAboveMax(t *testing.T) {
	r := New(vec2.Vec2{}, 0, "Earth")
	for i := 0; i < 1000; i++ {
		r.BurnFuel(0.1)
		if r.Fuel < 0 || r.Fuel > constants.Rocket.FuelMax {
			t.Fatalf("Fuel left [0, FuelMax]: got %v", r.Fuel)
		}
	}
}

func TestBurnFuelNoOpWhenDestroyed(t *testing.T) {
	r := New(vec2.Vec2{}, 0, "Earth")
	r.Surface = DestroyedState()
	r.Thrusters[constants.Main].Power = constants.Rocket.FuelMax
	before := r.Fuel

	r.BurnFuel(1)

	if r.Fuel != before {
		t.Errorf("BurnFuel should not burn fuel once destroyed: fuel changed from %v to %v", before, r.Fuel)
	}
}

func TestInLiftoffGrace(t *testing.T) {
	r := New(vec2.Vec2{}, 0, "Earth")
	r.LiftoffGraceEnd = 500_000_000 // 500ms in time.Duration nanoseconds

	if !r.InLiftoffGrace(100_000_000) {
		t.Error("100ms should be within a 500ms grace window")
	}
	if r.InLiftoffGrace(600_000_000) {
		t.Error("600ms should be outside a 500ms grace window")
	}
}
