package collision

import (
	"math"
	"testing"

	"github.com/ByteArena/box2d"

	"github.com/aurorafield/rocketsim/internal/bodyfactory"
	"github.com/aurorafield/rocketsim/internal/constants"
	"github.com/aurorafield/rocketsim/internal/rocketmodel"
	"github.com/aurorafield/rocketsim/internal/universe"
	"github.com/aurorafield/rocketsim/internal/vec2"
	"github.com/aurorafield/rocketsim/internal/worldpreset"
)

func f(v float64) *float64 { return &v }

func earthOnly() *universe.Universe {
	return universe.New(worldpreset.Preset{
		Bodies: []worldpreset.Body{{Name: "Earth", Mass: 1, Radius: 100}},
		Rocket: worldpreset.RocketPreset{Spawn: worldpreset.Spawn{HostName: "Earth"}},
	})
}

func softContact() Contact {
	return Contact{
		BodyName:              "Earth",
		RocketPosition:        vec2.Vec2{X: 0, Y: 101},
		RocketAngle:           math.Pi,
		RocketVelocity:        vec2.Vec2{X: 0, Y: -5},
		RocketAngularVelocity: 0,
		OtherPosition:         vec2.Vec2{X: 0, Y: 0},
		OtherVelocity:         vec2.Zero,
	}
}

func hardContact() Contact {
	c := softContact()
	c.RocketVelocity = vec2.Vec2{X: 0, Y: -constants.Rocket.CrashSpeedThreshold - 1}
	return c
}

func TestEvaluateSoftContactLands(t *testing.T) {
	if got := Evaluate(softContact()); got != Landed {
		t.Errorf("Evaluate(soft contact) = %v, want Landed", got)
	}
}

func TestEvaluateFastContactCrashes(t *testing.T) {
	if got := Evaluate(hardContact()); got != Crashed {
		t.Errorf("Evaluate(hard contact) = %v, want Crashed", got)
	}
}

func TestImpactSpeedSymmetricUnderVelocitySwap(t *testing.T) {
	// §8's contact-symmetry law: ImpactSpeed depends only on the
	// relative velocity between rocket and body, so swapping which
	// velocity is labelled "rocket" and which is "other" must not
	// change the magnitude.
	c := softContact()
	swapped := c
	swapped.RocketVelocity, swapped.OtherVelocity = c.OtherVelocity, c.RocketVelocity

	if c.ImpactSpeed() != swapped.ImpactSpeed() {
		t.Errorf("ImpactSpeed not symmetric: %v vs %v", c.ImpactSpeed(), swapped.ImpactSpeed())
	}
}

func TestHandleAppliesLandingAndStopsAtFirstOutcome(t *testing.T) {
	u := earthOnly()
	r := rocketmodel.New(vec2.Vec2{X: 0, Y: 101}, 0, "Earth")

	results := Handle(u, r, nil, []Contact{softContact(), hardContact()})

	if len(results) != 1 {
		t.Fatalf("Handle should stop after the first state-changing contact, got %d results", len(results))
	}
	if !r.IsLanded() {
		t.Error("rocket should be Landed after a soft contact")
	}
	if r.Velocity != vec2.Zero || r.AngularVelocity != 0 {
		t.Errorf("landed rocket should have zero velocity, got v=%v w=%v", r.Velocity, r.AngularVelocity)
	}
}

func TestHandleAppliesCrashAsAttachedDebris(t *testing.T) {
	u := earthOnly()
	r := rocketmodel.New(vec2.Vec2{X: 0, Y: 101}, 0, "Earth")

	Handle(u, r, nil, []Contact{hardContact()})

	if !r.IsDestroyed() {
		t.Fatal("rocket should be destroyed after a hard contact")
	}
	if r.Surface.Kind != rocketmodel.AttachedDebris {
		t.Errorf("crash against a known body should produce AttachedDebris, got %v", r.Surface.Kind)
	}
	if r.Surface.BodyName != "Earth" {
		t.Errorf("AttachedDebris anchor = %q, want Earth", r.Surface.BodyName)
	}
}

func TestHandleStopsProcessingOnceDestroyed(t *testing.T) {
	u := earthOnly()
	r := rocketmodel.New(vec2.Vec2{X: 0, Y: 101}, 0, "Earth")
	r.Surface = rocketmodel.DestroyedState()

	results := Handle(u, r, nil, []Contact{softContact()})

	if len(results) != 0 {
		t.Errorf("Handle should not process contacts for an already-destroyed rocket, got %d", len(results))
	}
}

func TestEvaluateBounceWhenNeitherThresholdCrossed(t *testing.T) {
	c := softContact()
	c.RocketVelocity = vec2.Vec2{X: 0, Y: -(constants.Rocket.LandingMaxSpeed + 10)}
	if got := Evaluate(c); got != Bounce {
		t.Errorf("Evaluate(moderate-speed contact) = %v, want Bounce", got)
	}
}

func bounceContact() Contact {
	c := softContact()
	c.RocketVelocity = vec2.Vec2{X: 0, Y: -(constants.Rocket.LandingMaxSpeed + 10)}
	return c
}

func TestHandleAppliesBounceDampingToSolverBody(t *testing.T) {
	u := earthOnly()
	r := rocketmodel.New(vec2.Vec2{X: 0, Y: 101}, 0, "Earth")

	world := bodyfactory.NewWorld()
	body := bodyfactory.BuildRocket(&world, r)
	body.SetLinearVelocity(box2d.MakeB2Vec2(0, -(constants.Rocket.LandingMaxSpeed + 10)))
	body.SetAngularVelocity(2.0)

	results := Handle(u, r, body, []Contact{bounceContact()})

	if len(results) != 1 || results[0].Outcome != Bounce {
		t.Fatalf("Handle(moderate-speed contact) results = %+v, want a single Bounce", results)
	}
	if r.Surface.Kind != rocketmodel.Flying {
		t.Errorf("a Bounce outcome should leave the rocket Flying, got %v", r.Surface.Kind)
	}

	v := body.GetLinearVelocity()
	wantVY := -(constants.Rocket.LandingMaxSpeed + 10) * constants.Collision.Damping
	if v.Y > wantVY+1e-9 || v.Y < wantVY-1e-9 {
		t.Errorf("post-bounce linear velocity.Y = %v, want %v (damped)", v.Y, wantVY)
	}
	wantW := 2.0 * constants.Collision.Damping
	if got := body.GetAngularVelocity(); got > wantW+1e-9 || got < wantW-1e-9 {
		t.Errorf("post-bounce angular velocity = %v, want %v (damped)", got, wantW)
	}
}
