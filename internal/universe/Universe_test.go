package universe

import (
	"math"
	"testing"

	"github.com/aurorafield/rocketsim/internal/vec2"
	"github.com/aurorafield/rocketsim/internal/worldpreset"
)

func f(v float64) *float64 { return &v }

func twoBodyPreset() worldpreset.Preset {
	return worldpreset.Preset{
		Bodies: []worldpreset.Body{
			{Name: "Earth", Mass: 5.972e6, Radius: 6371},
			{
				Name: "Moon", Mass: 7.347e4, Radius: 1737,
				Parent: "Earth", OrbitDistance: f(384400), OrbitAngle: f(0), OrbitSpeed: f(0.01),
			},
		},
		Rocket: worldpreset.RocketPreset{Spawn: worldpreset.Spawn{HostName: "Earth"}},
	}
}

func TestGravitySuperposition(t *testing.T) {
	u := New(twoBodyPreset())
	p := vec2.Vec2{X: 100000, Y: 50000}

	total := u.GravityAt(p)

	sum := vec2.Zero
	for _, b := range u.Bodies() {
		sum = sum.Add(u.GravityFromBody(p, b.Name))
	}

	if math.Abs(total.X-sum.X) > 1e-12 || math.Abs(total.Y-sum.Y) > 1e-12 {
		t.Errorf("GravityAt(%v) = %v, want sum of per-body gravity %v", p, total, sum)
	}
}

func TestGravityEpsilonAvoidsSingularity(t *testing.T) {
	u := New(twoBodyPreset())
	earth := u.FindByName("Earth")

	g := u.gravityFromBody(earth.Position, earth)
	if g != vec2.Zero {
		t.Errorf("gravityFromBody at the body's own position = %v, want Zero (epsilon guard)", g)
	}
}

func TestAdvancePlacesMoonByOrbitSpeed(t *testing.T) {
	u := New(twoBodyPreset())
	moon := u.FindByName("Moon")
	before := moon.OrbitAngle

	u.Advance(10)

	if moon.OrbitAngle != before+0.1 {
		t.Errorf("after Advance(10) with OrbitSpeed=0.01, OrbitAngle = %v, want %v", moon.OrbitAngle, before+0.1)
	}

	earth := u.FindByName("Earth")
	dist := moon.Position.Distance(earth.Position)
	if math.Abs(dist-384400) > 1e-6 {
		t.Errorf("Moon orbit distance drifted after Advance: got %v, want 384400", dist)
	}
}

func TestFindByNameMissing(t *testing.T) {
	u := New(twoBodyPreset())
	if u.FindByName("Mars") != nil {
		t.Error("FindByName for an absent body should return nil")
	}
}

func TestNearestTo(t *testing.T) {
	u := New(twoBodyPreset())
	earth := u.FindByName("Earth")
	nearest := u.NearestTo(earth.Position.Add(vec2.Vec2{X: 7000, Y: 0}))
	if nearest.Name != "Earth" {
		t.Errorf("NearestTo near Earth's surface = %v, want Earth", nearest.Name)
	}
}
