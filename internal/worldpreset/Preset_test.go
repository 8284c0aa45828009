package worldpreset

import (
	"strings"
	"testing"
)

func TestLoadValidPreset(t *testing.T) {
	body := strings.NewReader(`{
		"bodies": [
			{"name": "Earth", "mass": 1, "radius": 100}
		],
		"rocket": {"spawn": {"hostName": "Earth"}}
	}`)

	p, err := Load(body)
	if err != nil {
		t.Fatalf("Load valid preset: %v", err)
	}
	if len(p.Bodies) != 1 || p.Bodies[0].Name != "Earth" {
		t.Errorf("Load did not decode bodies correctly: %+v", p.Bodies)
	}
}

func TestLoadRejectsUnresolvedSpawnHost(t *testing.T) {
	body := strings.NewReader(`{
		"bodies": [{"name": "Earth", "mass": 1, "radius": 100}],
		"rocket": {"spawn": {"hostName": "Mars"}}
	}`)

	_, err := Load(body)
	if err == nil {
		t.Fatal("Load should reject a spawn hostName that does not resolve to a declared body")
	}
}

func TestLoadRejectsUnresolvedParent(t *testing.T) {
	body := strings.NewReader(`{
		"bodies": [
			{"name": "Moon", "mass": 1, "radius": 10, "parent": "Earth"}
		],
		"rocket": {"spawn": {"hostName": "Moon"}}
	}`)

	_, err := Load(body)
	if err == nil {
		t.Fatal("Load should reject a body referencing an unresolved parent")
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	body := strings.NewReader(`{
		"bodies": [{"name": "Earth", "mass": 1, "radius": 100}],
		"rocket": {"spawn": {"hostName": "Earth"}},
		"unknownField": true
	}`)

	_, err := Load(body)
	if err == nil {
		t.Fatal("Load should reject unknown top-level fields")
	}
}

func TestMissionEffectiveObjectiveDefaultsToLand(t *testing.T) {
	m := Mission{From: "Earth", To: "Moon"}
	if got := m.EffectiveObjective(); got != "land" {
		t.Errorf("EffectiveObjective() with no objective set = %q, want %q", got, "land")
	}

	m.Objective = "orbit"
	if got := m.EffectiveObjective(); got != "orbit" {
		t.Errorf("EffectiveObjective() = %q, want %q", got, "orbit")
	}
}

func TestValidateRejectsMissingBodiesArray(t *testing.T) {
	p := Preset{Rocket: RocketPreset{Spawn: Spawn{HostName: "Earth"}}}
	if err := p.Validate(); err == nil {
		t.Fatal("Validate should reject a nil Bodies slice")
	}
}

func TestValidateRejectsMissionReferencingUnresolvedBody(t *testing.T) {
	p := Preset{
		Bodies: []Body{{Name: "Earth", Mass: 1, Radius: 100}},
		Rocket: RocketPreset{Spawn: Spawn{HostName: "Earth"}},
		Missions: []Mission{
			{From: "Earth", To: "Mars"},
		},
	}
	if err := p.Validate(); err == nil {
		t.Fatal("Validate should reject a mission referencing an unresolved body")
	}
}
