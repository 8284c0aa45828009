// Package worldpreset loads and validates the JSON world preset format
// described in §6, overriding the default constants.Physics.G and
// describing the celestial bodies, rocket spawn, and missions of a
// world.
package worldpreset

import (
	"encoding/json"
	"fmt"
	"io"
)

// Body describes one celestial body entry in a preset (§6).
type Body struct {
	Name  string  `json:"name"`
	Mass  float64 `json:"mass"`
	Radius float64 `json:"radius"`
	Color string  `json:"color,omitempty"`

	Parent        string   `json:"parent,omitempty"`
	OrbitDistance *float64 `json:"orbitDistance,omitempty"`
	OrbitAngle    *float64 `json:"orbitAngle,omitempty"`
	OrbitSpeed    *float64 `json:"orbitSpeed,omitempty"`
}

// HasOrbit reports whether this body entry describes a scripted orbit
// (i.e. it has a parent).
func (b Body) HasOrbit() bool {
	return b.Parent != ""
}

// Spawn describes where the rocket is placed at world load (§6).
type Spawn struct {
	HostName string   `json:"hostName"`
	Altitude *float64 `json:"altitude,omitempty"`
	Angle    *float64 `json:"angle,omitempty"`
}

// RocketPreset wraps the rocket's spawn configuration.
type RocketPreset struct {
	Spawn Spawn `json:"spawn"`
}

// CargoRequirement is one entry of a mission's requiredCargo list.
type CargoRequirement struct {
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
}

// Mission describes one cargo-delivery/objective mission (§6).
type Mission struct {
	From          string             `json:"from"`
	To            string             `json:"to"`
	RequiredCargo []CargoRequirement `json:"requiredCargo,omitempty"`
	Reward        float64            `json:"reward"`
	Objective     string             `json:"objective,omitempty"`
}

// EffectiveObjective returns the mission's objective, defaulting to
// "land" when omitted (see SPEC_FULL.md Open Questions: "land" is the
// only objective always well-defined from a mission's `to` field).
func (m Mission) EffectiveObjective() string {
	if m.Objective == "" {
		return "land"
	}
	return m.Objective
}

// PhysicsPreset overrides global physics constants.
type PhysicsPreset struct {
	G *float64 `json:"G,omitempty"`
}

// Preset is the root of the world preset JSON document (§6).
type Preset struct {
	Physics  PhysicsPreset `json:"physics,omitempty"`
	Bodies   []Body        `json:"bodies"`
	Rocket   RocketPreset  `json:"rocket"`
	Missions []Mission     `json:"missions,omitempty"`
}

// Load decodes a Preset from r and validates it. A validation failure
// is a ConfigurationError per §7 and is returned, never panicked,
// since failing to load a world is recoverable by the caller supplying
// a corrected preset.
func Load(r io.Reader) (Preset, error) {
	var p Preset
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return Preset{}, fmt.Errorf("worldpreset: decode: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Preset{}, err
	}
	return p, nil
}

// Validate checks the structural invariants of §6: bodies is an
// array, and every referenced parent and spawn.hostName resolves to a
// declared body.
func (p Preset) Validate() error {
	if p.Bodies == nil {
		return fmt.Errorf("worldpreset: validate: %w: bodies must be an array", ErrConfiguration)
	}

	names := make(map[string]bool, len(p.Bodies))
	for _, b := range p.Bodies {
		if b.Name == "" {
			return fmt.Errorf("worldpreset: validate: %w: body missing name", ErrConfiguration)
		}
		names[b.Name] = true
	}

	for _, b := range p.Bodies {
		if b.Parent != "" && !names[b.Parent] {
			return fmt.Errorf("worldpreset: validate: %w: body %q references unresolved parent %q",
				ErrConfiguration, b.Name, b.Parent)
		}
	}

	if p.Rocket.Spawn.HostName == "" {
		return fmt.Errorf("worldpreset: validate: %w: rocket.spawn.hostName is required", ErrConfiguration)
	}
	if !names[p.Rocket.Spawn.HostName] {
		return fmt.Errorf("worldpreset: validate: %w: rocket.spawn.hostName %q does not resolve to a body",
			ErrConfiguration, p.Rocket.Spawn.HostName)
	}

	for _, m := range p.Missions {
		if m.From != "" && !names[m.From] {
			return fmt.Errorf("worldpreset: validate: %w: mission references unresolved body %q",
				ErrConfiguration, m.From)
		}
		if m.To != "" && !names[m.To] {
			return fmt.Errorf("worldpreset: validate: %w: mission references unresolved body %q",
				ErrConfiguration, m.To)
		}
	}

	return nil
}
