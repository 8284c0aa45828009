package rocketmodel

import "github.com/aurorafield/rocketsim/internal/constants"

// Thruster is the mutable per-thruster state of §3: a power setting
// clamped to [0, maxPower], the fixed maxPower, and the fixed mount
// offset.
type Thruster struct {
	Power    float64
	MaxPower float64
	Offset   constants.Offset
}

// Ratio returns power/maxPower, the quantity used throughout §4.3 and
// §4.4 (takeoff threshold, fuel burn weighting).
func (t Thruster) Ratio() float64 {
	if t.MaxPower == 0 {
		return 0
	}
	return t.Power / t.MaxPower
}

// newThrusterSet builds the four fixed thrusters from the package
// constants, each starting at zero power.
func newThrusterSet() map[constants.ThrusterID]*Thruster {
	set := make(map[constants.ThrusterID]*Thruster, len(constants.AllThrusters))
	for _, id := range constants.AllThrusters {
		set[id] = &Thruster{
			Power:    0,
			MaxPower: constants.MaxPower[id],
			Offset:   constants.ThrusterOffsets[id],
		}
	}
	return set
}
