// Package environment outlines the interfaces shared by anything that
// steps the simulation kernel: the headless RL environment, and any
// future scripted driver or test harness built on the same contract.
package environment

import (
	"gonum.org/v1/gonum/mat"

	"github.com/aurorafield/rocketsim/timestep"
)

// Starter samples a starting configuration (spawn position, jitter,
// initial resources) for a new episode.
type Starter interface {
	Start() *mat.VecDense
}

// Ender decides whether the current episode should end, mutating the
// TimeStep's StepType/EndType in place when it does.
type Ender interface {
	End(t *timestep.TimeStep) bool
}

// SpecType determines what kind of specification a Spec is describing.
type SpecType int

const (
	Action SpecType = iota
	Observation
	Discount
	Reward
)

// Cardinality indicates whether the associated quantity is continuous
// or discrete.
type Cardinality int

const (
	Continuous Cardinality = iota
	Discrete
)

// Spec describes the type, shape, and bounds of an action, observation,
// discount, or reward.
type Spec struct {
	Shape       *mat.VecDense
	Type        SpecType
	LowerBound  *mat.VecDense
	UpperBound  *mat.VecDense
	Cardinality Cardinality
}

// NewSpec constructs a Spec, panicking if the shape and bound vectors
// disagree in length — a mismatch here is always a programmer error at
// environment-construction time, never a data-dependent failure.
func NewSpec(shape *mat.VecDense, t SpecType, lowerBound,
	upperBound *mat.VecDense, cardinality Cardinality) Spec {
	if shape.Len() != lowerBound.Len() {
		panic("newSpec: shape length must match lower bound length")
	}
	if shape.Len() != upperBound.Len() {
		panic("newSpec: shape length must match upper bound length")
	}
	return Spec{shape, t, lowerBound, upperBound, cardinality}
}

// Environment steps a simulated world forward and reports timesteps.
// The headless package implements this over the physics kernel.
type Environment interface {
	Reset() timestep.TimeStep
	Step(action *mat.VecDense) (timestep.TimeStep, bool)
	RewardSpec() Spec
	DiscountSpec() Spec
	ObservationSpec() Spec
	ActionSpec() Spec
}
