// Package timestep implements the timestep exchanged between the
// simulation kernel and anything stepping it (a headless RL loop, a
// render/input frontend, a test harness).
package timestep

import "gonum.org/v1/gonum/mat"

// StepType denotes the type of step that a TimeStep can be: the first
// step of an episode, a middle step, or the last step.
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

// EndType records why an episode ended, so that callers can
// distinguish a goal completion from a step-limit cutoff or a fatal
// outcome without inspecting reward magnitudes.
type EndType int

const (
	// NotEnded marks a TimeStep that is not the last of its episode.
	NotEnded EndType = iota
	// TerminalStateReached marks an episode that ended because the
	// rocket reached a terminal condition (destroyed, objective met).
	TerminalStateReached
	// StepCutoff marks an episode that ended only because the step
	// counter reached its configured maximum.
	StepCutoff
)

// TimeStep packages together a single timestep of the agent/kernel
// interaction.
type TimeStep struct {
	StepType    StepType
	endType     EndType
	Reward      float64
	Discount    float64
	Observation *mat.VecDense
	Number      int
}

// New returns a new TimeStep.
func New(t StepType, reward, discount float64, observation *mat.VecDense,
	number int) TimeStep {
	return TimeStep{
		StepType:    t,
		endType:     NotEnded,
		Reward:      reward,
		Discount:    discount,
		Observation: observation,
		Number:      number,
	}
}

// First returns whether a TimeStep is the first in an episode.
func (t *TimeStep) First() bool { return t.StepType == First }

// Mid returns whether a TimeStep is a middle step in an episode.
func (t *TimeStep) Mid() bool { return t.StepType == Mid }

// Last returns whether a TimeStep is the last step in an episode.
func (t *TimeStep) Last() bool { return t.StepType == Last }

// SetEnd records why the episode ended. It is a no-op on a TimeStep
// that is not StepType == Last.
func (t *TimeStep) SetEnd(e EndType) {
	if t.StepType != Last {
		return
	}
	t.endType = e
}

// End returns why the episode ended. The result is only meaningful
// when Last() is true.
func (t *TimeStep) End() EndType { return t.endType }
