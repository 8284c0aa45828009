package environment

import "github.com/aurorafield/rocketsim/timestep"

// StepLimit implements Ender to end episodes once a maximum step count
// is reached, per §4.7's `done` condition "step counter ≥ max".
type StepLimit struct {
	maxSteps int
}

// NewStepLimit creates a new StepLimit ender.
func NewStepLimit(maxSteps int) StepLimit {
	return StepLimit{maxSteps}
}

// End marks the timestep Last and StepCutoff once Number reaches the
// configured maximum.
func (s StepLimit) End(t *timestep.TimeStep) bool {
	if t.Number >= s.maxSteps {
		t.StepType = timestep.Last
		t.SetEnd(timestep.StepCutoff)
		return true
	}
	return false
}
