package environment

import (
	"testing"

	"github.com/aurorafield/rocketsim/timestep"
)

func TestStepLimitEndsAtMaxSteps(t *testing.T) {
	s := NewStepLimit(10)

	ts := timestep.New(timestep.Mid, 0, 0.99, nil, 9)
	if s.End(&ts) {
		t.Fatal("StepLimit should not end before reaching maxSteps")
	}

	ts = timestep.New(timestep.Mid, 0, 0.99, nil, 10)
	if !s.End(&ts) {
		t.Fatal("StepLimit should end once Number reaches maxSteps")
	}
	if ts.StepType != timestep.Last {
		t.Errorf("StepType = %v, want Last", ts.StepType)
	}
	if ts.End() != timestep.StepCutoff {
		t.Errorf("End() = %v, want StepCutoff", ts.End())
	}
}
