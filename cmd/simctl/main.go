// Command simctl loads a world preset and drives the headless
// environment for a fixed number of steps or until the episode ends,
// printing a per-episode summary. It exercises the same
// headless.Environment contract a training loop would, with a simple
// scripted action (constant main-thruster burn) standing in for an
// actual agent, which is out of scope here.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/aurorafield/rocketsim/headless"
	"github.com/aurorafield/rocketsim/internal/worldpreset"
	"github.com/aurorafield/rocketsim/timestep"
)

func main() {
	var (
		presetPath = flag.String("preset", "", "path to a world preset JSON file")
		maxSteps   = flag.Int("steps", 1000, "maximum steps per episode")
		episodes   = flag.Int("episodes", 1, "number of episodes to run")
		discount   = flag.Float64("discount", 0.99, "per-step discount factor")
		burn       = flag.Float64("burn", 0.6, "constant main-thruster power in [0,1] for the scripted action")
	)
	flag.Parse()

	if *presetPath == "" {
		fmt.Fprintln(os.Stderr, "simctl: -preset is required")
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(*presetPath)
	if err != nil {
		log.Fatalf("simctl: open preset: %v", err)
	}
	defer f.Close()

	preset, err := worldpreset.Load(f)
	if err != nil {
		log.Fatalf("simctl: load preset: %v", err)
	}

	env, err := headless.New(preset, *maxSteps, *discount)
	if err != nil {
		log.Fatalf("simctl: build environment: %v", err)
	}

	action := mat.NewVecDense(headless.ActionRight+1, nil)
	for i := 0; i < action.Len(); i++ {
		action.SetVec(i, math.NaN())
	}
	action.SetVec(headless.ActionMain, *burn)

	for ep := 0; ep < *episodes; ep++ {
		t := env.Reset()
		total := t.Reward
		steps := 0
		for !t.Last() {
			var done bool
			t, done = env.Step(action)
			total += t.Reward
			steps++
			if done {
				break
			}
		}
		fmt.Printf("episode %d: steps=%d return=%.3f end=%s\n", ep, steps, total, endName(t.End()))
	}
}

func endName(e timestep.EndType) string {
	switch e {
	case timestep.TerminalStateReached:
		return "terminal"
	case timestep.StepCutoff:
		return "cutoff"
	default:
		return "not-ended"
	}
}
