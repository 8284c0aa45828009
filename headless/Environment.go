// Package headless implements the Headless Environment (§4.7): a
// Gym/dm_env-style stepping interface over the simulation kernel,
// producing observations and scalar rewards for a reinforcement
// learning agent, independent of any rendering or input frontend.
package headless

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"

	"github.com/aurorafield/rocketsim/environment"
	"github.com/aurorafield/rocketsim/internal/constants"
	"github.com/aurorafield/rocketsim/internal/control"
	"github.com/aurorafield/rocketsim/internal/eventbus"
	"github.com/aurorafield/rocketsim/internal/physics"
	"github.com/aurorafield/rocketsim/internal/rocketmodel"
	"github.com/aurorafield/rocketsim/internal/setup"
	"github.com/aurorafield/rocketsim/internal/simerr"
	"github.com/aurorafield/rocketsim/internal/universe"
	"github.com/aurorafield/rocketsim/internal/worldpreset"
	"github.com/aurorafield/rocketsim/timestep"
)

// Action vector indices (§6: "any subset of {mainThruster, rearThruster,
// rotationInput, leftThruster, rightThruster}"). A NaN value at an
// index means "no command this tick" (prior power retained), the
// vector encoding of the schema's "absent field".
const (
	ActionMain = iota
	ActionRear
	ActionRotation
	ActionLeft
	ActionRight
	actionDims
)

// Observation vector layout: 11 rocket scalars, then 4 scalars per
// celestial body (x, y, radius, mass — color is non-numeric and
// omitted), then the step count (§6 observation schema; "reward" from
// the schema is carried separately on TimeStep.Reward, not duplicated
// in the vector).
const rocketObsDims = 11
const bodyObsDims = 4

// Environment implements environment.Environment over the simulation
// kernel (§4.7). Episodes run until destruction, fuel exhaustion, the
// imminent-crash predictor, objective success, or a step-limit cutoff.
type Environment struct {
	preset   worldpreset.Preset
	maxSteps int
	discount float64

	universe     *universe.Universe
	rocket       *rocketmodel.Rocket
	physicsC     *physics.Controller
	rocketC      *control.Controller
	bus          *eventbus.Bus
	reporter     *simerr.Reporter
	stepLimit    environment.Ender
	fuelEnder    environment.Ender
	successEnder environment.Ender
	jitter       environment.Starter

	bodyNames []string

	mission    worldpreset.Mission
	hasMission bool
	objective  string

	stabilityCounter int
	missionRewarded  bool
	visited          map[string]bool
	exploreRewarded  bool

	prevStep timestep.TimeStep
}

// Option configures optional Environment behavior at construction.
type Option func(*Environment)

// WithSpawnJitter perturbs the rocket's configured spawn altitude and
// angle by an independent draw from altitude/angle each Reset, rather
// than always placing it at the exact preset-configured spawn. Useful
// for training on a distribution of starting conditions rather than a
// single fixed one (§6's spawn fields describe the center of that
// distribution, not a requirement of exactness).
func WithSpawnJitter(altitude, angle r1.Interval, seed uint64) Option {
	return func(e *Environment) {
		e.jitter = environment.NewUniformStarter([]r1.Interval{altitude, angle}, seed)
	}
}

// New returns an Environment for preset, capping episodes at maxSteps
// ticks, using discount as the per-step discount factor. preset is
// assumed already validated (worldpreset.Load validates at parse
// time).
func New(preset worldpreset.Preset, maxSteps int, discount float64, opts ...Option) (*Environment, error) {
	e := &Environment{
		preset:   preset,
		maxSteps: maxSteps,
		discount: discount,
		stepLimit: environment.NewStepLimit(maxSteps),
		fuelEnder: environment.NewIntervalLimit(
			[]r1.Interval{{Min: math.SmallestNonzeroFloat64, Max: constants.Rocket.FuelMax}},
			[]int{6},
			timestep.TerminalStateReached,
		),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.successEnder = environment.NewFunctionEnder(
		func(*mat.VecDense) bool { return e.objectiveSucceeded() },
		timestep.TerminalStateReached,
	)

	u, r, err := e.buildWorld()
	if err != nil {
		return nil, err
	}
	e.universe = u
	e.rocket = r

	names := make([]string, 0, len(u.Bodies()))
	for _, b := range u.Bodies() {
		names = append(names, b.Name)
	}
	e.bodyNames = names

	if len(preset.Missions) > 0 {
		e.mission = preset.Missions[0]
		e.hasMission = true
		e.objective = e.mission.EffectiveObjective()
	}
	return e, nil
}

// buildWorld constructs the universe and rocket from the stored
// preset, applying spawn jitter if configured via WithSpawnJitter.
func (e *Environment) buildWorld() (*universe.Universe, *rocketmodel.Rocket, error) {
	preset := e.preset
	if e.jitter != nil {
		draw := e.jitter.Start()

		baseAlt := 0.0
		if preset.Rocket.Spawn.Altitude != nil {
			baseAlt = *preset.Rocket.Spawn.Altitude
		}
		baseAngle := 0.0
		if preset.Rocket.Spawn.Angle != nil {
			baseAngle = *preset.Rocket.Spawn.Angle
		}

		alt := baseAlt + draw.AtVec(0)
		angle := baseAngle + draw.AtVec(1)
		preset.Rocket.Spawn.Altitude = &alt
		preset.Rocket.Spawn.Angle = &angle
	}
	return setup.Build(preset)
}

// Reset rebuilds the universe and rocket from the stored preset,
// resets mission/episode counters, and returns the first timestep of
// the new episode (§4.7 reset contract).
func (e *Environment) Reset() timestep.TimeStep {
	u, r, err := e.buildWorld()
	if err != nil {
		// preset was already validated at New; a failure here means
		// the preset was mutated after construction, a programmer
		// error.
		panic("headless: Reset: " + err.Error())
	}
	e.universe = u
	e.rocket = r

	e.reporter = simerr.NewReporter(nil)
	e.bus = eventbus.New()
	e.physicsC = physics.New(e.bus, e.reporter)
	e.physicsC.InitWorld(e.universe, e.rocket)
	e.rocketC = control.New(e.rocket, e.bus, e.reporter)

	e.stabilityCounter = 0
	e.missionRewarded = false
	e.exploreRewarded = false
	e.visited = make(map[string]bool)

	obs := e.observe(0)
	t := timestep.New(timestep.First, 0, e.discount, obs, 0)
	e.prevStep = t

	e.bus.Publish(eventbus.Event{Kind: eventbus.AIEpisodeStarted})
	return t
}

// Step translates action to semantic commands, advances the kernel
// exactly one tick, computes the active objective's reward, and
// evaluates termination (§4.7).
func (e *Environment) Step(action *mat.VecDense) (timestep.TimeStep, bool) {
	e.applyAction(action)

	const dt = 1.0 / 60.0
	e.physicsC.Step(dt)
	e.checkImminentCrash()

	reward := e.computeReward()

	number := e.prevStep.Number + 1
	obs := e.observe(number)
	t := timestep.New(timestep.Mid, reward, e.discount, obs, number)
	e.end(&t)

	if t.Last() {
		e.bus.Publish(eventbus.Event{Kind: eventbus.AIEpisodeEnded})
	}
	e.bus.Publish(eventbus.Event{
		Kind:    eventbus.AITrainingStep,
		Payload: eventbus.TrainingStepPayload{Step: number, Reward: reward, Done: t.Last()},
	})

	e.prevStep = t
	return t, t.Last()
}

// applyAction forwards non-NaN action components as semantic commands
// to the Rocket Controller (§6 action schema).
func (e *Environment) applyAction(action *mat.VecDense) {
	if action == nil || action.Len() < actionDims {
		return
	}

	if v := action.AtVec(ActionRotation); !math.IsNaN(v) {
		e.rocketC.RotateCommand(v)
	} else {
		if v := action.AtVec(ActionLeft); !math.IsNaN(v) {
			e.rocketC.SetThrusterPower(constants.Left, v)
		}
		if v := action.AtVec(ActionRight); !math.IsNaN(v) {
			e.rocketC.SetThrusterPower(constants.Right, v)
		}
	}

	if v := action.AtVec(ActionMain); !math.IsNaN(v) {
		e.rocketC.SetThrusterPower(constants.Main, v)
	}
	if v := action.AtVec(ActionRear); !math.IsNaN(v) {
		e.rocketC.SetThrusterPower(constants.Rear, v)
	}
}

// checkImminentCrash implements the §4.7 fast-termination predictor:
// for every body, if the rocket's altitude is within
// CRASH_PROXIMITY_THRESHOLD, it is closing in radially, and its total
// speed exceeds CRASH_SPEED_THRESHOLD, the rocket is destroyed without
// waiting for the solver to generate a contact.
func (e *Environment) checkImminentCrash() {
	if e.rocket.IsDestroyed() {
		return
	}
	for _, b := range e.universe.Bodies() {
		toBody := b.Position.Sub(e.rocket.Position)
		altitude := toBody.Length() - b.Radius
		if altitude <= 0 || altitude >= constants.Rocket.CrashProximityThreshold {
			continue
		}

		relative := e.rocket.Velocity.Sub(b.Velocity)
		speed := relative.Length()
		if speed <= constants.Rocket.CrashSpeedThreshold {
			continue
		}

		radialSpeed := relative.Dot(toBody.Normalized())
		if radialSpeed <= 0 {
			continue
		}

		e.rocket.Health = 0
		e.rocket.Surface = rocketmodel.DestroyedState()
		e.bus.Publish(eventbus.Event{
			Kind: eventbus.RocketDestroyed,
			Payload: eventbus.DestroyedPayload{
				X: e.rocket.Position.X, Y: e.rocket.Position.Y,
			},
		})
		return
	}
}

// end evaluates the §4.7 done conditions in priority order (a
// terminal condition always overrides the step-limit cutoff), mutating
// t in place to mark it Last with the right EndType.
func (e *Environment) end(t *timestep.TimeStep) bool {
	if e.rocket.IsDestroyed() {
		t.StepType = timestep.Last
		t.SetEnd(timestep.TerminalStateReached)
		return true
	}

	if e.successEnder.End(t) {
		return true
	}

	if e.fuelEnder.End(t) {
		return true
	}

	return e.stepLimit.End(t)
}

func (e *Environment) objectiveSucceeded() bool {
	if !e.hasMission {
		return false
	}
	switch e.objective {
	case "land":
		return e.missionRewarded
	case "orbit":
		return e.stabilityCounter >= constants.Reward.OrbitStabilitySteps
	case "explore":
		return e.exploreRewarded
	default:
		return false
	}
}

// observe assembles the fixed-layout observation vector (§6).
func (e *Environment) observe(step int) *mat.VecDense {
	data := make([]float64, rocketObsDims+bodyObsDims*len(e.bodyNames)+1)

	data[0] = e.rocket.Position.X
	data[1] = e.rocket.Position.Y
	data[2] = e.rocket.Velocity.X
	data[3] = e.rocket.Velocity.Y
	data[4] = e.rocket.Angle
	data[5] = e.rocket.AngularVelocity
	data[6] = e.rocket.Fuel
	data[7] = e.rocket.Health
	data[8] = boolFloat(e.rocket.IsDestroyed())
	data[9] = boolFloat(e.rocket.IsLanded())
	data[10] = float64(e.landedOnIndex())

	for i, b := range e.universe.Bodies() {
		base := rocketObsDims + i*bodyObsDims
		data[base] = b.Position.X
		data[base+1] = b.Position.Y
		data[base+2] = b.Radius
		data[base+3] = b.Mass
	}

	data[len(data)-1] = float64(step)
	return mat.NewVecDense(len(data), data)
}

// landedOnIndex returns the index into e.bodyNames of the body the
// rocket is currently anchored to (Landed or AttachedDebris), or -1 if
// it isn't anchored to any body.
func (e *Environment) landedOnIndex() int {
	if !e.rocket.Surface.AnchoredToBody() {
		return -1
	}
	for i, name := range e.bodyNames {
		if name == e.rocket.Surface.BodyName {
			return i
		}
	}
	return -1
}

func boolFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// ActionSpec returns the §6 action schema's bounds: thruster channels
// in [0, 1], rotation in [−1, 1].
func (e *Environment) ActionSpec() environment.Spec {
	shape := mat.NewVecDense(actionDims, nil)
	lower := mat.NewVecDense(actionDims, []float64{0, 0, -1, 0, 0})
	upper := mat.NewVecDense(actionDims, []float64{1, 1, 1, 1, 1})
	return environment.NewSpec(shape, environment.Action, lower, upper, environment.Continuous)
}

// ObservationSpec returns bounds for the observation vector. Position
// and velocity components are effectively unbounded in this
// simulation (no viewport clamp), so they are reported as ±Inf; the
// destroyed/landed flags and the landed-on index have tight bounds,
// and the step field is also reported as ±Inf.
func (e *Environment) ObservationSpec() environment.Spec {
	n := rocketObsDims + bodyObsDims*len(e.bodyNames) + 1
	lower := make([]float64, n)
	upper := make([]float64, n)
	for i := range lower {
		lower[i] = math.Inf(-1)
		upper[i] = math.Inf(1)
	}
	lower[8], upper[8] = 0, 1
	lower[9], upper[9] = 0, 1
	lower[10], upper[10] = -1, float64(len(e.bodyNames)-1)

	shape := mat.NewVecDense(n, nil)
	return environment.NewSpec(shape, environment.Observation,
		mat.NewVecDense(n, lower), mat.NewVecDense(n, upper), environment.Continuous)
}

// DiscountSpec returns the fixed discount factor as a degenerate
// (equal lower/upper bound) spec, the usual convention for a constant
// discount.
func (e *Environment) DiscountSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	bound := mat.NewVecDense(1, []float64{e.discount})
	return environment.NewSpec(shape, environment.Discount, bound, bound, environment.Continuous)
}

// RewardSpec returns the reward bounds implied by §4.8: the worst case
// is the destroyed penalty plus one step's shaping penalties, the best
// case is the explore step that pays both a visit bonus and the
// success bonus, plus that step's shaping.
func (e *Environment) RewardSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	lower := mat.NewVecDense(1, []float64{constants.Reward.DestroyedPenalty - 1})
	upper := mat.NewVecDense(1, []float64{constants.Reward.ExploreVisitBonus + constants.Reward.ExploreSuccess + 1})
	return environment.NewSpec(shape, environment.Reward, lower, upper, environment.Continuous)
}

var _ environment.Environment = (*Environment)(nil)
