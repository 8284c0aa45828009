// Package physics implements the Physics Controller (§4.1): the
// fixed-step loop wiring the universe, rocket model, thruster physics,
// collision handling, and synchronization manager around a single
// box2d world.
package physics

import (
	"time"

	"github.com/ByteArena/box2d"

	"github.com/aurorafield/rocketsim/internal/bodyfactory"
	"github.com/aurorafield/rocketsim/internal/collision"
	"github.com/aurorafield/rocketsim/internal/constants"
	"github.com/aurorafield/rocketsim/internal/eventbus"
	"github.com/aurorafield/rocketsim/internal/rocketmodel"
	"github.com/aurorafield/rocketsim/internal/simerr"
	"github.com/aurorafield/rocketsim/internal/syncmgr"
	"github.com/aurorafield/rocketsim/internal/thrusterphysics"
	"github.com/aurorafield/rocketsim/internal/universe"
	"github.com/aurorafield/rocketsim/internal/vec2"
)

// StepDiagnostics is the per-tick telemetry exposed for the
// SimulationSnapshot's vector annotations (§3).
type StepDiagnostics struct {
	Gravity     vec2.Vec2
	TotalThrust vec2.Vec2

	LiftoffTriggered bool
	LiftedOffFrom    string

	Contacts []collision.Result
}

// Controller owns the box2d world and every per-tick wiring between
// the model packages (§4.1). Not safe for concurrent use: the kernel
// is single-threaded cooperative (§5).
type Controller struct {
	world      box2d.B2World
	rocketBody *box2d.B2Body
	bodies     map[string]*box2d.B2Body

	universe *universe.Universe
	rocket   *rocketmodel.Rocket

	listener *collision.Listener
	sync     *syncmgr.Manager
	bus      *eventbus.Bus
	reporter *simerr.Reporter

	simTime time.Duration
	paused  bool
	stopped bool

	initialized     bool
	sinceInit       time.Duration
	skipSurfaceOnce bool

	// forcesEnabled gates thruster force application, toggled by
	// PHYSICS.TOGGLE_FORCES (§6) — a diagnostic/debug knob, not a
	// gameplay state.
	forcesEnabled bool

	// assistedControls gates rotation stabilization (§4.1 step 3). It is
	// set only through SetAssistedControls and starts disabled; it is not
	// kept in step with the Rocket Controller's own flag.
	assistedControls bool
	lateralActive    bool
}

// New returns an uninitialized Controller; call InitWorld before the
// first Step.
func New(bus *eventbus.Bus, reporter *simerr.Reporter) *Controller {
	return &Controller{
		bodies:        make(map[string]*box2d.B2Body),
		bus:           bus,
		reporter:      reporter,
		sync:          syncmgr.New(reporter),
		listener:      collision.NewListener(),
		forcesEnabled: true,
	}
}

// InitWorld builds the solver bodies for u and r and disables
// collisions for constants.Physics.CollisionDelay to avoid a
// spawn-penetration penalty (§4.1 contract).
func (c *Controller) InitWorld(u *universe.Universe, r *rocketmodel.Rocket) {
	c.universe = u
	c.rocket = r

	c.world = bodyfactory.NewWorld()
	c.world.SetContactListener(c.listener)

	c.bodies = make(map[string]*box2d.B2Body, len(u.Bodies()))
	for _, b := range u.Bodies() {
		c.bodies[b.Name] = bodyfactory.BuildCelestial(&c.world, b)
	}
	c.rocketBody = bodyfactory.BuildRocket(&c.world, r)

	c.listener.SetEnabled(false)
	c.sinceInit = 0
	c.simTime = 0
	c.initialized = true
	c.paused = false
	c.stopped = false
}

// SetAssistedControls toggles the rotation-stability assist read by
// step 3 (§4.1, §4.6).
func (c *Controller) SetAssistedControls(enabled bool) {
	c.assistedControls = enabled
}

// SetLateralActive reports whether a lateral thruster fired this tick,
// which suppresses rotation stabilization even in assisted mode.
func (c *Controller) SetLateralActive(active bool) {
	c.lateralActive = active
}

// SetForcesEnabled implements PHYSICS.TOGGLE_FORCES (§6): while
// disabled, thruster forces are computed for diagnostics but never
// applied to the solver.
func (c *Controller) SetForcesEnabled(enabled bool) {
	c.forcesEnabled = enabled
}

// Pause sets the boolean gate making Step a no-op (§4.1, §5).
func (c *Controller) Pause() { c.paused = true }

// Resume clears the pause gate. Per §5, the caller is responsible for
// freshening its own wall-clock `lastTimestamp` so the next Step's dt
// does not include the paused interval.
func (c *Controller) Resume() { c.paused = false }

// Stop halts the controller permanently; Step becomes a no-op until
// InitWorld is called again.
func (c *Controller) Stop() { c.stopped = true }

// Paused reports the current pause state.
func (c *Controller) Paused() bool { return c.paused }

// SimTime returns the controller's monotone simulated-time clock, used
// by the lift-off grace timer and the periodic landed-check cadence.
func (c *Controller) SimTime() time.Duration { return c.simTime }

// Step advances the simulation by one fixed tick, clamped to
// constants.Physics.MaxDt, implementing the nine ordered phases of
// §4.1. It is a no-op if not initialized, paused, or stopped (§7
// NotReady / §5 pause contract).
func (c *Controller) Step(dt float64) StepDiagnostics {
	var diag StepDiagnostics
	if !c.initialized || c.stopped {
		c.reporter.Once("not-ready", "physics: Step called before InitWorld or after Stop")
		return diag
	}
	if c.paused {
		return diag
	}

	if dt > constants.Physics.MaxDt {
		dt = constants.Physics.MaxDt
	}
	if dt < 0 {
		dt = 0
	}
	stepDuration := time.Duration(dt * float64(time.Second))
	c.simTime += stepDuration
	c.sinceInit += stepDuration

	if c.sinceInit >= constants.Physics.CollisionDelay {
		c.listener.SetEnabled(true)
	}

	// 1. Universe advance.
	c.universe.Advance(dt)
	for _, b := range c.universe.Bodies() {
		bodyfactory.SyncCelestial(c.bodies[b.Name], b)
	}

	// 2. Surface constraint pre-step, skipped for one tick after a
	// lift-off detection (§4.1 step 2, §4.4).
	if !c.skipSurfaceOnce {
		c.sync.PreStepSurfaceConstraint(c.universe, c.rocket, c.rocketBody)
	}
	c.skipSurfaceOnce = false

	// 3. Rotation stabilization.
	c.sync.RotationStabilize(c.rocket, c.rocketBody, c.assistedControls, c.lateralActive)

	// 4. Thruster application.
	if c.forcesEnabled {
		result := thrusterphysics.Apply(c.rocketBody, c.rocket, c.simTime)
		diag.TotalThrust = result.TotalForce
		diag.LiftoffTriggered = result.LiftoffTriggered
		diag.LiftedOffFrom = result.LiftedOffFrom
		if result.LiftoffTriggered {
			// §6 has no dedicated lift-off channel; the transition is
			// visible in the next SIMULATION.UPDATED snapshot's
			// surface-state field.
			c.skipSurfaceOnce = true
		}
		c.rocket.BurnFuel(dt)
	}

	// 5. Solver integrate, with manual per-body inverse-square gravity
	// applied to the rocket only (§4.2; box2d's own gravity is zero,
	// see bodyfactory.NewWorld).
	gravity := c.universe.GravityAt(c.rocket.Position)
	diag.Gravity = gravity
	if !c.rocket.IsDestroyed() {
		force := gravity.Scale(c.rocket.Mass)
		c.rocketBody.ApplyForceToCenter(box2d.MakeB2Vec2(force.X, force.Y), true)
	}
	c.world.Step(dt*constants.Physics.TimeScale,
		constants.Physics.VelocityIterations, constants.Physics.PositionIterations)

	// 6. Contact handling.
	contacts := c.listener.Drain()
	diag.Contacts = collision.Handle(c.universe, c.rocket, c.rocketBody, contacts)
	c.emitContactEvents(diag.Contacts)

	// 7. Post-step sync.
	c.sync.PostStepSync(c.rocket, c.rocketBody)

	// 8. Periodic landed re-check.
	c.sync.Tick(stepDuration, c.universe, c.rocket, c.rocketBody, c.simTime)

	// 9. Gravity diagnostics already captured in diag.Gravity above.

	if c.bus != nil {
		c.bus.Publish(eventbus.Event{Kind: eventbus.SimulationUpdated})
	}

	return diag
}

func (c *Controller) emitContactEvents(results []collision.Result) {
	if c.bus == nil {
		return
	}
	for _, r := range results {
		switch r.Outcome {
		case collision.Landed:
			c.bus.Publish(eventbus.Event{
				Kind:    eventbus.RocketLanded,
				Payload: eventbus.LandedPayload{Body: r.BodyName},
			})
		case collision.Crashed:
			c.bus.Publish(eventbus.Event{
				Kind:    eventbus.RocketDestroyed,
				Payload: eventbus.DestroyedPayload{X: r.Position.X, Y: r.Position.Y},
			})
		case collision.Bounce:
		}
	}
}
