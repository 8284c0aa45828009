// Package control implements the Rocket Controller (§4.6): translating
// semantic commands into rocket-model mutations. It is the exclusive
// writer of thruster power (§5); the Sync Manager and Thruster Physics
// packages only read it. It does not write the lift-off grace timer:
// thrusterphysics' lift-off routine sets it and Rocket.Reset clears it.
package control

import (
	"math"

	"github.com/aurorafield/rocketsim/internal/constants"
	"github.com/aurorafield/rocketsim/internal/eventbus"
	"github.com/aurorafield/rocketsim/internal/rocketmodel"
	"github.com/aurorafield/rocketsim/internal/simerr"
	"github.com/aurorafield/rocketsim/utils/floatutils"
)

// Controller mediates every inbound command against the rocket model.
type Controller struct {
	rocket   *rocketmodel.Rocket
	bus      *eventbus.Bus
	reporter *simerr.Reporter

	assistedControls bool
	paused           bool
}

// New returns a Controller driving r, logging ContractViolations via
// reporter. bus is stored on the Controller; no method publishes on it.
func New(r *rocketmodel.Rocket, bus *eventbus.Bus, reporter *simerr.Reporter) *Controller {
	return &Controller{rocket: r, bus: bus, reporter: reporter, assistedControls: true}
}

// SetThrusterPower clamps power to [0, maxPower] and writes it, unless
// the rocket is Destroyed (§4.6). An out-of-range value is a
// ContractViolation (§7): clamped silently, not rejected.
func (c *Controller) SetThrusterPower(id constants.ThrusterID, power float64) {
	if c.rocket.IsDestroyed() {
		return
	}
	t, ok := c.rocket.Thrusters[id]
	if !ok {
		return
	}
	clamped := floatutils.Clip(power, 0, t.MaxPower)
	if clamped != power {
		c.reporter.Once("thruster-power-range:"+string(id), "control: power out of range for thruster %s, clamping", id)
	}
	t.Power = clamped
}

// RotateCommand maps value ∈ [−1, 1] to simultaneous left/right
// thruster power proportional to |value| (§4.6): a positive value
// powers one side, negative the other, and a near-zero value releases
// both.
func (c *Controller) RotateCommand(value float64) {
	value = floatutils.Clip(value, -1, 1)

	const deadZone = 0.02
	if math.Abs(value) < deadZone {
		c.SetThrusterPower(constants.Left, 0)
		c.SetThrusterPower(constants.Right, 0)
		return
	}

	magnitude := math.Abs(value) * c.rocket.Thrusters[constants.Left].MaxPower
	if value > 0 {
		c.SetThrusterPower(constants.Right, magnitude)
		c.SetThrusterPower(constants.Left, 0)
	} else {
		c.SetThrusterPower(constants.Left, magnitude)
		c.SetThrusterPower(constants.Right, 0)
	}
}

// ToggleAssistedControls flips the rotation-stability assist flag
// reported by AssistedControls. The Physics Controller keeps its own
// flag, set through its SetAssistedControls.
func (c *Controller) ToggleAssistedControls() {
	c.assistedControls = !c.assistedControls
}

// AssistedControls reports the current assist flag.
func (c *Controller) AssistedControls() bool { return c.assistedControls }

// TogglePause flips the paused flag reported by Paused. The flag is
// not connected to the Physics Controller's own Pause/Resume gate.
func (c *Controller) TogglePause() {
	c.paused = !c.paused
}

// Paused reports whether GAME.TOGGLE_PAUSE has left the controller
// paused.
func (c *Controller) Paused() bool { return c.paused }

// ResumeIfPaused implements GAME.RESUME_IF_PAUSED (§6): clears the
// pause flag unconditionally, a no-op if not paused.
func (c *Controller) ResumeIfPaused() {
	c.paused = false
}

// Reset restores the rocket to its configured spawn (§4.6 ResetRocket:
// fuel and health to max, Destroyed cleared, pose to spawn).
func (c *Controller) Reset() {
	c.rocket.Reset()
}
