package constants

// ThrusterID identifies one of the rocket's four fixed thrusters (§3).
type ThrusterID string

const (
	Main  ThrusterID = "main"
	Rear  ThrusterID = "rear"
	Left  ThrusterID = "left"
	Right ThrusterID = "right"
)

// AllThrusters enumerates every thruster identifier, in a stable order
// used whenever the kernel must iterate deterministically (fuel burn
// summation, observation assembly).
var AllThrusters = []ThrusterID{Main, Rear, Left, Right}

// Offset is the constant lever-arm geometry of a thruster relative to
// the rocket's center of mass, in the rocket's local frame (§3).
type Offset struct {
	Distance float64
	Angle    float64
}

// GlobalThrustMultiplier scales every thruster's force uniformly
// (§4.3).
var GlobalThrustMultiplier = 1.0

// BaseThrust is the per-thruster base force magnitude at full power
// (§4.3).
var BaseThrust = map[ThrusterID]float64{
	Main:  28.0,
	Rear:  10.0,
	Left:  6.0,
	Right: 6.0,
}

// Effectiveness scales each thruster's base thrust, modelling
// real-world inefficiencies (nozzle losses, asymmetric mounting).
var Effectiveness = map[ThrusterID]float64{
	Main:  1.0,
	Rear:  0.9,
	Left:  0.85,
	Right: 0.85,
}

// Consumption is the per-thruster fuel burn rate at full power, in
// fuel units per second (§4.3).
var Consumption = map[ThrusterID]float64{
	Main:  6.0,
	Rear:  2.5,
	Left:  1.5,
	Right: 1.5,
}

// MaxPower is the default maximum power setting for each thruster
// (§3's `maxPower`).
var MaxPower = map[ThrusterID]float64{
	Main:  1.0,
	Rear:  1.0,
	Left:  1.0,
	Right: 1.0,
}

// ThrusterOffsets places each thruster at a fixed point on the rocket
// hull, in the rocket's local frame, (distance from center, angle from
// the rocket's nose axis).
var ThrusterOffsets = map[ThrusterID]Offset{
	Main:  {Distance: Rocket.Height / 2, Angle: -1.5707963267948966}, // -π/2, pointing down from the tail
	Rear:  {Distance: Rocket.Height / 2, Angle: 1.5707963267948966},  // +π/2, pointing up from the nose
	Left:  {Distance: Rocket.Width / 2, Angle: 3.141592653589793},    // π, mounted on the left hull
	Right: {Distance: Rocket.Width / 2, Angle: 0},                    // mounted on the right hull
}
