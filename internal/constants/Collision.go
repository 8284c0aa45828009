package constants

// Collision holds the restitution/damping constants applied to a
// contact that is neither a landing nor a crash (§4.5).
var Collision = struct {
	Restitution float64
	Damping     float64
}{
	Restitution: 0.25,
	Damping:     0.6,
}
