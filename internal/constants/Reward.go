package constants

// Reward holds the shared shaping and per-objective reward constants
// of §4.8.
var Reward = struct {
	StepPenalty        float64
	FuelPenaltyPerUnit float64
	DestroyedPenalty   float64

	// Orbit objective.
	OrbitMinAlt      float64
	OrbitMaxAlt      float64
	OrbitMinSafeAlt  float64
	OrbitMinV        float64
	OrbitMaxV        float64
	OrbitZoneBonus   float64
	OrbitSpeedBonus  float64
	OrbitSuccess     float64
	OrbitStabilitySteps int
	OrbitTooCloseP   float64
	OrbitTooFarP     float64

	// Landing objective: altitude bands, monotone in proximity, plus
	// a slow-approach bonus and the one-shot success reward.
	LandingBand1000     float64
	LandingBand500      float64
	LandingBand100      float64
	LandingSlowApproach float64
	LandingSlowSpeed    float64
	LandingSuccess      float64
	MaxLandingSpeed     float64

	// Explore objective.
	ExploreMoveBonus   float64
	ExploreMoveMinV    float64
	ExploreMoveMaxV    float64
	ExploreVisitBonus  float64
	ExploreSuccess     float64
	ExploreTargetCount int
}{
	StepPenalty:        -0.01,
	FuelPenaltyPerUnit: -0.005,
	DestroyedPenalty:   -100,

	OrbitMinAlt:         400,
	OrbitMaxAlt:         700,
	OrbitMinSafeAlt:     150,
	OrbitMinV:           100,
	OrbitMaxV:           160,
	OrbitZoneBonus:      0.5,
	OrbitSpeedBonus:     0.5,
	OrbitSuccess:        100,
	OrbitStabilitySteps: 180,
	OrbitTooCloseP:      -0.5,
	OrbitTooFarP:        -0.3,

	LandingBand1000:     0.05,
	LandingBand500:      0.1,
	LandingBand100:      0.2,
	LandingSlowApproach: 0.1,
	LandingSlowSpeed:    10,
	LandingSuccess:      100,
	MaxLandingSpeed:     30,

	ExploreMoveBonus:   0.02,
	ExploreMoveMinV:    20,
	ExploreMoveMaxV:    200,
	ExploreVisitBonus:  10,
	ExploreSuccess:     100,
	ExploreTargetCount: 2,
}
