package headless

import (
	"github.com/aurorafield/rocketsim/internal/constants"
)

// computeReward evaluates the shared shaping plus the active
// objective's reward for the tick just completed (§4.8). One-shot
// bonuses latch per episode via e.missionRewarded/e.exploreRewarded so
// they are never paid twice.
func (e *Environment) computeReward() float64 {
	reward := e.sharedShaping()

	if e.rocket.IsDestroyed() {
		return reward + constants.Reward.DestroyedPenalty
	}

	if !e.hasMission {
		return reward
	}

	switch e.objective {
	case "orbit":
		reward += e.orbitReward()
	case "explore":
		reward += e.exploreReward()
	default: // "land"
		reward += e.landingReward()
	}

	return reward
}

// sharedShaping is the §4.8 per-step penalty common to every
// objective: a flat step cost plus a fuel-usage penalty proportional
// to total thruster draw.
func (e *Environment) sharedShaping() float64 {
	usage := 0.0
	for _, t := range e.rocket.Thrusters {
		usage += t.Ratio()
	}
	return constants.Reward.StepPenalty + constants.Reward.FuelPenaltyPerUnit*usage
}

// orbitReward implements §4.8's orbit objective against e.mission.To.
func (e *Environment) orbitReward() float64 {
	target := e.universe.FindByName(e.mission.To)
	if target == nil {
		e.stabilityCounter = 0
		return 0
	}

	r := e.rocket.Position.Distance(target.Position)
	alt := r - target.Radius
	v := e.rocket.Velocity.Sub(target.Velocity).Length()

	reward := 0.0

	inZone := alt >= constants.Reward.OrbitMinAlt && alt <= constants.Reward.OrbitMaxAlt
	inSpeed := v >= constants.Reward.OrbitMinV && v <= constants.Reward.OrbitMaxV

	if inZone {
		reward += constants.Reward.OrbitZoneBonus
		if inSpeed {
			reward += constants.Reward.OrbitSpeedBonus
		}
	}

	if inZone && inSpeed {
		e.stabilityCounter++
		if e.stabilityCounter == constants.Reward.OrbitStabilitySteps {
			reward += constants.Reward.OrbitSuccess
		}
	} else {
		e.stabilityCounter = 0
	}

	if alt < constants.Reward.OrbitMinSafeAlt {
		reward += constants.Reward.OrbitTooCloseP
	} else if alt > 1.5*constants.Reward.OrbitMaxAlt {
		reward += constants.Reward.OrbitTooFarP
	}

	return reward
}

// landingReward implements §4.8's landing objective against
// e.mission.To: monotone proximity shaping plus a latched one-shot
// success bonus.
func (e *Environment) landingReward() float64 {
	target := e.universe.FindByName(e.mission.To)
	if target == nil {
		return 0
	}

	alt := e.rocket.Position.Distance(target.Position) - target.Radius
	speed := e.rocket.Velocity.Sub(target.Velocity).Length()

	reward := 0.0
	switch {
	case alt <= 100:
		reward += constants.Reward.LandingBand100
	case alt <= 500:
		reward += constants.Reward.LandingBand500
	case alt <= 1000:
		reward += constants.Reward.LandingBand1000
	}

	if alt <= 100 && speed < constants.Reward.LandingSlowSpeed {
		reward += constants.Reward.LandingSlowApproach
	}

	if !e.missionRewarded && e.rocket.IsLanded() &&
		e.rocket.Surface.BodyName == e.mission.To &&
		speed <= constants.Reward.MaxLandingSpeed {
		reward += constants.Reward.LandingSuccess
		e.missionRewarded = true
	}

	return reward
}

// exploreReward implements §4.8's explore objective: movement shaping
// plus a per-newly-visited-body bonus and a success bonus once the
// visited set reaches the target count (§8 scenario 6: visiting is
// landing on a body).
func (e *Environment) exploreReward() float64 {
	reward := 0.0

	speed := e.rocket.Velocity.Length()
	if speed >= constants.Reward.ExploreMoveMinV && speed <= constants.Reward.ExploreMoveMaxV {
		reward += constants.Reward.ExploreMoveBonus
	}

	if e.rocket.IsLanded() && !e.visited[e.rocket.Surface.BodyName] {
		e.visited[e.rocket.Surface.BodyName] = true
		reward += constants.Reward.ExploreVisitBonus

		if !e.exploreRewarded && len(e.visited) >= constants.Reward.ExploreTargetCount {
			reward += constants.Reward.ExploreSuccess
			e.exploreRewarded = true
		}
	}

	return reward
}
