package valuation

import (
	"github.com/mcdev12/auctionroom/go/internal/auction/rules"
	"github.com/mcdev12/auctionroom/go/internal/models"
)

// BidProbability is the chance an automated franchise takes an interest in
// the player during one bidding wave.
func BidProbability(p *models.Player, f *models.Franchise, league rules.League) float64 {
	prob := 0.5
	switch p.Tier {
	case models.TierElite:
		prob = 0.95
	case models.TierOne:
		prob = 0.85
	case models.TierTwo:
		prob = 0.70
	case models.TierUncapped:
		prob = 0.60
	}

	switch f.Personality {
	case models.PersonalityStarHunter, models.PersonalityAggressive:
		if p.Tier.Competitive() {
			prob = min(1.0, prob+0.15)
		}
	case models.PersonalityScout:
		if p.Tier == models.TierUncapped || p.Age < 25 {
			prob += 0.20
		}
	case models.PersonalityValueFocused:
		prob *= 0.8
	}

	if f.RoleCount(p.Role) < league.Need(p.Role) {
		prob += 0.25
	}
	return min(1.0, prob)
}

// AttemptAllowance is the per-player attempt budget granted when a player
// comes on the block.
func AttemptAllowance(tier models.Tier) int {
	if tier == models.TierElite {
		return 5
	}
	return 3
}

// AttemptCap is how many bids a franchise of the given personality keeps
// making on one player before it stops chasing.
func AttemptCap(tier models.Tier, personality models.Personality) int {
	switch tier {
	case models.TierElite:
		if personality == models.PersonalityStarHunter || personality == models.PersonalityAggressive {
			return 5
		}
		return 3
	case models.TierOne:
		return 3
	default:
		return 2
	}
}

// OvershootAllowed reports whether an elite-player bid may go up to 10%
// past the ceiling. roll is a uniform draw; bidCount is the bids so far on
// the player.
func OvershootAllowed(p *models.Player, bidCount int, next, ceiling int, roll float64) bool {
	if p.Tier != models.TierElite || bidCount >= 8 {
		return false
	}
	return roll < 0.3 && float64(next) <= float64(ceiling)*1.1
}
