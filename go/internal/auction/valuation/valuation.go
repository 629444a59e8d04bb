// Package valuation prices players for automated franchises.
//
// Every function here is pure: randomness comes in through Draws so the same
// inputs always produce the same ceiling.
package valuation

import (
	"math"

	"github.com/mcdev12/auctionroom/go/internal/auction/rules"
	"github.com/mcdev12/auctionroom/go/internal/models"
)

// phaseWindow is how many players at each end of the pool count as early or late.
const phaseWindow = 20

// Input is everything the model looks at for one franchise and one player.
type Input struct {
	Player    *models.Player
	Franchise *models.Franchise
	League    rules.League
	// Position of the player in the pool and the pool size
	ItemIndex int
	PoolSize  int
}

// Draws are uniform samples in [0,1) supplied by the caller.
type Draws struct {
	Jitter float64
	Whim   float64
}

// Ceiling returns the most the franchise will pay for the player, rounded
// to the nearest 5.
func Ceiling(in Input, d Draws) int {
	value := TierBase(in.Player) *
		AttributeBonus(in.Player) *
		NeedFactor(in) *
		PersonalityModifier(in, d.Whim) *
		PhaseModifier(in.ItemIndex, in.PoolSize) *
		BudgetModifier(in.Franchise, in.League.RosterCap) *
		Jitter(in.Player.Tier, d.Jitter)

	return int(math.Round(value/5) * 5)
}

// TierBase scales the base price by rarity.
func TierBase(p *models.Player) float64 {
	base := float64(p.BasePrice)
	switch p.Tier {
	case models.TierElite:
		return base * 12
	case models.TierOne:
		return base * 8
	case models.TierTwo:
		return base * 4
	case models.TierUncapped:
		return base * 3
	default:
		return base * 2.5
	}
}

// AttributeBonus rewards captains and youth and discounts veterans.
func AttributeBonus(p *models.Player) float64 {
	bonus := 1.0
	if p.IsCaptain {
		bonus += 0.3
	}
	if p.Age < 25 {
		bonus += 0.2
	}
	if p.Age > 35 {
		bonus -= 0.1
	}
	return bonus
}

// NeedFactor is high while the squad is short on the player's role and
// drops once the role is well stocked.
func NeedFactor(in Input) float64 {
	have := in.Franchise.RoleCount(in.Player.Role)
	need := in.League.Need(in.Player.Role)
	switch {
	case have < need:
		return 1.8 - float64(have)*0.2
	case have >= need+2:
		return 0.6
	default:
		return 0.9
	}
}

// PersonalityModifier applies the franchise's behavior profile. whim is only
// consulted by opportunistic franchises.
func PersonalityModifier(in Input, whim float64) float64 {
	p := in.Player
	elite := p.Tier == models.TierElite
	topTwo := p.Tier.Competitive()

	switch in.Franchise.Personality {
	case models.PersonalityStarHunter:
		if elite {
			return 1.5
		}
		if p.Tier == models.TierOne {
			return 1.3
		}
	case models.PersonalityAggressive:
		if topTwo {
			return 1.4
		}
	case models.PersonalityExperienced:
		if p.Age > 28 && topTwo {
			return 1.3
		}
	case models.PersonalityScout:
		if p.Tier == models.TierUncapped || p.Age < 25 {
			return 1.6
		}
		return 0.9
	case models.PersonalityValueFocused:
		if elite {
			return 0.9
		}
		return 0.85
	case models.PersonalityStrategic, models.PersonalityAnalytical:
		if in.Franchise.RoleCount(p.Role) < in.League.Need(p.Role) {
			return 1.2
		}
	case models.PersonalityOpportunistic:
		if whim < 0.3 {
			return 1.3
		}
	}
	return 1.0
}

// PhaseModifier bids up early in the pool and eases off near the end.
func PhaseModifier(index, poolSize int) float64 {
	switch {
	case index < phaseWindow:
		return 1.2
	case index > poolSize-phaseWindow:
		return 0.9
	default:
		return 1.0
	}
}

// BudgetModifier looks at purse per open roster slot.
func BudgetModifier(f *models.Franchise, rosterCap int) float64 {
	gaps := rosterCap - len(f.Squad)
	if gaps <= 0 {
		return 1.0
	}
	perSlot := float64(f.Purse) / float64(gaps)
	switch {
	case perSlot < 50:
		return 0.8
	case perSlot > 500:
		return 1.2
	default:
		return 1.0
	}
}

// Jitter maps a uniform draw to the noise band for the tier. Elite players
// get the narrower band.
func Jitter(tier models.Tier, u float64) float64 {
	if tier == models.TierElite {
		return 0.9 + u*0.2
	}
	return 0.85 + u*0.3
}
