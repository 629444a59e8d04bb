package orchestrator

import (
	"fmt"
	"time"

	"github.com/mcdev12/auctionroom/go/internal/auction/rules"
	"github.com/mcdev12/auctionroom/go/internal/auction/valuation"
	"github.com/mcdev12/auctionroom/go/internal/models"
)

// scheduleWaves queues the AI bidding waves for a freshly presented player.
func (r *Room) scheduleWaves(p *models.Player) {
	waves := r.timing.AIWaves
	if p.Tier.Competitive() {
		waves = append(append([]time.Duration{}, waves...), r.timing.CompetitiveWaves...)
	}
	index := r.index
	for i, d := range waves {
		r.exec.Schedule(fmt.Sprintf("ai-wave-%d", i), d, func() { r.triggerAI(index) })
	}
}

// triggerAI gives every automated franchise still in the running one chance
// to take an interest in the player at index.
func (r *Room) triggerAI(index int) {
	if r.phase != models.AuctionPhaseItemOnBlock || index != r.index {
		return
	}
	p := &r.pool[index]

	var candidates []string
	for _, code := range r.teamOrder {
		st := r.ai[code]
		if r.humans[code] || code == r.currentBidder || r.declined[code] || st == nil || !st.active {
			continue
		}
		candidates = append(candidates, code)
	}
	r.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for i, code := range candidates {
		team := r.teams[code]
		st := r.ai[code]
		prob := valuation.BidProbability(p, team, r.league)
		limit := min(st.allowance, valuation.AttemptCap(p.Tier, team.Personality))
		if r.rng.Float64() >= prob || st.attempts >= limit {
			continue
		}
		delay := time.Duration(i)*r.timing.AIStagger +
			time.Duration(r.rng.Float64()*float64(r.timing.AIJitter)) +
			r.timing.AIMinDelay
		// One pending decision per franchise: a later wave replaces an
		// earlier one that has not fired yet.
		r.exec.Schedule("ai-"+code, delay, func() { r.aiDecide(index, code) })
	}
}

// aiDecide re-validates an automated franchise against the live state and
// bids the next increment if it is worth it.
func (r *Room) aiDecide(index int, code string) {
	if r.phase != models.AuctionPhaseItemOnBlock || index != r.index {
		return
	}
	st := r.ai[code]
	if st == nil || !st.active || code == r.currentBidder || r.declined[code] {
		return
	}
	team := r.teams[code]
	p := &r.pool[index]

	// Roster, overseas or purse trouble ends interest until the next player
	if err := r.league.CheckEligibility(team, p, r.currentBid); err != nil {
		st.active = false
		r.log.Debug().Err(err).Str("team_code", code).Msg("ai franchise drops out")
		return
	}

	next := rules.NextBid(r.currentBid)
	ceiling := valuation.Ceiling(valuation.Input{
		Player:    p,
		Franchise: team,
		League:    r.league,
		ItemIndex: index,
		PoolSize:  len(r.pool),
	}, valuation.Draws{Jitter: r.rng.Float64(), Whim: r.rng.Float64()})

	if next > ceiling && !valuation.OvershootAllowed(p, r.bidCount, next, ceiling, r.rng.Float64()) {
		return
	}
	st.attempts++
	if err := r.acceptBid(code, next); err != nil {
		r.log.Debug().Err(err).Str("team_code", code).Msg("ai bid rejected")
	}
}
