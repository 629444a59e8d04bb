package orchestrator

import (
	"fmt"

	"github.com/mcdev12/auctionroom/go/internal/auction/events"
	"github.com/mcdev12/auctionroom/go/internal/auction/rules"
	"github.com/mcdev12/auctionroom/go/internal/auction/summary"
	"github.com/mcdev12/auctionroom/go/internal/auction/valuation"
	"github.com/mcdev12/auctionroom/go/internal/models"
)

// advance puts the next player on the block, or concludes the auction when
// the pool is exhausted.
func (r *Room) advance() {
	if r.status != models.AuctionStatusRunning {
		return
	}
	r.index++
	if r.index >= len(r.pool) {
		r.conclude()
		return
	}

	p := &r.pool[r.index]
	r.phase = models.AuctionPhaseItemOnBlock
	r.currentBid = p.BasePrice
	r.currentBidder = NoBidder
	r.bidCount = 0
	r.declined = make(map[string]bool)
	r.passed = nil
	for _, code := range r.teamOrder {
		r.ai[code] = &aiState{allowance: valuation.AttemptAllowance(p.Tier), active: true}
	}

	r.log.Debug().Int("item", r.index).Str("player", p.Name).Str("tier", string(p.Tier)).Msg("player on the block")
	r.broadcast(events.TypeItemPresented, *p)
	bid, bidder := r.currentBid, r.currentBidder
	r.broadcast(events.TypeAuctionUpdate, events.AuctionUpdatePayload{CurrentBid: &bid, CurrentBidder: &bidder})

	r.startCountdown()
	r.scheduleWaves(p)
}

// acceptBid applies a bid for the player on the block. Any rejection leaves
// the room untouched.
func (r *Room) acceptBid(teamCode string, amount int) error {
	if r.phase != models.AuctionPhaseItemOnBlock {
		return fmt.Errorf("%w: no player on the block", ErrIneligible)
	}
	team, ok := r.teams[teamCode]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownFranchise, teamCode)
	}
	if r.declined[teamCode] {
		return fmt.Errorf("%w: %s declined this player", ErrIneligible, teamCode)
	}
	if r.currentBidder == teamCode {
		return fmt.Errorf("%w: %s already holds the bid", ErrIneligible, teamCode)
	}
	p := &r.pool[r.index]
	if err := r.league.CheckEligibility(team, p, r.currentBid); err != nil {
		return err
	}
	if next := rules.NextBid(r.currentBid); amount != next {
		return fmt.Errorf("%w: got %d, want %d", ErrBadIncrement, amount, next)
	}

	r.currentBid = amount
	r.currentBidder = teamCode
	r.bidCount++

	r.log.Debug().Str("team_code", teamCode).Int("amount", amount).Int("item", r.index).Msg("bid accepted")
	remaining := r.timing.CountdownTicks
	r.broadcast(events.TypeAuctionUpdate, events.AuctionUpdatePayload{
		CurrentBid:       &amount,
		CurrentBidder:    &teamCode,
		SecondsRemaining: &remaining,
		Message:          fmt.Sprintf("%s bids %s for %s", team.DisplayName, models.FormatCrore(amount), p.Name),
	})
	r.startCountdown()
	return nil
}

// decline is idempotent; the franchise sits out the rest of this player.
func (r *Room) decline(teamCode string) error {
	if r.phase != models.AuctionPhaseItemOnBlock {
		return fmt.Errorf("%w: no player on the block", ErrIneligible)
	}
	if _, ok := r.teams[teamCode]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownFranchise, teamCode)
	}
	if r.declined[teamCode] {
		return nil
	}
	r.declined[teamCode] = true
	r.passed = append(r.passed, teamCode)
	return nil
}

// settle closes the bid window for the player at index. It runs at most
// once per player.
func (r *Room) settle(index int) {
	if r.phase != models.AuctionPhaseItemOnBlock || index != r.index {
		return
	}
	p := &r.pool[index]
	if p.Settled() {
		return
	}
	r.exec.Cancel(keyCountdown)
	r.exec.Cancel(keyCheckpoint)
	r.remaining = -1
	r.phase = models.AuctionPhaseSettling

	if r.currentBidder == NoBidder {
		p.Status = models.SaleStatusUnsold
		r.log.Debug().Str("player", p.Name).Msg("player unsold")
		r.broadcast(events.TypeItemSettled, events.ItemSettledPayload{
			PlayerName: p.Name,
			Team:       "Unsold",
			Player:     *p,
		})
	} else {
		team := r.teams[r.currentBidder]
		p.Status = models.SaleStatusSold
		p.SoldTo = team.Code
		p.FinalPrice = r.currentBid
		team.Purse -= r.currentBid
		team.Squad = append(team.Squad, models.RosterEntry{
			Player:     *p,
			FinalPrice: r.currentBid,
			AcquiredAt: r.exec.Now(),
		})
		r.log.Info().Str("player", p.Name).Str("team_code", team.Code).Int("amount", r.currentBid).Msg("player sold")
		r.broadcast(events.TypeItemSettled, events.ItemSettledPayload{
			PlayerName: p.Name,
			Team:       team.DisplayName,
			TeamCode:   team.Code,
			FinalPrice: r.currentBid,
			Player:     *p,
		})
	}

	r.broadcast(events.TypeAuctionUpdate, events.AuctionUpdatePayload{Teams: r.teams})
	r.exec.Schedule(keyAdvance, r.timing.SettlementDelay, r.advance)
}

// conclude ends the auction. Every pending task is dropped and later bids
// or declines are ignored.
func (r *Room) conclude() {
	if r.status == models.AuctionStatusConcluded {
		return
	}
	r.exec.CancelAll()
	r.status = models.AuctionStatusConcluded
	r.phase = models.AuctionPhaseConcluded
	r.currentBidder = NoBidder
	r.remaining = -1

	r.infoMu.Lock()
	r.info.ConcludedAt = r.exec.Now()
	r.infoMu.Unlock()

	r.log.Info().Int("pool_size", len(r.pool)).Msg("auction concluded")
	r.broadcast(events.TypeSessionConcluded, events.SessionConcludedPayload{RoomCode: r.code})
	r.touch()
}

// state builds the auction picture. Detached copies are safe to hand to
// other goroutines.
func (r *Room) state(detached bool) events.RoomState {
	s := events.RoomState{
		Status:             r.status,
		Phase:              r.phase,
		Teams:              r.teams,
		PlayerPool:         r.pool,
		CurrentPlayerIndex: r.index,
		CurrentBid:         r.currentBid,
		CurrentBidder:      r.currentBidder,
		IsAuctionRunning:   r.status == models.AuctionStatusRunning,
		PassedTeams:        append([]string{}, r.passed...),
		Participants:       make(map[string]models.Faction, len(r.participants)),
	}
	for id, f := range r.participants {
		s.Participants[id] = f
	}
	if r.remaining >= 0 {
		remaining := r.remaining
		s.SecondsRemaining = &remaining
	}
	if detached {
		s.PlayerPool = append([]models.Player{}, r.pool...)
		s.Teams = make(map[string]*models.Franchise, len(r.teams))
		for code, t := range r.teams {
			c := *t
			c.Squad = append([]models.RosterEntry{}, t.Squad...)
			s.Teams[code] = &c
		}
	}
	return s
}

func (r *Room) reports() map[string]summary.Report {
	out := make(map[string]summary.Report, len(r.teams))
	for code, t := range r.teams {
		out[code] = summary.Analyze(t.Squad, r.league.HomeCountry)
	}
	return out
}
