package orchestrator

import (
	"slices"

	"github.com/mcdev12/auctionroom/go/internal/auction/events"
	"github.com/mcdev12/auctionroom/go/internal/models"
)

// startCountdown (re)starts the bid window for the player on the block.
// The countdown task is keyed, so a restart replaces the running one.
func (r *Room) startCountdown() {
	r.remaining = r.timing.CountdownTicks
	index := r.index
	r.exec.Schedule(keyCountdown, r.timing.Tick, func() { r.tick(index) })
}

func (r *Room) tick(index int) {
	if r.phase != models.AuctionPhaseItemOnBlock || index != r.index {
		return
	}
	r.remaining--
	remaining := r.remaining
	r.broadcast(events.TypeAuctionUpdate, events.AuctionUpdatePayload{SecondsRemaining: &remaining})

	if remaining <= 0 {
		r.settle(index)
		return
	}
	if r.pool[index].Tier.Competitive() && slices.Contains(r.timing.AICheckpoints, remaining) {
		r.exec.Schedule(keyCheckpoint, r.timing.AICheckpointDelay, func() { r.triggerAI(index) })
	}
	r.exec.Schedule(keyCountdown, r.timing.Tick, func() { r.tick(index) })
}
