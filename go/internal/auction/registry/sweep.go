package registry

import (
	"context"
	"time"

	"github.com/mcdev12/auctionroom/go/internal/auction/orchestrator"
	"github.com/mcdev12/auctionroom/go/internal/models"
)

// expired reports whether a room has outlived the retention policy at now.
func (r *Registry) expired(info orchestrator.Info, now time.Time) bool {
	switch info.Status {
	case models.AuctionStatusConcluded:
		return now.Sub(info.ConcludedAt) >= r.cfg.ConcludedTTL
	case models.AuctionStatusLobby:
		return now.Sub(info.LastActivity) >= r.cfg.IdleTTL
	default:
		return false
	}
}

// Sweep evicts concluded rooms past ConcludedTTL and lobbies idle past
// IdleTTL. Running auctions are never evicted. It returns how many rooms
// were removed.
func (r *Registry) Sweep(now time.Time) int {
	r.mu.RLock()
	var stale []string
	for code, room := range r.rooms {
		if r.expired(room.Info(), now) {
			stale = append(stale, code)
		}
	}
	r.mu.RUnlock()

	for _, code := range stale {
		r.remove(code)
		r.log.Info().Str("room_code", code).Msg("room evicted")
	}
	return len(stale)
}

// Run sweeps every SweepInterval until ctx is cancelled.
func (r *Registry) Run(ctx context.Context) {
	ticker := r.cfg.Clock.NewTicker(r.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			if n := r.Sweep(r.cfg.Clock.Now()); n > 0 {
				r.log.Debug().Int("evicted", n).Int("live", r.Len()).Msg("sweep finished")
			}
		}
	}
}
