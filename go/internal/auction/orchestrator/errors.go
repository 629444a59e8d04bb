package orchestrator

import "errors"

var (
	// ErrRoomClosed is returned once a room's executor has stopped.
	ErrRoomClosed = errors.New("room is closed")
	// ErrIneligible covers stale or out-of-turn actions: bidding after a
	// decline, outbidding yourself, acting while no player is on the block.
	ErrIneligible = errors.New("action not allowed right now")
	// ErrBadIncrement is a bid that is not exactly the next increment.
	ErrBadIncrement = errors.New("bid does not match the next increment")
	// ErrCatalogUnavailable means the player pool could not be loaded.
	ErrCatalogUnavailable = errors.New("player catalog unavailable")

	ErrNotMember          = errors.New("not a member of this room")
	ErrNotHost            = errors.New("only the host can do that")
	ErrFactionUnavailable = errors.New("franchise is not available")
	ErrUnknownFranchise   = errors.New("unknown franchise")
)
