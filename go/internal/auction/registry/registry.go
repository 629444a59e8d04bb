// Package registry owns the set of live auction rooms and routes inbound
// actions to the right one.
package registry

import (
	"context"
	"errors"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/auctionroom/go/internal/auction/events"
	"github.com/mcdev12/auctionroom/go/internal/auction/orchestrator"
	"github.com/mcdev12/auctionroom/go/internal/auction/rules"
	"github.com/mcdev12/auctionroom/go/internal/models"
)

// ErrRoomNotFound is returned for unknown or evicted room codes.
var ErrRoomNotFound = errors.New("room not found")

const (
	codeLength   = 5
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// ExecutorFactory builds the executor a new room runs on.
type ExecutorFactory func(code string) orchestrator.Executor

// LoopExecutors runs every room on its own Loop goroutine until ctx ends.
func LoopExecutors(ctx context.Context, clock clockwork.Clock) ExecutorFactory {
	return func(code string) orchestrator.Executor {
		loop := orchestrator.NewLoop(clock, log.With().Str("room_code", code).Logger())
		go loop.Run(ctx)
		return loop
	}
}

// Config holds what every room is created with plus the retention policy.
type Config struct {
	League  rules.League
	Timing  orchestrator.Timing
	Catalog orchestrator.Catalog
	Sink    orchestrator.Sink

	// Seed makes room codes and AI behaviour reproducible. Zero seeds from
	// the clock.
	Seed int64

	IdleTTL       time.Duration
	ConcludedTTL  time.Duration
	SweepInterval time.Duration

	Clock       clockwork.Clock
	NewExecutor ExecutorFactory
}

// DefaultRetention fills unset retention settings.
func (c *Config) DefaultRetention() {
	if c.IdleTTL == 0 {
		c.IdleTTL = 2 * time.Hour
	}
	if c.ConcludedTTL == 0 {
		c.ConcludedTTL = 30 * time.Minute
	}
	if c.SweepInterval == 0 {
		c.SweepInterval = time.Minute
	}
}

// Registry maps room codes to rooms.
type Registry struct {
	cfg Config
	log zerolog.Logger

	mu    sync.RWMutex
	rooms map[string]*orchestrator.Room

	rngMu sync.Mutex
	rng   *rand.Rand
}

// New creates an empty registry.
func New(cfg Config) *Registry {
	cfg.DefaultRetention()
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	if cfg.NewExecutor == nil {
		cfg.NewExecutor = LoopExecutors(context.Background(), cfg.Clock)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = cfg.Clock.Now().UnixNano()
	}
	return &Registry{
		cfg:   cfg,
		log:   log.With().Str("component", "registry").Logger(),
		rooms: make(map[string]*orchestrator.Room),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Create opens a multi-player room with the caller as host.
func (r *Registry) Create(participantID, connID string) (string, error) {
	return r.create(participantID, connID, false)
}

// CreateSolo opens a single-player room; the other franchises are filled
// with automated bidders when the human registers.
func (r *Registry) CreateSolo(participantID, connID string) (string, error) {
	return r.create(participantID, connID, true)
}

func (r *Registry) create(participantID, connID string, solo bool) (string, error) {
	r.mu.Lock()
	code := r.newCode()
	room := orchestrator.NewRoom(code, r.cfg.NewExecutor(code), orchestrator.Config{
		League:  r.cfg.League,
		Timing:  r.cfg.Timing,
		Catalog: r.cfg.Catalog,
		Sink:    r.cfg.Sink,
		Rand:    rand.New(rand.NewSource(r.int63())),
		Logger:  log.Logger,
	})
	r.rooms[code] = room
	r.mu.Unlock()

	if err := room.Open(participantID, connID, solo); err != nil {
		r.remove(code)
		return "", err
	}
	r.log.Info().Str("room_code", code).Bool("solo", solo).Str("participant_id", participantID).Msg("room created")
	return code, nil
}

// newCode returns an unused room code. Callers hold mu.
func (r *Registry) newCode() string {
	var b strings.Builder
	for {
		b.Reset()
		for i := 0; i < codeLength; i++ {
			b.WriteByte(codeAlphabet[r.intn(len(codeAlphabet))])
		}
		if _, taken := r.rooms[b.String()]; !taken {
			return b.String()
		}
	}
}

func (r *Registry) intn(n int) int {
	r.rngMu.Lock()
	defer r.rngMu.Unlock()
	return r.rng.Intn(n)
}

func (r *Registry) int63() int64 {
	r.rngMu.Lock()
	defer r.rngMu.Unlock()
	return r.rng.Int63()
}

// Room looks up a room by code. Codes are case-insensitive.
func (r *Registry) Room(code string) (*orchestrator.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	room, ok := r.rooms[strings.ToUpper(code)]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

func (r *Registry) with(code string, fn func(*orchestrator.Room) error) error {
	room, err := r.Room(code)
	if err != nil {
		return err
	}
	return fn(room)
}

// Join adds a participant to a room that is still in the lobby.
func (r *Registry) Join(code, participantID, connID string) error {
	return r.with(code, func(room *orchestrator.Room) error { return room.Join(participantID, connID) })
}

// SelectFaction claims a franchise in the lobby.
func (r *Registry) SelectFaction(code, participantID string, faction models.Faction) error {
	return r.with(code, func(room *orchestrator.Room) error { return room.SelectFaction(participantID, faction) })
}

// RequestStart is honoured for the host only.
func (r *Registry) RequestStart(code, participantID string) error {
	return r.with(code, func(room *orchestrator.Room) error { return room.RequestStart(participantID) })
}

// Identify rebinds a participant to a new connection.
func (r *Registry) Identify(code, participantID, connID string) error {
	return r.with(code, func(room *orchestrator.Room) error { return room.Identify(participantID, connID) })
}

// Register signals a participant is ready with its franchise.
func (r *Registry) Register(code, participantID string, faction models.Faction) error {
	return r.with(code, func(room *orchestrator.Room) error { return room.Register(participantID, faction) })
}

// RequestFullState sends the live auction picture to one participant.
func (r *Registry) RequestFullState(code, participantID string) error {
	return r.with(code, func(room *orchestrator.Room) error { return room.RequestFullState(participantID) })
}

// RequestFinalState sends the final squads and grades to one participant.
func (r *Registry) RequestFinalState(code, participantID string) error {
	return r.with(code, func(room *orchestrator.Room) error { return room.RequestFinalState(participantID) })
}

// SubmitBid forwards a bid for a franchise.
func (r *Registry) SubmitBid(code, teamCode string, amount int) error {
	return r.with(code, func(room *orchestrator.Room) error { return room.Bid(teamCode, amount) })
}

// Decline takes a franchise out of the bidding for the current player.
func (r *Registry) Decline(code, teamCode string) error {
	return r.with(code, func(room *orchestrator.Room) error { return room.Decline(teamCode) })
}

// Disconnect clears connID from every room it was bound in.
func (r *Registry) Disconnect(connID string) {
	r.mu.RLock()
	rooms := make([]*orchestrator.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		rooms = append(rooms, room)
	}
	r.mu.RUnlock()

	for _, room := range rooms {
		if err := room.Disconnect(connID); err != nil && !errors.Is(err, orchestrator.ErrRoomClosed) {
			r.log.Warn().Err(err).Str("room_code", room.Code()).Msg("failed to disconnect")
		}
	}
}

// Snapshot reads the auction state of one room.
func (r *Registry) Snapshot(ctx context.Context, code string) (events.RoomState, error) {
	room, err := r.Room(code)
	if err != nil {
		return events.RoomState{}, err
	}
	return room.Snapshot(ctx)
}

// Rooms lists every room, oldest first.
func (r *Registry) Rooms() []orchestrator.Info {
	r.mu.RLock()
	out := make([]orchestrator.Info, 0, len(r.rooms))
	for _, room := range r.rooms {
		out = append(out, room.Info())
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].Code < out[j].Code
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// Len returns the number of live rooms.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms)
}

func (r *Registry) remove(code string) {
	r.mu.Lock()
	room, ok := r.rooms[code]
	delete(r.rooms, code)
	r.mu.Unlock()
	if ok {
		room.Close()
	}
}

// Close stops every room.
func (r *Registry) Close() {
	r.mu.Lock()
	rooms := r.rooms
	r.rooms = make(map[string]*orchestrator.Room)
	r.mu.Unlock()
	for _, room := range rooms {
		room.Close()
	}
}
