package orchestrator

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/mcdev12/auctionroom/go/internal/auction/events"
	"github.com/mcdev12/auctionroom/go/internal/auction/rules"
	"github.com/mcdev12/auctionroom/go/internal/models"
)

// NoBidder is the current bidder before anyone has bid on a player.
const NoBidder = ""

// Task keys. A keyed schedule replaces the pending task with the same key.
const (
	keyCountdown  = "countdown"
	keyAdvance    = "advance"
	keyCheckpoint = "ai-checkpoint"
)

// Config wires a room to its collaborators.
type Config struct {
	League  rules.League
	Timing  Timing
	Catalog Catalog
	Sink    Sink
	// Rand drives AI timing and valuation. Rooms must not share one.
	Rand   *rand.Rand
	Logger zerolog.Logger
}

// Info is the part of a room readable from any goroutine.
type Info struct {
	Code         string               `json:"code"`
	Solo         bool                 `json:"solo"`
	Status       models.AuctionStatus `json:"status"`
	Members      int                  `json:"members"`
	CreatedAt    time.Time            `json:"createdAt"`
	LastActivity time.Time            `json:"lastActivity"`
	ConcludedAt  time.Time            `json:"concludedAt,omitempty"`
}

// aiState is an automated franchise's interest in the player on the block.
type aiState struct {
	attempts  int
	allowance int
	active    bool
}

// Room is one auction session. Every field below the mutex is owned by the
// executor; public methods post work to it and never touch state directly.
type Room struct {
	code    string
	exec    Executor
	league  rules.League
	timing  Timing
	catalog Catalog
	sink    Sink
	rng     *rand.Rand
	log     zerolog.Logger

	infoMu sync.RWMutex
	info   Info

	solo         bool
	hostID       string
	status       models.AuctionStatus
	phase        models.AuctionPhase
	members      map[string]*models.Member
	memberOrder  []string
	participants map[string]models.Faction

	teams     map[string]*models.Franchise
	teamOrder []string
	humans    map[string]bool
	pool      []models.Player
	index     int

	currentBid    int
	currentBidder string
	bidCount      int
	declined      map[string]bool
	passed        []string
	ai            map[string]*aiState
	remaining     int
}

// NewRoom creates a room in the lobby. The creator becomes host once Open
// runs on the executor.
func NewRoom(code string, exec Executor, cfg Config) *Room {
	if cfg.Sink == nil {
		cfg.Sink = discardSink{}
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	now := exec.Now()
	return &Room{
		code:         code,
		exec:         exec,
		league:       cfg.League,
		timing:       cfg.Timing,
		catalog:      cfg.Catalog,
		sink:         cfg.Sink,
		rng:          cfg.Rand,
		log:          cfg.Logger.With().Str("room_code", code).Logger(),
		info:         Info{Code: code, Status: models.AuctionStatusLobby, CreatedAt: now, LastActivity: now},
		status:       models.AuctionStatusLobby,
		phase:        models.AuctionPhaseAwaitingParticipants,
		members:      make(map[string]*models.Member),
		participants: make(map[string]models.Faction),
		teams:        make(map[string]*models.Franchise),
		humans:       make(map[string]bool),
		declined:     make(map[string]bool),
		ai:           make(map[string]*aiState),
		index:        -1,
		remaining:    -1,
	}
}

// Code returns the room code.
func (r *Room) Code() string {
	return r.code
}

// Info returns a copy of the room's summary.
func (r *Room) Info() Info {
	r.infoMu.RLock()
	defer r.infoMu.RUnlock()
	return r.info
}

// Close stops the room's executor. Pending tasks are dropped.
func (r *Room) Close() {
	r.exec.Stop()
}

// post runs fn on the executor and refreshes Info afterwards. Rejections
// are only logged; nothing is broadcast for them.
func (r *Room) post(action string, fn func() error) error {
	ok := r.exec.Post(func() {
		if err := fn(); err != nil {
			r.log.Debug().Err(err).Str("action", action).Msg("action ignored")
		}
		r.touch()
	})
	if !ok {
		return ErrRoomClosed
	}
	return nil
}

func (r *Room) touch() {
	r.infoMu.Lock()
	defer r.infoMu.Unlock()
	r.info.Solo = r.solo
	r.info.Status = r.status
	r.info.Members = len(r.members)
	r.info.LastActivity = r.exec.Now()
}

// Open seats the creator as host and tells them the room exists.
func (r *Room) Open(hostID, connID string, solo bool) error {
	return r.post("open", func() error {
		r.solo = solo
		r.hostID = hostID
		r.addMember(hostID, connID, true)
		r.sendTo([]string{connID}, events.TypeSessionCreated, events.SessionCreatedPayload{RoomCode: r.code, Solo: solo})
		if !solo {
			r.broadcastLobby()
		}
		return nil
	})
}

// Join seats a participant while the room is still in the lobby.
func (r *Room) Join(participantID, connID string) error {
	return r.post("join", func() error { return r.join(participantID, connID) })
}

// SelectFaction claims a franchise in the lobby, releasing any previous one.
func (r *Room) SelectFaction(participantID string, faction models.Faction) error {
	return r.post("select-faction", func() error { return r.selectFaction(participantID, faction) })
}

// RequestStart moves every member to the auction screen. Host only.
func (r *Room) RequestStart(participantID string) error {
	return r.post("request-start", func() error { return r.requestStart(participantID) })
}

// Identify rebinds a participant to a new connection.
func (r *Room) Identify(participantID, connID string) error {
	return r.post("identify", func() error { return r.identify(participantID, connID) })
}

// Register records a participant's franchise and starts the auction once
// the room is ready.
func (r *Room) Register(participantID string, faction models.Faction) error {
	return r.post("register", func() error { return r.register(participantID, faction) })
}

// RequestFullState sends the current auction picture to one participant.
func (r *Room) RequestFullState(participantID string) error {
	return r.post("request-full-state", func() error { return r.sendFullState(participantID) })
}

// RequestFinalState sends the end-of-auction picture to one participant.
func (r *Room) RequestFinalState(participantID string) error {
	return r.post("request-final-state", func() error { return r.sendFinalState(participantID) })
}

// Bid submits a bid for a franchise on the player on the block.
func (r *Room) Bid(teamCode string, amount int) error {
	return r.post("bid", func() error { return r.acceptBid(teamCode, amount) })
}

// Decline takes a franchise out of the bidding for the current player.
func (r *Room) Decline(teamCode string) error {
	return r.post("decline", func() error { return r.decline(teamCode) })
}

// Disconnect clears the connection binding. Membership is kept.
func (r *Room) Disconnect(connID string) error {
	return r.post("disconnect", func() error {
		for _, m := range r.members {
			if m.ConnectionID == connID {
				m.ConnectionID = ""
				m.Connected = false
				r.log.Info().Str("participant_id", m.ParticipantID).Msg("participant disconnected")
			}
		}
		return nil
	})
}

// Snapshot returns a copy of the auction state, read on the executor.
func (r *Room) Snapshot(ctx context.Context) (events.RoomState, error) {
	out := make(chan events.RoomState, 1)
	if !r.exec.Post(func() { out <- r.state(true) }) {
		return events.RoomState{}, ErrRoomClosed
	}
	select {
	case s := <-out:
		return s, nil
	case <-ctx.Done():
		return events.RoomState{}, ctx.Err()
	}
}

func (r *Room) addMember(participantID, connID string, host bool) *models.Member {
	m := &models.Member{
		ParticipantID: participantID,
		Name:          fmt.Sprintf("Player %d", len(r.memberOrder)+1),
		IsHost:        host,
		ConnectionID:  connID,
		Connected:     connID != "",
	}
	r.members[participantID] = m
	r.memberOrder = append(r.memberOrder, participantID)
	return m
}

func (r *Room) join(participantID, connID string) error {
	if m, ok := r.members[participantID]; ok {
		m.ConnectionID = connID
		m.Connected = true
		r.sendTo([]string{connID}, events.TypeJoinAccepted, events.JoinAcceptedPayload{RoomCode: r.code})
		r.broadcastLobby()
		return nil
	}

	reason := ""
	switch {
	case r.status != models.AuctionStatusLobby:
		reason = "Auction is already in progress."
	case r.solo:
		reason = "Room is a single-player auction."
	case len(r.members) >= len(r.league.Franchises):
		reason = "Room is full."
	}
	if reason != "" {
		r.sendTo([]string{connID}, events.TypeJoinRejected, events.JoinRejectedPayload{RoomCode: r.code, Reason: reason})
		return fmt.Errorf("%w: %s", ErrIneligible, reason)
	}

	r.addMember(participantID, connID, false)
	r.sendTo([]string{connID}, events.TypeJoinAccepted, events.JoinAcceptedPayload{RoomCode: r.code})
	r.broadcastLobby()
	r.log.Info().Str("participant_id", participantID).Msg("participant joined")
	return nil
}

func (r *Room) selectFaction(participantID string, faction models.Faction) error {
	m, ok := r.members[participantID]
	if !ok {
		return ErrNotMember
	}
	if r.status != models.AuctionStatusLobby {
		return ErrIneligible
	}
	if !r.factionAvailable(faction.Code, participantID) {
		return fmt.Errorf("%w: %s", ErrFactionUnavailable, faction.Code)
	}
	f, _ := r.league.Franchise(faction.Code)
	m.Faction = &models.Faction{Code: f.Code, Name: f.Name}
	r.broadcastLobby()
	return nil
}

// factionAvailable reports whether code is a league franchise no other
// member holds.
func (r *Room) factionAvailable(code, participantID string) bool {
	if _, ok := r.league.Franchise(code); !ok {
		return false
	}
	for id, m := range r.members {
		if id != participantID && m.Faction != nil && m.Faction.Code == code {
			return false
		}
	}
	for id, f := range r.participants {
		if id != participantID && f.Code == code {
			return false
		}
	}
	return true
}

func (r *Room) requestStart(participantID string) error {
	if participantID != r.hostID {
		return ErrNotHost
	}
	if r.status != models.AuctionStatusLobby {
		return ErrIneligible
	}
	r.broadcast(events.TypeGameStarting, events.GameStartingPayload{RoomCode: r.code})
	r.maybeStart()
	return nil
}

func (r *Room) identify(participantID, connID string) error {
	m, ok := r.members[participantID]
	if !ok {
		return ErrNotMember
	}
	m.ConnectionID = connID
	m.Connected = true
	r.log.Info().Str("participant_id", participantID).Msg("participant re-identified")
	return nil
}

func (r *Room) register(participantID string, faction models.Faction) error {
	m, ok := r.members[participantID]
	if !ok {
		return ErrNotMember
	}
	if r.status != models.AuctionStatusLobby {
		return ErrIneligible
	}
	f, ok := r.league.Franchise(faction.Code)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownFranchise, faction.Code)
	}
	if !r.factionAvailable(f.Code, participantID) {
		return fmt.Errorf("%w: %s", ErrFactionUnavailable, f.Code)
	}
	name := faction.Name
	if name == "" {
		name = f.Name
	}
	registered := models.Faction{Code: f.Code, Name: name}
	r.participants[participantID] = registered
	m.Faction = &registered

	if r.solo {
		r.fillWithAI(participantID)
		return r.start()
	}
	r.maybeStart()
	return nil
}

// fillWithAI seats an automated member on every franchise the human did
// not take.
func (r *Room) fillWithAI(humanID string) {
	human := r.participants[humanID].Code
	for _, f := range r.league.Franchises {
		if f.Code == human {
			continue
		}
		id := "ai_" + f.Code
		if _, ok := r.members[id]; !ok {
			m := r.addMember(id, "", false)
			m.Name = "AI " + f.Name
			m.IsAI = true
		}
		faction := models.Faction{Code: f.Code, Name: f.Name}
		r.members[id].Faction = &faction
		r.participants[id] = faction
	}
}

// maybeStart starts a multi-player room once every member registered. The
// host's request only announces the start, or retries one that failed.
func (r *Room) maybeStart() {
	if r.status != models.AuctionStatusLobby {
		return
	}
	for id := range r.members {
		if _, ok := r.participants[id]; !ok {
			return
		}
	}
	if err := r.start(); err != nil {
		r.log.Error().Err(err).Msg("failed to start auction")
	}
}

// start loads the pool, seats every franchise and presents the first
// player. A catalog failure leaves the room in the lobby.
func (r *Room) start() error {
	if r.catalog == nil {
		return r.failStart(fmt.Errorf("%w: no catalog configured", ErrCatalogUnavailable))
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	pool, err := r.catalog.Players(ctx)
	if err != nil {
		return r.failStart(fmt.Errorf("%w: %v", ErrCatalogUnavailable, err))
	}
	if len(pool) == 0 {
		return r.failStart(fmt.Errorf("%w: empty pool", ErrCatalogUnavailable))
	}

	r.pool = make([]models.Player, len(pool))
	copy(r.pool, pool)
	r.seatTeams()
	r.status = models.AuctionStatusRunning
	r.log.Info().Int("pool_size", len(r.pool)).Int("humans", len(r.humans)).Msg("auction starting")

	if r.solo {
		for id, f := range r.participants {
			if !r.members[id].IsAI {
				r.sendTo(r.connsOf(id), events.TypeGameStarting, events.GameStartingPayload{RoomCode: r.code, TeamCode: f.Code})
			}
		}
		r.exec.Schedule(keyAdvance, r.timing.SoloStartDelay, r.advance)
		return nil
	}
	r.advance()
	return nil
}

func (r *Room) failStart(err error) error {
	r.sendTo(r.connsOf(r.hostID), events.TypeStartFailed, events.StartFailedPayload{RoomCode: r.code, Reason: err.Error()})
	return err
}

// seatTeams gives every league franchise a fresh purse. Franchises held by
// a human member keep the name that member registered.
func (r *Room) seatTeams() {
	r.teams = make(map[string]*models.Franchise, len(r.league.Franchises))
	r.teamOrder = r.teamOrder[:0]
	r.humans = make(map[string]bool)
	for _, f := range r.league.Franchises {
		r.teams[f.Code] = &models.Franchise{
			Code:        f.Code,
			DisplayName: f.Code,
			Purse:       r.league.StartingPurse,
			Squad:       []models.RosterEntry{},
			Personality: f.Personality,
		}
		r.teamOrder = append(r.teamOrder, f.Code)
	}
	for id, faction := range r.participants {
		t, ok := r.teams[faction.Code]
		if !ok {
			continue
		}
		t.DisplayName = faction.Name
		if m := r.members[id]; m != nil && !m.IsAI {
			r.humans[faction.Code] = true
		}
	}
}

func (r *Room) sendFullState(participantID string) error {
	m, ok := r.members[participantID]
	if !ok {
		return ErrNotMember
	}
	payload := events.FullStatePayload{Room: r.state(false)}
	if f, ok := r.participants[participantID]; ok {
		payload.MyTeam = &f
	}
	r.sendTo(connsOfMember(m), events.TypeFullState, payload)
	return nil
}

func (r *Room) sendFinalState(participantID string) error {
	f, ok := r.participants[participantID]
	if !ok {
		return ErrNotMember
	}
	r.sendTo(r.connsOf(participantID), events.TypeFinalState, events.FinalStatePayload{
		Room:       r.state(false),
		MyTeamCode: f.Code,
		Reports:    r.reports(),
	})
	return nil
}

func (r *Room) lobbyState() events.LobbyStatePayload {
	players := make([]models.Member, 0, len(r.memberOrder))
	for _, id := range r.memberOrder {
		players = append(players, *r.members[id])
	}
	var available []models.Faction
	for _, f := range r.league.Factions() {
		if r.factionAvailable(f.Code, "") {
			available = append(available, f)
		}
	}
	return events.LobbyStatePayload{Players: players, AvailableTeams: available}
}

func (r *Room) broadcastLobby() {
	r.broadcast(events.TypeLobbyState, r.lobbyState())
}

func (r *Room) connsOf(participantID string) []string {
	if m, ok := r.members[participantID]; ok {
		return connsOfMember(m)
	}
	return nil
}

func connsOfMember(m *models.Member) []string {
	if m.ConnectionID == "" {
		return nil
	}
	return []string{m.ConnectionID}
}

// connections returns the bound connection of every member in seat order.
func (r *Room) connections() []string {
	out := make([]string, 0, len(r.memberOrder))
	for _, id := range r.memberOrder {
		if c := r.members[id].ConnectionID; c != "" {
			out = append(out, c)
		}
	}
	return out
}

func (r *Room) broadcast(typ events.Type, payload interface{}) {
	r.sendTo(r.connections(), typ, payload)
}

func (r *Room) sendTo(connIDs []string, typ events.Type, payload interface{}) {
	ev, err := events.New(r.code, typ, payload, r.exec.Now())
	if err != nil {
		r.log.Error().Err(err).Str("event_type", string(typ)).Msg("failed to build event")
		return
	}
	r.sink.Send(ev, connIDs)
}
