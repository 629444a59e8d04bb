package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/auctionroom/go/internal/auction/events"
	"github.com/mcdev12/auctionroom/go/internal/auction/orchestrator"
	"github.com/mcdev12/auctionroom/go/internal/auction/registry"
	"github.com/mcdev12/auctionroom/go/internal/models"
)

//go:generate mockgen -source=router.go -destination=mock_rooms_test.go -package=gateway

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrMalformedCommand = errors.New("malformed command")
)

// Rooms is the room registry as seen by the gateway
type Rooms interface {
	Create(participantID, connID string) (string, error)
	CreateSolo(participantID, connID string) (string, error)
	Join(code, participantID, connID string) error
	SelectFaction(code, participantID string, faction models.Faction) error
	RequestStart(code, participantID string) error
	Identify(code, participantID, connID string) error
	Register(code, participantID string, faction models.Faction) error
	RequestFullState(code, participantID string) error
	RequestFinalState(code, participantID string) error
	SubmitBid(code, teamCode string, amount int) error
	Decline(code, teamCode string) error
	Disconnect(connID string)
	Snapshot(ctx context.Context, code string) (events.RoomState, error)
	Rooms() []orchestrator.Info
}

// Router turns client commands into registry calls
type Router struct {
	rooms Rooms
	reply orchestrator.Sink
	clock clockwork.Clock
}

// NewRouter creates a router. reply is used for answers the registry cannot
// give itself, such as rejecting a join to a room that does not exist.
func NewRouter(rooms Rooms, reply orchestrator.Sink, clock clockwork.Clock) *Router {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Router{rooms: rooms, reply: reply, clock: clock}
}

// HandleMessage implements MessageHandler.
func (rt *Router) HandleMessage(connID string, raw []byte) {
	if err := rt.Dispatch(connID, raw); err != nil {
		log.Debug().Err(err).Str("connection_id", connID).Msg("command ignored")
	}
}

// HandleClose implements MessageHandler.
func (rt *Router) HandleClose(connID string) {
	rt.rooms.Disconnect(connID)
}

// Dispatch decodes one command and applies it on behalf of connID.
func (rt *Router) Dispatch(connID string, raw []byte) error {
	var cmd Command
	if err := json.Unmarshal(raw, &cmd); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedCommand, err)
	}

	switch cmd.Type {
	case CommandCreateSession, CommandCreateSoloSession:
		var p CreatePayload
		if err := decode(cmd, &p); err != nil {
			return err
		}
		if p.ParticipantID == "" {
			return fmt.Errorf("%w: playerId is required", ErrMalformedCommand)
		}
		create := rt.rooms.Create
		if cmd.Type == CommandCreateSoloSession {
			create = rt.rooms.CreateSolo
		}
		_, err := create(p.ParticipantID, connID)
		return err

	case CommandJoinSession:
		var p ParticipantPayload
		if err := decode(cmd, &p); err != nil {
			return err
		}
		err := rt.rooms.Join(p.RoomCode, p.ParticipantID, connID)
		if errors.Is(err, registry.ErrRoomNotFound) {
			rt.rejectJoin(connID, p.RoomCode)
		}
		return err

	case CommandSelectFaction, CommandRegister:
		var p FactionPayload
		if err := decode(cmd, &p); err != nil {
			return err
		}
		if cmd.Type == CommandRegister {
			return rt.rooms.Register(p.RoomCode, p.ParticipantID, p.Team)
		}
		return rt.rooms.SelectFaction(p.RoomCode, p.ParticipantID, p.Team)

	case CommandRequestStart, CommandIdentify, CommandRequestFullState, CommandRequestFinalState:
		var p ParticipantPayload
		if err := decode(cmd, &p); err != nil {
			return err
		}
		switch cmd.Type {
		case CommandRequestStart:
			return rt.rooms.RequestStart(p.RoomCode, p.ParticipantID)
		case CommandIdentify:
			return rt.rooms.Identify(p.RoomCode, p.ParticipantID, connID)
		case CommandRequestFullState:
			return rt.rooms.RequestFullState(p.RoomCode, p.ParticipantID)
		default:
			return rt.rooms.RequestFinalState(p.RoomCode, p.ParticipantID)
		}

	case CommandSubmitBid:
		var p BidPayload
		if err := decode(cmd, &p); err != nil {
			return err
		}
		return rt.rooms.SubmitBid(p.RoomCode, p.TeamCode, p.Amount)

	case CommandDecline:
		var p DeclinePayload
		if err := decode(cmd, &p); err != nil {
			return err
		}
		return rt.rooms.Decline(p.RoomCode, p.TeamCode)
	}
	return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Type)
}

func (rt *Router) rejectJoin(connID, code string) {
	ev, err := events.New(code, events.TypeJoinRejected, events.JoinRejectedPayload{
		RoomCode: code,
		Reason:   "Room not found.",
	}, rt.clock.Now())
	if err != nil {
		log.Error().Err(err).Msg("failed to build join rejection")
		return
	}
	rt.reply.Send(ev, []string{connID})
}

func decode(cmd Command, dst interface{}) error {
	if len(cmd.Payload) == 0 {
		return fmt.Errorf("%w: %s has no payload", ErrMalformedCommand, cmd.Type)
	}
	if err := json.Unmarshal(cmd.Payload, dst); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedCommand, cmd.Type, err)
	}
	return nil
}
