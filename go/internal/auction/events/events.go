package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event is the envelope for everything sent to auction clients
type Event struct {
	ID        string          `json:"id"`        // Event UUID
	Room      string          `json:"room"`      // Room code
	Type      Type            `json:"type"`      // Event type
	Timestamp time.Time       `json:"timestamp"` // Event creation time
	Data      json.RawMessage `json:"data"`      // Event-specific payload
}

// Type represents the type of auction event
type Type string

const (
	TypeSessionCreated   Type = "session-created"
	TypeJoinAccepted     Type = "join-accepted"
	TypeJoinRejected     Type = "join-rejected"
	TypeLobbyState       Type = "lobby-state"
	TypeGameStarting     Type = "game-starting"
	TypeStartFailed      Type = "start-failed"
	TypeItemPresented    Type = "item-presented"
	TypeAuctionUpdate    Type = "auction-update"
	TypeItemSettled      Type = "item-settled"
	TypeSessionConcluded Type = "session-concluded"
	TypeFullState        Type = "full-state"
	TypeFinalState       Type = "final-state"
)

// New builds an event envelope around payload
func New(room string, typ Type, payload interface{}, at time.Time) (*Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", typ, err)
	}
	return &Event{
		ID:        uuid.New().String(),
		Room:      room,
		Type:      typ,
		Timestamp: at,
		Data:      data,
	}, nil
}

// Decode unmarshals the event data into dst
func (e *Event) Decode(dst interface{}) error {
	if err := json.Unmarshal(e.Data, dst); err != nil {
		return fmt.Errorf("failed to unmarshal %s payload: %w", e.Type, err)
	}
	return nil
}
