package gateway

import (
	"encoding/json"

	"github.com/mcdev12/auctionroom/go/internal/models"
)

// Command is the envelope clients send over the websocket
type Command struct {
	Type    CommandType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// CommandType names an inbound client command
type CommandType string

const (
	CommandCreateSession     CommandType = "create-session"
	CommandCreateSoloSession CommandType = "create-solo-session"
	CommandJoinSession       CommandType = "join-session"
	CommandSelectFaction     CommandType = "select-faction"
	CommandRequestStart      CommandType = "request-start"
	CommandIdentify          CommandType = "identify"
	CommandRegister          CommandType = "register-participant"
	CommandRequestFullState  CommandType = "request-full-state"
	CommandRequestFinalState CommandType = "request-final-state"
	CommandSubmitBid         CommandType = "submit-bid"
	CommandDecline           CommandType = "decline"
)

// CreatePayload opens a room with the sender as host
type CreatePayload struct {
	ParticipantID string `json:"playerId"`
}

// ParticipantPayload addresses one participant in one room
type ParticipantPayload struct {
	RoomCode      string `json:"roomCode"`
	ParticipantID string `json:"playerId"`
}

// FactionPayload carries a lobby selection or a registration
type FactionPayload struct {
	RoomCode      string         `json:"roomCode"`
	ParticipantID string         `json:"playerId"`
	Team          models.Faction `json:"team"`
}

// BidPayload is a bid on the player on the block
type BidPayload struct {
	RoomCode string `json:"roomCode"`
	TeamCode string `json:"teamCode"`
	Amount   int    `json:"amount"`
}

// DeclinePayload withdraws a franchise from the current player
type DeclinePayload struct {
	RoomCode string `json:"roomCode"`
	TeamCode string `json:"teamCode"`
}
