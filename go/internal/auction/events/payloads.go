package events

import (
	"github.com/mcdev12/auctionroom/go/internal/auction/summary"
	"github.com/mcdev12/auctionroom/go/internal/models"
)

// Event payload types shared between the orchestrator and the gateway

// SessionCreatedPayload is sent to the creator of a room
type SessionCreatedPayload struct {
	RoomCode string `json:"roomCode"`
	Solo     bool   `json:"solo,omitempty"`
}

// JoinAcceptedPayload is sent to a participant that joined a room
type JoinAcceptedPayload struct {
	RoomCode string `json:"roomCode"`
}

// JoinRejectedPayload explains why a join was refused
type JoinRejectedPayload struct {
	RoomCode string `json:"roomCode"`
	Reason   string `json:"reason"`
}

// LobbyStatePayload is the membership and faction picture of a lobby
type LobbyStatePayload struct {
	Players        []models.Member  `json:"players"`
	AvailableTeams []models.Faction `json:"availableTeams"`
}

// GameStartingPayload tells clients to move to the auction screen
type GameStartingPayload struct {
	RoomCode string `json:"roomCode"`
	TeamCode string `json:"teamCode,omitempty"`
}

// StartFailedPayload is sent to the host when the auction could not start
type StartFailedPayload struct {
	RoomCode string `json:"roomCode"`
	Reason   string `json:"reason"`
}

// AuctionUpdatePayload carries a partial update; every field is optional
type AuctionUpdatePayload struct {
	CurrentBid       *int                         `json:"currentBid,omitempty"`
	CurrentBidder    *string                      `json:"currentBidder,omitempty"`
	SecondsRemaining *int                         `json:"timeLeft,omitempty"`
	Message          string                       `json:"message,omitempty"`
	Teams            map[string]*models.Franchise `json:"teams,omitempty"`
}

// ItemSettledPayload announces the outcome for the player on the block
type ItemSettledPayload struct {
	PlayerName string        `json:"playerName"`
	Team       string        `json:"team"`
	TeamCode   string        `json:"teamCode,omitempty"`
	FinalPrice int           `json:"finalPrice"`
	Player     models.Player `json:"player"`
}

// SessionConcludedPayload marks the end of the auction
type SessionConcludedPayload struct {
	RoomCode string `json:"roomCode"`
}

// RoomState is the auction picture sent on request
type RoomState struct {
	Status             models.AuctionStatus         `json:"status"`
	Phase              models.AuctionPhase          `json:"phase"`
	Teams              map[string]*models.Franchise `json:"teams"`
	PlayerPool         []models.Player              `json:"playerPool"`
	CurrentPlayerIndex int                          `json:"currentPlayerIndex"`
	CurrentBid         int                          `json:"currentBid"`
	CurrentBidder      string                       `json:"currentBidder"`
	IsAuctionRunning   bool                         `json:"isAuctionRunning"`
	PassedTeams        []string                     `json:"passedTeams"`
	Participants       map[string]models.Faction    `json:"participants"`
	SecondsRemaining   *int                         `json:"timeLeft,omitempty"`
}

// FullStatePayload lets a reconnecting participant rebuild its view
type FullStatePayload struct {
	Room   RoomState       `json:"room"`
	MyTeam *models.Faction `json:"myTeam,omitempty"`
}

// FinalStatePayload is the end-of-auction summary for one participant
type FinalStatePayload struct {
	Room       RoomState                 `json:"room"`
	MyTeamCode string                    `json:"myTeamCode"`
	Reports    map[string]summary.Report `json:"reports"`
}
