package models

// AuctionStatus defines the lifecycle status of an auction room.
type AuctionStatus string

const (
	AuctionStatusLobby     AuctionStatus = "LOBBY"
	AuctionStatusRunning   AuctionStatus = "RUNNING"
	AuctionStatusConcluded AuctionStatus = "CONCLUDED"
)

// AuctionPhase defines where the room is inside a running auction.
type AuctionPhase string

const (
	AuctionPhaseAwaitingParticipants AuctionPhase = "AWAITING_PARTICIPANTS"
	AuctionPhaseItemOnBlock          AuctionPhase = "ITEM_ON_BLOCK"
	AuctionPhaseSettling             AuctionPhase = "SETTLING"
	AuctionPhaseConcluded            AuctionPhase = "CONCLUDED"
)

// Member is a participant seat in a room. Membership belongs to the
// participant ID; the connection ID is transient and rebinds on reconnect.
type Member struct {
	ParticipantID string   `json:"playerId"`
	Name          string   `json:"name"`
	IsHost        bool     `json:"isHost"`
	IsAI          bool     `json:"isAI,omitempty"`
	Faction       *Faction `json:"team"`
	ConnectionID  string   `json:"-"`
	Connected     bool     `json:"connected"`
}
