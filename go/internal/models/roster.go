package models

import (
	"encoding/json"
	"time"
)

// RosterEntry is a player acquired by a franchise together with the price paid
type RosterEntry struct {
	Player     Player    `json:"player"`
	FinalPrice int       `json:"finalPrice"`
	AcquiredAt time.Time `json:"acquiredAt"`
}

// MarshalJSON flattens the player fields next to the price so clients can
// treat a squad entry like a player card.
func (e RosterEntry) MarshalJSON() ([]byte, error) {
	type flat struct {
		Player
		FinalPrice int       `json:"finalPrice"`
		AcquiredAt time.Time `json:"acquiredAt"`
	}
	return json.Marshal(flat{Player: e.Player, FinalPrice: e.FinalPrice, AcquiredAt: e.AcquiredAt})
}
