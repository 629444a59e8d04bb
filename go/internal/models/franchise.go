package models

// Personality is the behavior profile that drives an automated franchise
type Personality string

const (
	PersonalityExperienced   Personality = "Experienced"
	PersonalityStrategic     Personality = "Strategic"
	PersonalityStarHunter    Personality = "Star-Hunter"
	PersonalityAggressive    Personality = "Aggressive"
	PersonalityScout         Personality = "Scout"
	PersonalityAnalytical    Personality = "Analytical"
	PersonalityValueFocused  Personality = "Value-Focused"
	PersonalityBalanced      Personality = "Balanced"
	PersonalityOpportunistic Personality = "Opportunistic"
	PersonalityModern        Personality = "Modern"
)

// Faction is the selection a participant makes in the lobby
type Faction struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
}

// Franchise is a bidder in a running auction
type Franchise struct {
	Code        string        `json:"name"`
	DisplayName string        `json:"displayName"`
	Purse       int           `json:"purse"`
	Squad       []RosterEntry `json:"squad"`
	Personality Personality   `json:"personality"`
}

// OverseasCount returns how many squad members come from outside home
func (f *Franchise) OverseasCount(home string) int {
	n := 0
	for _, e := range f.Squad {
		if e.Player.Country != home {
			n++
		}
	}
	return n
}

// RoleCount returns how many squad members play the given role
func (f *Franchise) RoleCount(role Role) int {
	n := 0
	for _, e := range f.Squad {
		if e.Player.Role == role {
			n++
		}
	}
	return n
}
