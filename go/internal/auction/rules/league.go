package rules

import "github.com/mcdev12/auctionroom/go/internal/models"

// Franchise describes one seat available in every auction room.
type Franchise struct {
	Code        string             `yaml:"code"`
	Name        string             `yaml:"name"`
	Personality models.Personality `yaml:"personality"`
}

// League holds the composition rules shared by every room.
type League struct {
	RosterCap     int                 `yaml:"roster_cap"`
	OverseasCap   int                 `yaml:"overseas_cap"`
	HomeCountry   string              `yaml:"home_country"`
	StartingPurse int                 `yaml:"starting_purse"`
	SquadNeeds    map[models.Role]int `yaml:"squad_needs"`
	Franchises    []Franchise         `yaml:"franchises"`
}

// DefaultLeague returns the ten-franchise league the auction ships with.
func DefaultLeague() League {
	return League{
		RosterCap:     25,
		OverseasCap:   8,
		HomeCountry:   "India",
		StartingPurse: 12500,
		SquadNeeds: map[models.Role]int{
			models.RoleBatsman:      4,
			models.RoleBowler:       4,
			models.RoleAllRounder:   2,
			models.RoleWicketKeeper: 1,
		},
		Franchises: []Franchise{
			{Code: "CSK", Name: "Chennai Super Kings", Personality: models.PersonalityExperienced},
			{Code: "MI", Name: "Mumbai Indians", Personality: models.PersonalityStrategic},
			{Code: "RCB", Name: "Royal Challengers Bengaluru", Personality: models.PersonalityStarHunter},
			{Code: "KKR", Name: "Kolkata Knight Riders", Personality: models.PersonalityOpportunistic},
			{Code: "SRH", Name: "Sunrisers Hyderabad", Personality: models.PersonalityValueFocused},
			{Code: "DC", Name: "Delhi Capitals", Personality: models.PersonalityAnalytical},
			{Code: "PBKS", Name: "Punjab Kings", Personality: models.PersonalityAggressive},
			{Code: "RR", Name: "Rajasthan Royals", Personality: models.PersonalityScout},
			{Code: "GT", Name: "Gujarat Titans", Personality: models.PersonalityBalanced},
			{Code: "LSG", Name: "Lucknow Super Giants", Personality: models.PersonalityModern},
		},
	}
}

// Need returns the target squad count for a role. Unknown roles want one.
func (l League) Need(role models.Role) int {
	if n, ok := l.SquadNeeds[role]; ok {
		return n
	}
	return 1
}

// Franchise looks up a franchise by code.
func (l League) Franchise(code string) (Franchise, bool) {
	for _, f := range l.Franchises {
		if f.Code == code {
			return f, true
		}
	}
	return Franchise{}, false
}

// Factions returns the lobby selections for every franchise in league order.
func (l League) Factions() []models.Faction {
	out := make([]models.Faction, 0, len(l.Franchises))
	for _, f := range l.Franchises {
		out = append(out, models.Faction{Code: f.Code, Name: f.Name})
	}
	return out
}
