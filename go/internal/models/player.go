package models

// Tier is the rarity classification of a player in the auction pool
type Tier string

const (
	TierElite    Tier = "Elite"
	TierOne      Tier = "Tier 1"
	TierTwo      Tier = "Tier 2"
	TierUncapped Tier = "Uncapped"
)

// Competitive reports whether the tier draws extra AI bidding waves.
func (t Tier) Competitive() bool {
	return t == TierElite || t == TierOne
}

// Role is the playing skill category of a player
type Role string

const (
	RoleBatsman      Role = "Batsman"
	RoleBowler       Role = "Bowler"
	RoleAllRounder   Role = "All-Rounder"
	RoleWicketKeeper Role = "Wicket-Keeper"
)

// SaleStatus records how a player left the block
type SaleStatus string

const (
	SaleStatusPending SaleStatus = ""
	SaleStatusSold    SaleStatus = "SOLD"
	SaleStatusUnsold  SaleStatus = "UNSOLD"
)

// Player represents a player offered in the auction pool.
// Prices are in lakhs; 100 lakhs make one crore.
type Player struct {
	Name      string `json:"name" yaml:"name"`
	Country   string `json:"country" yaml:"country"`
	Role      Role   `json:"skill" yaml:"skill"`
	Age       int    `json:"age" yaml:"age"`
	IsCaptain bool   `json:"isCaptain" yaml:"isCaptain"`
	Tier      Tier   `json:"tier" yaml:"tier"`
	BasePrice int    `json:"basePrice" yaml:"basePrice"`

	// Settlement outcome, written once when the bid window closes
	Status     SaleStatus `json:"status,omitempty" yaml:"-"`
	SoldTo     string     `json:"soldTo,omitempty" yaml:"-"`
	FinalPrice int        `json:"finalPrice,omitempty" yaml:"-"`
}

// Settled reports whether the player already has a sale outcome
func (p *Player) Settled() bool {
	return p.Status != SaleStatusPending
}
