package rules

import (
	"errors"

	"github.com/mcdev12/auctionroom/go/internal/models"
)

// Capacity violations returned by CheckEligibility
var (
	ErrRosterFull        = errors.New("roster is full")
	ErrOverseasCap       = errors.New("overseas quota reached")
	ErrInsufficientPurse = errors.New("purse does not cover next bid")
)

// CheckEligibility reports why a franchise may not bid on player at the
// current price, or nil when it may. Human and automated bidders go through
// the same check.
func (l League) CheckEligibility(f *models.Franchise, p *models.Player, currentBid int) error {
	if len(f.Squad) >= l.RosterCap {
		return ErrRosterFull
	}
	if p.Country != l.HomeCountry && f.OverseasCount(l.HomeCountry) >= l.OverseasCap {
		return ErrOverseasCap
	}
	if f.Purse < NextBid(currentBid) {
		return ErrInsufficientPurse
	}
	return nil
}

// CanAct is the boolean form of CheckEligibility.
func (l League) CanAct(f *models.Franchise, p *models.Player, currentBid int) bool {
	return l.CheckEligibility(f, p, currentBid) == nil
}
