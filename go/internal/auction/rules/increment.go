package rules

// NextBid returns the only amount a bidder may offer after current.
// Steps are 5 below 100, 10 below 200 and 20 from 200 upward.
func NextBid(current int) int {
	switch {
	case current < 100:
		return current + 5
	case current < 200:
		return current + 10
	default:
		return current + 20
	}
}

// Increment returns the step NextBid adds to current.
func Increment(current int) int {
	return NextBid(current) - current
}
