// Package summary grades the squad a franchise finished the auction with.
package summary

import "github.com/mcdev12/auctionroom/go/internal/models"

// Report is the end-of-auction assessment of one squad
type Report struct {
	Score      int      `json:"score"`
	Grade      string   `json:"grade"`
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
	Spent      int      `json:"spent"`
	Overseas   int      `json:"overseas"`
}

// Analyze scores a squad on star power, role balance and captaincy.
func Analyze(squad []models.RosterEntry, home string) Report {
	var (
		r                                      Report
		elite, tierOne                         int
		batsmen, bowlers, allRounders, keepers int
		hasCaptain                             bool
	)

	for _, e := range squad {
		p := e.Player
		r.Spent += e.FinalPrice
		if p.Country != home {
			r.Overseas++
		}
		switch p.Tier {
		case models.TierElite:
			elite++
		case models.TierOne:
			tierOne++
		}
		switch p.Role {
		case models.RoleBatsman:
			batsmen++
		case models.RoleBowler:
			bowlers++
		case models.RoleAllRounder:
			allRounders++
		case models.RoleWicketKeeper:
			keepers++
		}
		if p.IsCaptain {
			hasCaptain = true
		}
	}

	r.Score += elite*25 + tierOne*15
	if elite > 2 {
		r.Strengths = append(r.Strengths, "Packed with superstar talent.")
	}
	if elite == 0 {
		r.Weaknesses = append(r.Weaknesses, "Lacks a true marquee player.")
	}

	if batsmen > 4 {
		r.Score += 10
	} else {
		r.Weaknesses = append(r.Weaknesses, "Light on specialist batting.")
	}
	if bowlers > 4 {
		r.Score += 10
	} else {
		r.Weaknesses = append(r.Weaknesses, "Needs more bowling options.")
	}
	if allRounders > 1 {
		r.Score += 15
	} else {
		r.Weaknesses = append(r.Weaknesses, "Lacks all-rounder depth.")
	}
	if keepers > 0 {
		r.Score += 5
	} else {
		r.Weaknesses = append(r.Weaknesses, "No specialist Wicket-Keeper!")
	}
	if allRounders > 2 {
		r.Strengths = append(r.Strengths, "Excellent all-rounder balance.")
	}
	if batsmen > 5 && bowlers > 5 {
		r.Strengths = append(r.Strengths, "Very balanced squad composition.")
	}

	if hasCaptain {
		r.Score += 10
		r.Strengths = append(r.Strengths, "Has a clear captaincy option.")
	} else {
		r.Weaknesses = append(r.Weaknesses, "No experienced captain in the squad.")
	}

	r.Grade = grade(r.Score)
	return r
}

func grade(score int) string {
	switch {
	case score > 120:
		return "A+"
	case score > 100:
		return "A"
	case score > 80:
		return "B+"
	case score > 65:
		return "B"
	case score > 50:
		return "C"
	default:
		return "D"
	}
}
