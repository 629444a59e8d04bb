package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/mcdev12/auctionroom/go/internal/auction/catalog"
	"github.com/mcdev12/auctionroom/go/internal/auction/rules"
	"github.com/mcdev12/auctionroom/go/internal/config"
	"github.com/mcdev12/auctionroom/go/internal/models"
)

// Validates a player catalog and prints how it lines up against the league.
// Usage: check_catalog [players.yaml]. Without an argument the built-in
// catalog is checked. LEAGUE_CONFIG is honoured.
func main() {
	ctx := context.Background()

	// 1) Load players
	var (
		players []models.Player
		err     error
	)
	if len(os.Args) > 1 {
		players, err = catalog.NewFile(os.Args[1]).Players(ctx)
	} else {
		players, err = catalog.Default()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "load catalog: %v\n", err)
		os.Exit(1)
	}

	// 2) Load league
	league := rules.DefaultLeague()
	if path := os.Getenv("LEAGUE_CONFIG"); path != "" {
		league, _, err = config.LoadLeague(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load league: %v\n", err)
			os.Exit(1)
		}
	}

	// 3) Tally
	byTier := map[models.Tier]int{}
	byRole := map[models.Role]int{}
	overseas, basePrices := 0, 0
	for _, p := range players {
		byTier[p.Tier]++
		byRole[p.Role]++
		if p.Country != league.HomeCountry {
			overseas++
		}
		basePrices += p.BasePrice
	}

	fmt.Printf("Catalog: players=%d overseas=%d base_total=%s\n", len(players), overseas, models.FormatCrore(basePrices))
	for _, tier := range []models.Tier{models.TierElite, models.TierOne, models.TierTwo, models.TierUncapped} {
		fmt.Printf("  %-10s %d\n", tier, byTier[tier])
	}
	roles := make([]string, 0, len(byRole))
	for role := range byRole {
		roles = append(roles, string(role))
	}
	sort.Strings(roles)
	for _, role := range roles {
		need := league.Need(models.Role(role)) * len(league.Franchises)
		fmt.Printf("  %-14s %d (league needs %d)\n", role, byRole[models.Role(role)], need)
	}

	// 4) Warn where the pool cannot satisfy the league
	purses := league.StartingPurse * len(league.Franchises)
	fmt.Printf("League: franchises=%d purses_total=%s\n", len(league.Franchises), models.FormatCrore(purses))
	if basePrices > purses {
		fmt.Fprintf(os.Stderr, "warning: base prices exceed every purse combined; many players will go unsold\n")
	}
	if overseas > league.OverseasCap*len(league.Franchises) {
		fmt.Fprintf(os.Stderr, "warning: more overseas players than overseas slots\n")
	}
}
