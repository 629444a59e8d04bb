package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/auctionroom/go/internal/models"
)

const twoPlayersJSON = `[
  {"name": "MS Dhoni", "country": "India", "skill": "Wicket-Keeper", "age": 43, "isCaptain": true, "tier": "Tier 1", "basePrice": 200},
  {"name": "Andre Russell", "country": "West Indies", "skill": "All-Rounder", "age": 36, "isCaptain": false, "tier": "Tier 2", "basePrice": 100}
]`

func TestParse_JSONDocument(t *testing.T) {
	players, err := Parse([]byte(twoPlayersJSON))
	require.NoError(t, err)
	require.Len(t, players, 2)

	assert.Equal(t, models.Player{
		Name:      "MS Dhoni",
		Country:   "India",
		Role:      models.RoleWicketKeeper,
		Age:       43,
		IsCaptain: true,
		Tier:      models.TierOne,
		BasePrice: 200,
	}, players[0])
	assert.Equal(t, models.RoleAllRounder, players[1].Role)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{name: "empty list", doc: "[]", want: ErrEmpty},
		{name: "missing name", doc: `[{"country": "India", "basePrice": 20}]`, want: ErrInvalidPlayer},
		{name: "zero price", doc: `[{"name": "X", "country": "India", "basePrice": 0}]`, want: ErrInvalidPlayer},
		{name: "missing country", doc: `[{"name": "X", "basePrice": 20}]`, want: ErrInvalidPlayer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := Parse([]byte("name: [unterminated"))
	assert.Error(t, err)
}

func TestDefault_IsValid(t *testing.T) {
	players, err := Default()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(players), 30)

	tiers := map[models.Tier]int{}
	for _, p := range players {
		tiers[p.Tier]++
		assert.False(t, p.Settled(), p.Name)
	}
	for _, tier := range []models.Tier{models.TierElite, models.TierOne, models.TierTwo, models.TierUncapped} {
		assert.NotZero(t, tiers[tier], tier)
	}
}

func TestStatic_ReturnsCopies(t *testing.T) {
	s := Static{{Name: "A", Country: "India", BasePrice: 20}}
	got, err := s.Players(context.Background())
	require.NoError(t, err)
	got[0].Name = "changed"
	assert.Equal(t, "A", s[0].Name)

	_, err = Static(nil).Players(context.Background())
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestFile_CachesUntilChanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "players.json")
	require.NoError(t, os.WriteFile(path, []byte(twoPlayersJSON), 0o600))

	f := NewFile(path)
	first, err := f.Players(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 2)
	first[0].Name = "mutated"

	again, err := f.Players(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "MS Dhoni", again[0].Name)

	updated := `- {name: Shami, country: India, skill: Bowler, age: 34, tier: Tier 2, basePrice: 75}`
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o600))
	later := time.Now().Add(time.Minute)
	require.NoError(t, os.Chtimes(path, later, later))

	reloaded, err := f.Players(context.Background())
	require.NoError(t, err)
	require.Len(t, reloaded, 1)
	assert.Equal(t, "Shami", reloaded[0].Name)
}

func TestFile_Missing(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "nope.yaml"))
	_, err := f.Players(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = f.Players(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
