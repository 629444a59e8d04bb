package registry

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/auctionroom/go/internal/auction/events"
	"github.com/mcdev12/auctionroom/go/internal/auction/orchestrator"
	"github.com/mcdev12/auctionroom/go/internal/auction/rules"
	"github.com/mcdev12/auctionroom/go/internal/models"
)

var epoch = time.Date(2025, time.April, 2, 18, 0, 0, 0, time.UTC)

type delivery struct {
	ev    *events.Event
	conns []string
}

type captureSink struct {
	mu  sync.Mutex
	got []delivery
}

func (c *captureSink) Send(ev *events.Event, conns []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.got = append(c.got, delivery{ev: ev, conns: conns})
}

func (c *captureSink) ofType(typ events.Type) []delivery {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []delivery
	for _, d := range c.got {
		if d.ev.Type == typ {
			out = append(out, d)
		}
	}
	return out
}

type fixture struct {
	reg   *Registry
	sink  *captureSink
	execs map[string]*orchestrator.ManualExecutor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{sink: &captureSink{}, execs: make(map[string]*orchestrator.ManualExecutor)}
	pool := []models.Player{
		{Name: "Dhoni", Country: "India", Role: models.RoleWicketKeeper, Age: 43, IsCaptain: true, Tier: models.TierOne, BasePrice: 200},
		{Name: "Narine", Country: "West Indies", Role: models.RoleAllRounder, Age: 36, Tier: models.TierTwo, BasePrice: 100},
	}
	f.reg = New(Config{
		League: rules.DefaultLeague(),
		Timing: orchestrator.DefaultTiming(),
		Catalog: orchestrator.CatalogFunc(func(context.Context) ([]models.Player, error) {
			return pool, nil
		}),
		Sink:  f.sink,
		Seed:  99,
		Clock: clockwork.NewFakeClockAt(epoch),
		NewExecutor: func(code string) orchestrator.Executor {
			exec := orchestrator.NewManualExecutor(epoch)
			f.execs[code] = exec
			return exec
		},
	})
	t.Cleanup(f.reg.Close)
	return f
}

func TestCreate_AssignsUniqueCodes(t *testing.T) {
	f := newFixture(t)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := f.reg.Create("host", "conn")
		require.NoError(t, err)
		require.Len(t, code, codeLength)
		require.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}
	assert.Equal(t, 50, f.reg.Len())

	created := f.sink.ofType(events.TypeSessionCreated)
	require.Len(t, created, 50)
	assert.Equal(t, []string{"conn"}, created[0].conns)
}

func TestUnknownRoom(t *testing.T) {
	f := newFixture(t)
	assert.ErrorIs(t, f.reg.Join("NOPE1", "p", "c"), ErrRoomNotFound)
	assert.ErrorIs(t, f.reg.SubmitBid("NOPE1", "CSK", 10), ErrRoomNotFound)
	assert.ErrorIs(t, f.reg.Decline("NOPE1", "CSK"), ErrRoomNotFound)
	_, err := f.reg.Snapshot(context.Background(), "NOPE1")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestMultiplayerFlow(t *testing.T) {
	f := newFixture(t)
	code, err := f.reg.Create("host", "c-host")
	require.NoError(t, err)

	require.NoError(t, f.reg.Join(code, "guest", "c-guest"))
	require.NoError(t, f.reg.SelectFaction(code, "host", models.Faction{Code: "CSK"}))
	require.NoError(t, f.reg.SelectFaction(code, "guest", models.Faction{Code: "MI"}))
	require.NoError(t, f.reg.RequestStart(code, "host"))
	require.NoError(t, f.reg.Register(code, "host", models.Faction{Code: "CSK", Name: "Chennai Super Kings"}))
	require.NoError(t, f.reg.Register(code, "guest", models.Faction{Code: "MI", Name: "Mumbai Indians"}))

	state, err := f.reg.Snapshot(context.Background(), code)
	require.NoError(t, err)
	assert.Equal(t, models.AuctionStatusRunning, state.Status)
	assert.Equal(t, "Dhoni", state.PlayerPool[state.CurrentPlayerIndex].Name)

	require.NoError(t, f.reg.SubmitBid(code, "CSK", 220))
	state, err = f.reg.Snapshot(context.Background(), code)
	require.NoError(t, err)
	assert.Equal(t, 220, state.CurrentBid)
	assert.Equal(t, "CSK", state.CurrentBidder)

	// Late joiners are turned away once the auction runs
	require.NoError(t, f.reg.Join(code, "late", "c-late"))
	rejected := f.sink.ofType(events.TypeJoinRejected)
	require.Len(t, rejected, 1)
	assert.Equal(t, []string{"c-late"}, rejected[0].conns)
}

func TestDisconnectAndIdentify(t *testing.T) {
	f := newFixture(t)
	code, err := f.reg.CreateSolo("solo", "c-1")
	require.NoError(t, err)
	require.NoError(t, f.reg.Register(code, "solo", models.Faction{Code: "GT"}))

	f.reg.Disconnect("c-1")
	require.NoError(t, f.reg.Identify(code, "solo", "c-2"))
	require.NoError(t, f.reg.RequestFullState(code, "solo"))

	full := f.sink.ofType(events.TypeFullState)
	require.Len(t, full, 1)
	assert.Equal(t, []string{"c-2"}, full[0].conns)
}

func TestSoloRunsToFinalState(t *testing.T) {
	f := newFixture(t)
	code, err := f.reg.CreateSolo("solo", "c-1")
	require.NoError(t, err)
	require.NoError(t, f.reg.Register(code, "solo", models.Faction{Code: "RR"}))

	f.execs[code].RunUntilIdle(2 * time.Hour)
	require.Len(t, f.sink.ofType(events.TypeSessionConcluded), 1)

	require.NoError(t, f.reg.RequestFinalState(code, "solo"))
	finals := f.sink.ofType(events.TypeFinalState)
	require.Len(t, finals, 1)

	var final events.FinalStatePayload
	require.NoError(t, finals[0].ev.Decode(&final))
	assert.Equal(t, "RR", final.MyTeamCode)
	assert.Len(t, final.Reports, 10)
	assert.Equal(t, models.AuctionStatusConcluded, final.Room.Status)
}

func TestSweep_RetentionPolicy(t *testing.T) {
	f := newFixture(t)
	lobby, err := f.reg.Create("a", "c-a")
	require.NoError(t, err)
	running, err := f.reg.Create("b", "c-b")
	require.NoError(t, err)
	done, err := f.reg.CreateSolo("c", "c-c")
	require.NoError(t, err)

	require.NoError(t, f.reg.RequestStart(running, "b"))
	require.NoError(t, f.reg.Register(running, "b", models.Faction{Code: "DC"}))
	require.NoError(t, f.reg.Register(done, "c", models.Faction{Code: "SRH"}))
	f.execs[done].RunUntilIdle(2 * time.Hour)
	doneRoom, _ := f.reg.Room(done)
	require.Equal(t, models.AuctionStatusConcluded, doneRoom.Info().Status)
	finished := doneRoom.Info().ConcludedAt

	assert.Zero(t, f.reg.Sweep(finished.Add(29*time.Minute)))
	assert.Equal(t, 1, f.reg.Sweep(finished.Add(30*time.Minute)))
	_, err = f.reg.Room(done)
	assert.ErrorIs(t, err, ErrRoomNotFound)
	assert.True(t, f.execs[done].Stopped())

	assert.Equal(t, 1, f.reg.Sweep(epoch.Add(3*time.Hour)))
	_, err = f.reg.Room(lobby)
	assert.ErrorIs(t, err, ErrRoomNotFound)

	_, err = f.reg.Room(running)
	assert.NoError(t, err, "running auctions are never evicted")

	infos := f.reg.Rooms()
	require.Len(t, infos, 1)
	assert.Equal(t, running, infos[0].Code)
	assert.Equal(t, models.AuctionStatusRunning, infos[0].Status)
}

func TestRun_SweepsOnTicker(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	f := newFixture(t)
	_, err := f.reg.Create("a", "c-a")
	require.NoError(t, err)
	clock := f.reg.cfg.Clock.(*clockwork.FakeClock)

	go f.reg.Run(ctx)
	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	clock.Advance(3 * time.Hour)

	require.Eventually(t, func() bool { return f.reg.Len() == 0 }, 2*time.Second, 10*time.Millisecond)
}
