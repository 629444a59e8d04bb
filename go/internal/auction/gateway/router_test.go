package gateway

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/auctionroom/go/internal/auction/events"
	"github.com/mcdev12/auctionroom/go/internal/auction/orchestrator"
	"github.com/mcdev12/auctionroom/go/internal/auction/registry"
	"github.com/mcdev12/auctionroom/go/internal/models"
)

type sent struct {
	ev    *events.Event
	conns []string
}

type recordingSink struct {
	mu  sync.Mutex
	got []sent
}

func (s *recordingSink) Send(ev *events.Event, conns []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = append(s.got, sent{ev: ev, conns: conns})
}

var _ orchestrator.Sink = (*recordingSink)(nil)

func newTestRouter(t *testing.T) (*Router, *MockRooms, *recordingSink) {
	ctrl := gomock.NewController(t)
	rooms := NewMockRooms(ctrl)
	sink := &recordingSink{}
	clock := clockwork.NewFakeClockAt(time.Date(2025, time.March, 22, 19, 30, 0, 0, time.UTC))
	return NewRouter(rooms, sink, clock), rooms, sink
}

func TestDispatch_RoutesCommands(t *testing.T) {
	csk := models.Faction{Code: "CSK", Name: "Chennai Super Kings"}

	tests := []struct {
		name   string
		msg    string
		expect func(m *MockRoomsMockRecorder)
	}{
		{
			name: "create session",
			msg:  `{"type":"create-session","payload":{"playerId":"p1"}}`,
			expect: func(m *MockRoomsMockRecorder) {
				m.Create("p1", "conn-1").Return("ABCDE", nil)
			},
		},
		{
			name: "create solo session",
			msg:  `{"type":"create-solo-session","payload":{"playerId":"p1"}}`,
			expect: func(m *MockRoomsMockRecorder) {
				m.CreateSolo("p1", "conn-1").Return("SOLO1", nil)
			},
		},
		{
			name: "join",
			msg:  `{"type":"join-session","payload":{"roomCode":"ABCDE","playerId":"p2"}}`,
			expect: func(m *MockRoomsMockRecorder) {
				m.Join("ABCDE", "p2", "conn-1").Return(nil)
			},
		},
		{
			name: "select faction",
			msg:  `{"type":"select-faction","payload":{"roomCode":"ABCDE","playerId":"p2","team":{"code":"CSK","name":"Chennai Super Kings"}}}`,
			expect: func(m *MockRoomsMockRecorder) {
				m.SelectFaction("ABCDE", "p2", csk).Return(nil)
			},
		},
		{
			name: "request start",
			msg:  `{"type":"request-start","payload":{"roomCode":"ABCDE","playerId":"p1"}}`,
			expect: func(m *MockRoomsMockRecorder) {
				m.RequestStart("ABCDE", "p1").Return(nil)
			},
		},
		{
			name: "identify binds the sending connection",
			msg:  `{"type":"identify","payload":{"roomCode":"ABCDE","playerId":"p1"}}`,
			expect: func(m *MockRoomsMockRecorder) {
				m.Identify("ABCDE", "p1", "conn-1").Return(nil)
			},
		},
		{
			name: "register",
			msg:  `{"type":"register-participant","payload":{"roomCode":"ABCDE","playerId":"p2","team":{"code":"CSK","name":"Chennai Super Kings"}}}`,
			expect: func(m *MockRoomsMockRecorder) {
				m.Register("ABCDE", "p2", csk).Return(nil)
			},
		},
		{
			name: "full state",
			msg:  `{"type":"request-full-state","payload":{"roomCode":"ABCDE","playerId":"p2"}}`,
			expect: func(m *MockRoomsMockRecorder) {
				m.RequestFullState("ABCDE", "p2").Return(nil)
			},
		},
		{
			name: "final state",
			msg:  `{"type":"request-final-state","payload":{"roomCode":"ABCDE","playerId":"p2"}}`,
			expect: func(m *MockRoomsMockRecorder) {
				m.RequestFinalState("ABCDE", "p2").Return(nil)
			},
		},
		{
			name: "bid",
			msg:  `{"type":"submit-bid","payload":{"roomCode":"ABCDE","teamCode":"CSK","amount":220}}`,
			expect: func(m *MockRoomsMockRecorder) {
				m.SubmitBid("ABCDE", "CSK", 220).Return(nil)
			},
		},
		{
			name: "decline",
			msg:  `{"type":"decline","payload":{"roomCode":"ABCDE","teamCode":"MI"}}`,
			expect: func(m *MockRoomsMockRecorder) {
				m.Decline("ABCDE", "MI").Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, rooms, sink := newTestRouter(t)
			tt.expect(rooms.EXPECT())

			require.NoError(t, router.Dispatch("conn-1", []byte(tt.msg)))
			assert.Empty(t, sink.got)
		})
	}
}

func TestDispatch_UnknownRoomRejectsJoin(t *testing.T) {
	router, rooms, sink := newTestRouter(t)
	rooms.EXPECT().Join("NOPE1", "p2", "conn-9").Return(registry.ErrRoomNotFound)

	err := router.Dispatch("conn-9", []byte(`{"type":"join-session","payload":{"roomCode":"NOPE1","playerId":"p2"}}`))
	assert.ErrorIs(t, err, registry.ErrRoomNotFound)

	require.Len(t, sink.got, 1)
	assert.Equal(t, []string{"conn-9"}, sink.got[0].conns)
	assert.Equal(t, events.TypeJoinRejected, sink.got[0].ev.Type)

	var payload events.JoinRejectedPayload
	require.NoError(t, sink.got[0].ev.Decode(&payload))
	assert.Equal(t, "Room not found.", payload.Reason)
	assert.Equal(t, "NOPE1", payload.RoomCode)
}

func TestDispatch_OtherErrorsAreNotAnswered(t *testing.T) {
	router, rooms, sink := newTestRouter(t)
	rooms.EXPECT().SubmitBid("NOPE1", "CSK", 40).Return(registry.ErrRoomNotFound)
	rooms.EXPECT().Decline("ABCDE", "CSK").Return(orchestrator.ErrRoomClosed)

	err := router.Dispatch("c", []byte(`{"type":"submit-bid","payload":{"roomCode":"NOPE1","teamCode":"CSK","amount":40}}`))
	assert.ErrorIs(t, err, registry.ErrRoomNotFound)
	err = router.Dispatch("c", []byte(`{"type":"decline","payload":{"roomCode":"ABCDE","teamCode":"CSK"}}`))
	assert.ErrorIs(t, err, orchestrator.ErrRoomClosed)
	assert.Empty(t, sink.got)
}

func TestDispatch_BadInput(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want error
	}{
		{"not json", `hello`, ErrMalformedCommand},
		{"unknown type", `{"type":"steal-player","payload":{}}`, ErrUnknownCommand},
		{"missing payload", `{"type":"submit-bid"}`, ErrMalformedCommand},
		{"wrong payload shape", `{"type":"submit-bid","payload":{"amount":"lots"}}`, ErrMalformedCommand},
		{"create without participant", `{"type":"create-session","payload":{}}`, ErrMalformedCommand},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _, _ := newTestRouter(t)
			err := router.Dispatch("c", []byte(tt.msg))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestHandleClose_Disconnects(t *testing.T) {
	router, rooms, _ := newTestRouter(t)
	rooms.EXPECT().Disconnect("conn-3")
	router.HandleClose("conn-3")
}

func TestHandleMessage_SwallowsErrors(t *testing.T) {
	router, rooms, _ := newTestRouter(t)
	rooms.EXPECT().Create("p1", "c").Return("", errors.New("boom"))
	assert.NotPanics(t, func() {
		router.HandleMessage("c", []byte(`{"type":"create-session","payload":{"playerId":"p1"}}`))
	})
}
