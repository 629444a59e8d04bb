package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/auctionroom/go/internal/auction/events"
	"github.com/mcdev12/auctionroom/go/internal/auction/orchestrator"
	"github.com/mcdev12/auctionroom/go/internal/auction/registry"
)

// snapshotTimeout bounds how long a state read waits on a busy room
const snapshotTimeout = 2 * time.Second

// RoomStateResponse is the body of GET /api/rooms/{code}/state
type RoomStateResponse struct {
	RoomCode string           `json:"roomCode"`
	State    events.RoomState `json:"state"`
}

// RoomListResponse is the body of GET /api/rooms
type RoomListResponse struct {
	Rooms []orchestrator.Info `json:"rooms"`
}

// StateHandler handles HTTP requests for room state
type StateHandler struct {
	rooms Rooms
}

// NewStateHandler creates a new state handler
func NewStateHandler(rooms Rooms) *StateHandler {
	return &StateHandler{rooms: rooms}
}

// HandleGetRoomState handles GET /api/rooms/{code}/state
func (h *StateHandler) HandleGetRoomState(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	ctx, cancel := context.WithTimeout(r.Context(), snapshotTimeout)
	defer cancel()

	state, err := h.rooms.Snapshot(ctx, code)
	switch {
	case errors.Is(err, registry.ErrRoomNotFound), errors.Is(err, orchestrator.ErrRoomClosed):
		http.Error(w, "Room not found", http.StatusNotFound)
		return
	case err != nil:
		log.Error().Err(err).Str("room_code", code).Msg("failed to get room state")
		http.Error(w, "Failed to get room state", http.StatusInternalServerError)
		return
	}

	writeJSON(w, RoomStateResponse{RoomCode: code, State: state})
}

// HandleListRooms handles GET /api/rooms
func (h *StateHandler) HandleListRooms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, RoomListResponse{Rooms: h.rooms.Rooms()})
}

// RegisterStateRoutes registers state-related HTTP routes
func (h *StateHandler) RegisterStateRoutes(r *mux.Router) {
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/rooms", h.HandleListRooms).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{code}/state", h.HandleGetRoomState).Methods(http.MethodGet)
}

func writeJSON(w http.ResponseWriter, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
