// Package gateway is the client edge of the auction server: websocket
// connections, command routing and read-only HTTP state endpoints.
package gateway

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/auctionroom/go/internal/auction/orchestrator"
)

// Service is the auction gateway. Create it first, hand Sink to the room
// registry, then Attach the registry.
type Service struct {
	config            Config
	connectionManager *ConnectionManager
	wsHandler         *WebSocketHandler
	router            *Router
	stateHandler      *StateHandler
}

// Config holds configuration for the gateway service
type Config struct {
	ConnectionConfig ConnectionConfig
	Clock            clockwork.Clock
}

// DefaultConfig returns default configuration for the gateway
func DefaultConfig() Config {
	return Config{
		ConnectionConfig: DefaultConnectionConfig(),
		Clock:            clockwork.NewRealClock(),
	}
}

// NewService creates a gateway with no rooms attached yet
func NewService(config Config) *Service {
	cm := NewConnectionManager(config.ConnectionConfig)
	return &Service{
		config:            config,
		connectionManager: cm,
		wsHandler:         NewWebSocketHandler(cm),
	}
}

// Sink is where rooms deliver their events.
func (s *Service) Sink() orchestrator.Sink {
	return s.connectionManager
}

// Attach routes client commands and state reads to rooms.
func (s *Service) Attach(rooms Rooms) {
	s.router = NewRouter(rooms, s.connectionManager, s.config.Clock)
	s.stateHandler = NewStateHandler(rooms)
	s.connectionManager.SetHandler(s.router)
}

// Start delivers events to clients until ctx is done
func (s *Service) Start(ctx context.Context) {
	log.Info().Msg("starting auction gateway service")
	s.connectionManager.Start(ctx)
	log.Info().Msg("auction gateway service stopped")
}

// Routes returns the health, websocket and state routes.
func (s *Service) Routes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error().Err(err).Msg("failed to write health check response")
		}
	}).Methods(http.MethodGet)

	s.wsHandler.RegisterRoutes(r)
	if s.stateHandler != nil {
		s.stateHandler.RegisterStateRoutes(r)
	}
	log.Info().Msg("auction gateway routes registered")
	return r
}

// GetStats returns statistics about the gateway service
func (s *Service) GetStats() ConnectionStats {
	return s.connectionManager.GetConnectionStats()
}
