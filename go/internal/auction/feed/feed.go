// Package feed mirrors room events onto NATS so dashboards and other
// processes can watch auctions live. It is fire-and-forget: nothing is
// stored and a missing subscriber loses nothing that clients need.
package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/auctionroom/go/internal/auction/events"
)

// Config holds NATS connection settings for the feed.
type Config struct {
	URL           string
	SubjectPrefix string
	MaxReconnects int
	ReconnectWait time.Duration
}

// DefaultConfig returns settings for a local NATS server.
func DefaultConfig() Config {
	return Config{
		URL:           nats.DefaultURL,
		SubjectPrefix: "auction.events",
		MaxReconnects: -1, // Infinite
		ReconnectWait: 2 * time.Second,
	}
}

// msgPublisher is the part of *nats.Conn the feed uses.
type msgPublisher interface {
	PublishMsg(m *nats.Msg) error
}

// Publisher implements orchestrator.Sink on top of core NATS publish.
type Publisher struct {
	pub    msgPublisher
	nc     *nats.Conn
	prefix string
}

// Connect dials NATS and returns a publisher.
func Connect(cfg Config) (*Publisher, error) {
	opts := []nats.Option{
		nats.Name("auctionroom-feed"),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Error().Err(err).Msg("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconnected")
		}),
		nats.ErrorHandler(func(nc *nats.Conn, sub *nats.Subscription, err error) {
			log.Error().Err(err).Msg("NATS error")
		}),
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}
	p := newPublisher(nc, cfg.SubjectPrefix)
	p.nc = nc
	return p, nil
}

func newPublisher(pub msgPublisher, prefix string) *Publisher {
	if prefix == "" {
		prefix = DefaultConfig().SubjectPrefix
	}
	return &Publisher{pub: pub, prefix: prefix}
}

// Subject is where events of typ for room are published.
func Subject(prefix, room string, typ events.Type) string {
	return fmt.Sprintf("%s.%s.%s", prefix, strings.ToLower(room), typ)
}

// Send implements orchestrator.Sink. Only events addressed to the whole
// room are mirrored; per-participant snapshots stay private.
func (p *Publisher) Send(ev *events.Event, _ []string) {
	if !Mirrored(ev.Type) {
		return
	}
	msg := &nats.Msg{
		Subject: Subject(p.prefix, ev.Room, ev.Type),
		Data:    ev.Data,
		Header: nats.Header{
			"Event-Type": []string{string(ev.Type)},
			"Event-ID":   []string{ev.ID},
			"Room-Code":  []string{ev.Room},
			"Event-Time": []string{ev.Timestamp.UTC().Format(time.RFC3339Nano)},
		},
	}
	if err := p.pub.PublishMsg(msg); err != nil {
		log.Warn().Err(err).Str("subject", msg.Subject).Msg("failed to publish feed event")
	}
}

// Mirrored reports whether events of typ go to the feed.
func Mirrored(typ events.Type) bool {
	switch typ {
	case events.TypeLobbyState,
		events.TypeGameStarting,
		events.TypeItemPresented,
		events.TypeAuctionUpdate,
		events.TypeItemSettled,
		events.TypeSessionConcluded:
		return true
	}
	return false
}

// Close drains pending messages and closes the connection.
func (p *Publisher) Close() error {
	if p.nc == nil {
		return nil
	}
	if err := p.nc.Drain(); err != nil {
		p.nc.Close()
		return fmt.Errorf("drain NATS connection: %w", err)
	}
	return nil
}
