package orchestrator

import (
	"context"

	"github.com/mcdev12/auctionroom/go/internal/auction/events"
	"github.com/mcdev12/auctionroom/go/internal/models"
)

// Sink receives every event a room emits together with the connections it
// is addressed to. Send is called on the room's executor and must not block.
type Sink interface {
	Send(ev *events.Event, connIDs []string)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ev *events.Event, connIDs []string)

// Send implements Sink.
func (f SinkFunc) Send(ev *events.Event, connIDs []string) {
	f(ev, connIDs)
}

// Fanout delivers each event to every sink in order.
type Fanout []Sink

// Send implements Sink.
func (f Fanout) Send(ev *events.Event, connIDs []string) {
	for _, s := range f {
		if s != nil {
			s.Send(ev, connIDs)
		}
	}
}

type discardSink struct{}

func (discardSink) Send(*events.Event, []string) {}

// Catalog supplies the ordered player pool when a room starts.
type Catalog interface {
	Players(ctx context.Context) ([]models.Player, error)
}

// CatalogFunc adapts a function to Catalog.
type CatalogFunc func(ctx context.Context) ([]models.Player, error)

// Players implements Catalog.
func (f CatalogFunc) Players(ctx context.Context) ([]models.Player, error) {
	return f(ctx)
}
