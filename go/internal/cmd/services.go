package main

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/auctionroom/go/internal/auction/catalog"
	"github.com/mcdev12/auctionroom/go/internal/auction/feed"
	"github.com/mcdev12/auctionroom/go/internal/auction/gateway"
	"github.com/mcdev12/auctionroom/go/internal/auction/orchestrator"
	"github.com/mcdev12/auctionroom/go/internal/auction/registry"
	"github.com/mcdev12/auctionroom/go/internal/config"
)

type Services struct {
	Gateway  *gateway.Service
	Registry *registry.Registry
	Feed     *feed.Publisher
}

func setupServices(ctx context.Context, cfg *config.Config) (*Services, error) {
	// Wire up the chain
	// Catalog → Gateway (sink) → Feed → Registry → Gateway (commands)

	players, err := setupCatalog(cfg)
	if err != nil {
		return nil, err
	}

	gw := gateway.NewService(gateway.DefaultConfig())
	sinks := orchestrator.Fanout{gw.Sink()}

	var pub *feed.Publisher
	if cfg.NATSURL != "" {
		feedCfg := feed.DefaultConfig()
		feedCfg.URL = cfg.NATSURL
		feedCfg.SubjectPrefix = cfg.FeedSubject
		pub, err = feed.Connect(feedCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to set up event feed: %w", err)
		}
		sinks = append(sinks, pub)
		log.Info().Str("nats_url", cfg.NATSURL).Str("subject", cfg.FeedSubject).Msg("event feed enabled")
	}

	clock := clockwork.NewRealClock()
	reg := registry.New(registry.Config{
		League:       cfg.League,
		Timing:       cfg.Timing,
		Catalog:      players,
		Sink:         sinks,
		Seed:         cfg.AISeed,
		IdleTTL:      cfg.IdleTTL,
		ConcludedTTL: cfg.ConcludedTTL,
		Clock:        clock,
		NewExecutor:  registry.LoopExecutors(ctx, clock),
	})
	gw.Attach(reg)

	return &Services{
		Gateway:  gw,
		Registry: reg,
		Feed:     pub,
	}, nil
}

func setupCatalog(cfg *config.Config) (orchestrator.Catalog, error) {
	if cfg.CatalogPath != "" {
		log.Info().Str("path", cfg.CatalogPath).Msg("using player catalog file")
		return catalog.NewFile(cfg.CatalogPath), nil
	}
	players, err := catalog.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load built-in catalog: %w", err)
	}
	return catalog.Static(players), nil
}
