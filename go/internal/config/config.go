// Package config reads server settings from the environment and the
// optional league file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/mcdev12/auctionroom/go/internal/auction/orchestrator"
	"github.com/mcdev12/auctionroom/go/internal/auction/rules"
)

var ErrInvalidLeague = errors.New("invalid league config")

// Config holds everything the server binary needs.
type Config struct {
	Port         string
	LogLevel     zerolog.Level
	CatalogPath  string
	LeagueFile   string
	NATSURL      string
	FeedSubject  string
	IdleTTL      time.Duration
	ConcludedTTL time.Duration
	AISeed       int64

	League rules.League
	Timing orchestrator.Timing
}

// leagueFile is the layout of LEAGUE_CONFIG. Anything left out keeps its
// default.
type leagueFile struct {
	League rules.League        `yaml:"league"`
	Timing orchestrator.Timing `yaml:"timing"`
}

// Load reads environment variables (PORT, LOG_LEVEL, CATALOG_PATH,
// LEAGUE_CONFIG, NATS_URL, FEED_SUBJECT, ROOM_IDLE_TTL, ROOM_CONCLUDED_TTL,
// AI_SEED) and applies the league file when one is set.
func Load() (*Config, error) {
	level, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse LOG_LEVEL: %w", err)
	}

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		LogLevel:     level,
		CatalogPath:  os.Getenv("CATALOG_PATH"),
		LeagueFile:   os.Getenv("LEAGUE_CONFIG"),
		NATSURL:      os.Getenv("NATS_URL"),
		FeedSubject:  getEnv("FEED_SUBJECT", "auction.events"),
		IdleTTL:      getEnvAsDuration("ROOM_IDLE_TTL", 2*time.Hour),
		ConcludedTTL: getEnvAsDuration("ROOM_CONCLUDED_TTL", 30*time.Minute),
		AISeed:       int64(getEnvAsInt("AI_SEED", 0)),
		League:       rules.DefaultLeague(),
		Timing:       orchestrator.DefaultTiming(),
	}

	if cfg.LeagueFile != "" {
		league, timing, err := LoadLeague(cfg.LeagueFile)
		if err != nil {
			return nil, err
		}
		cfg.League, cfg.Timing = league, timing
	}
	return cfg, nil
}

// LoadLeague reads a league file on top of the defaults.
func LoadLeague(path string) (rules.League, orchestrator.Timing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return rules.League{}, orchestrator.Timing{}, fmt.Errorf("failed to read league config: %w", err)
	}

	lf := leagueFile{League: rules.DefaultLeague(), Timing: orchestrator.DefaultTiming()}
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return rules.League{}, orchestrator.Timing{}, fmt.Errorf("failed to parse league config: %w", err)
	}
	if err := Validate(lf.League, lf.Timing); err != nil {
		return rules.League{}, orchestrator.Timing{}, err
	}
	return lf.League, lf.Timing, nil
}

// Validate rejects leagues and timings a room cannot run with.
func Validate(l rules.League, t orchestrator.Timing) error {
	switch {
	case l.RosterCap <= 0:
		return fmt.Errorf("%w: roster_cap must be positive", ErrInvalidLeague)
	case l.OverseasCap < 0:
		return fmt.Errorf("%w: overseas_cap must not be negative", ErrInvalidLeague)
	case l.StartingPurse <= 0:
		return fmt.Errorf("%w: starting_purse must be positive", ErrInvalidLeague)
	case l.HomeCountry == "":
		return fmt.Errorf("%w: home_country is required", ErrInvalidLeague)
	case len(l.Franchises) < 2:
		return fmt.Errorf("%w: at least two franchises are required", ErrInvalidLeague)
	case t.Tick <= 0 || t.CountdownTicks <= 0:
		return fmt.Errorf("%w: countdown needs a positive tick and tick count", ErrInvalidLeague)
	}

	seen := make(map[string]bool, len(l.Franchises))
	for _, f := range l.Franchises {
		if f.Code == "" {
			return fmt.Errorf("%w: franchise without a code", ErrInvalidLeague)
		}
		if seen[f.Code] {
			return fmt.Errorf("%w: duplicate franchise %s", ErrInvalidLeague, f.Code)
		}
		seen[f.Code] = true
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
