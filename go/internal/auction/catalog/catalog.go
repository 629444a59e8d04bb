// Package catalog loads the ordered player pool an auction runs through.
package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mcdev12/auctionroom/go/internal/models"
)

var (
	ErrEmpty         = errors.New("catalog has no players")
	ErrInvalidPlayer = errors.New("invalid player record")
)

//go:embed players.yaml
var defaultPlayers []byte

// Parse decodes a player list. JSON documents parse as well since YAML is a
// superset of JSON.
func Parse(data []byte) ([]models.Player, error) {
	var players []models.Player
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&players); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(players) == 0 {
		return nil, ErrEmpty
	}
	for i, p := range players {
		if err := validate(p); err != nil {
			return nil, fmt.Errorf("player %d (%q): %w", i, p.Name, err)
		}
	}
	return players, nil
}

func validate(p models.Player) error {
	switch {
	case p.Name == "":
		return fmt.Errorf("%w: missing name", ErrInvalidPlayer)
	case p.Country == "":
		return fmt.Errorf("%w: missing country", ErrInvalidPlayer)
	case p.BasePrice <= 0:
		return fmt.Errorf("%w: base price must be positive", ErrInvalidPlayer)
	case p.Age < 0:
		return fmt.Errorf("%w: negative age", ErrInvalidPlayer)
	}
	return nil
}

// Default returns the built-in player pool.
func Default() ([]models.Player, error) {
	return Parse(defaultPlayers)
}

// Static serves a fixed pool.
type Static []models.Player

// Players returns a copy of the pool.
func (s Static) Players(context.Context) ([]models.Player, error) {
	if len(s) == 0 {
		return nil, ErrEmpty
	}
	return append([]models.Player(nil), s...), nil
}

// File reads the pool from disk and keeps it until the file changes.
type File struct {
	path string

	mu      sync.Mutex
	modTime time.Time
	size    int64
	cached  []models.Player
}

// NewFile creates a file-backed catalog. Nothing is read until the first
// call to Players.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the file the catalog reads.
func (f *File) Path() string {
	return f.path
}

// Players returns a copy of the pool, re-reading the file when its size or
// modification time changed.
func (f *File) Players(ctx context.Context) ([]models.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	info, err := os.Stat(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat catalog %s: %w", f.path, err)
	}
	if f.cached == nil || !info.ModTime().Equal(f.modTime) || info.Size() != f.size {
		data, err := os.ReadFile(f.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog %s: %w", f.path, err)
		}
		players, err := Parse(data)
		if err != nil {
			return nil, err
		}
		f.cached, f.modTime, f.size = players, info.ModTime(), info.Size()
	}
	return append([]models.Player(nil), f.cached...), nil
}
