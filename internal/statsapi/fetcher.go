package statsapi

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"nba-matchup-lab/internal/csvio"
	"nba-matchup-lab/internal/gamelog"
)

// DefaultFetchDelay spaces successive provider requests far enough apart to
// stay under the rate limit.
const DefaultFetchDelay = 600 * time.Millisecond

// LogSource provides the player index and per-player game logs. *Client
// implements it; tests substitute a fake.
type LogSource interface {
	PlayerIndex(ctx context.Context, season string) ([]Player, error)
	PlayerGameLog(ctx context.Context, player Player, season string) ([]gamelog.RawRow, error)
}

// FetcherOptions contains configuration for creating a Fetcher.
type FetcherOptions struct {
	Source   LogSource
	CacheDir string        // Per-player CSV cache; empty disables caching
	Delay    time.Duration // Default: DefaultFetchDelay
	Limit    int           // Fetch at most this many players; 0 means all
	Logger   *log.Logger
}

// Fetcher downloads one season of game logs for every indexed player. Each
// player's rows are cached as a CSV file so an interrupted run resumes where
// it left off instead of re-fetching.
type Fetcher struct {
	source   LogSource
	cacheDir string
	delay    time.Duration
	limit    int
	logger   *log.Logger
}

// NewFetcher creates a new game log fetcher.
func NewFetcher(opts FetcherOptions) *Fetcher {
	delay := opts.Delay
	if delay <= 0 {
		delay = DefaultFetchDelay
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Fetcher{
		source:   opts.Source,
		cacheDir: opts.CacheDir,
		delay:    delay,
		limit:    opts.Limit,
		logger:   logger,
	}
}

// Run fetches game logs for every player in the season index and returns the
// combined rows. A failure for one player is logged and skipped; the run only
// aborts when the index fetch fails or the context is cancelled.
func (f *Fetcher) Run(ctx context.Context, season string) ([]gamelog.RawRow, error) {
	players, err := f.source.PlayerIndex(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("player index: %w", err)
	}
	if f.limit > 0 && len(players) > f.limit {
		players = players[:f.limit]
	}

	if f.cacheDir != "" {
		if err := os.MkdirAll(f.cacheDir, 0755); err != nil {
			return nil, fmt.Errorf("create cache dir: %w", err)
		}
	}

	f.logger.Printf("Fetching %s game logs for %d players", season, len(players))

	var combined []gamelog.RawRow
	fetched, cacheHits := 0, 0
	for _, player := range players {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rows, cached, err := f.playerRows(ctx, player, season)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			f.logger.Printf("Skipping %s (player %d): %v", player.Name, player.ID, err)
			continue
		}
		combined = append(combined, rows...)
		if cached {
			cacheHits++
			continue
		}
		fetched++

		// Fixed inter-request delay; cache hits make no request.
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.delay):
		}
	}

	f.logger.Printf("Collected %d rows (%d players fetched, %d from cache)",
		len(combined), fetched, cacheHits)
	return combined, nil
}

// playerRows returns one player's rows, preferring the cache. The second
// return reports whether the rows came from the cache.
func (f *Fetcher) playerRows(ctx context.Context, player Player, season string) ([]gamelog.RawRow, bool, error) {
	path := f.cachePath(player)
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			rows, err := csvio.ReadRawGameLog(path)
			if err == nil {
				return rows, true, nil
			}
			f.logger.Printf("Cache read failed for %s, re-fetching: %v", player.Name, err)
		}
	}

	rows, err := f.source.PlayerGameLog(ctx, player, season)
	if err != nil {
		return nil, false, err
	}

	if path != "" && len(rows) > 0 {
		if err := csvio.WriteRawGameLog(path, rows); err != nil {
			f.logger.Printf("Cache write failed for %s: %v", player.Name, err)
		}
	}
	return rows, false, nil
}

func (f *Fetcher) cachePath(player Player) string {
	if f.cacheDir == "" {
		return ""
	}
	return filepath.Join(f.cacheDir, fmt.Sprintf("%d.csv", player.ID))
}
