package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"nba-matchup-lab/internal/csvio"
	"nba-matchup-lab/internal/gamelog"
	"nba-matchup-lab/internal/statsapi"
)

func main() {
	var (
		season        = flag.String("season", "2023-24", "Season to fetch, in provider format (e.g. 2023-24)")
		cacheDir      = flag.String("cache-dir", "cache", "Directory for per-player game log cache files")
		out           = flag.String("out", "all_players.csv", "Path for the combined raw game log CSV")
		normalizedOut = flag.String("normalized-out", "", "Optional path for a normalized per-player CSV")
		delay         = flag.Duration("delay", statsapi.DefaultFetchDelay, "Pause between provider requests")
		limit         = flag.Int("limit", 0, "Fetch at most this many players (0 = all)")
		timeout       = flag.Duration("timeout", statsapi.DefaultTimeout, "HTTP request timeout")
	)
	flag.Parse()

	logger := log.New(os.Stderr, "[fetch] ", log.LstdFlags)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// A first signal stops after the in-flight player; a second one
	// aborts immediately. Cached players are reused on the next run.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Printf("Received signal %v, finishing the current player...", sig)
		cancel()
		<-sigCh
		logger.Println("Forced shutdown")
		os.Exit(1)
	}()

	client := statsapi.NewClient(statsapi.WithTimeout(*timeout))
	fetcher := statsapi.NewFetcher(statsapi.FetcherOptions{
		Source:   client,
		CacheDir: *cacheDir,
		Delay:    *delay,
		Limit:    *limit,
		Logger:   logger,
	})

	rows, err := fetcher.Run(ctx, *season)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Println("Fetch cancelled; rerun to resume from the cache")
			os.Exit(1)
		}
		logger.Fatalf("Fetch failed: %v", err)
	}

	if err := csvio.WriteRawGameLog(*out, rows); err != nil {
		logger.Fatalf("Write %s: %v", *out, err)
	}
	logger.Printf("Wrote %d raw rows to %s", len(rows), *out)

	if *normalizedOut != "" {
		players, err := gamelog.Normalize(rows)
		if err != nil {
			logger.Fatalf("Normalize: %v", err)
		}
		if err := csvio.WritePlayerRows(*normalizedOut, players); err != nil {
			logger.Fatalf("Write %s: %v", *normalizedOut, err)
		}
		logger.Printf("Wrote %d normalized rows to %s", len(players), *normalizedOut)
	}
}
