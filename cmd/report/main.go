package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"nba-matchup-lab/internal/pipeline"
	"nba-matchup-lab/internal/reporting"
)

func main() {
	var (
		csvPath         = flag.String("csv", "", "Raw game log CSV to load")
		outputDir       = flag.String("output-dir", "reports", "Directory for report artifacts")
		weightByMinutes = flag.Bool("weight-by-minutes", false, "Weight season averages by minutes played")
	)
	flag.Parse()

	if *csvPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -csv is required")
		flag.Usage()
		os.Exit(1)
	}

	logger := log.New(os.Stderr, "[report] ", log.LstdFlags)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	opts := pipeline.Options{
		CSVPath:         *csvPath,
		WeightByMinutes: *weightByMinutes,
		SummaryOnly:     true,
		OutputDir:       *outputDir,
	}

	result, err := pipeline.NewRunner(opts).WithLogger(logger).Run(ctx)
	if err != nil {
		logger.Fatalf("Report failed: %v", err)
	}

	counts := result.Report.Counts
	fmt.Println("Report generated:")
	for _, name := range []string{
		reporting.ReportFilename,
		reporting.TeamSummariesFilename,
		reporting.HomeAwayFilename,
		reporting.TopScorersFilename,
		pipeline.TeamGamesFilename,
		pipeline.MatchupsFilename,
		pipeline.SeasonAveragesFilename,
	} {
		fmt.Printf("  - %s\n", filepath.Join(*outputDir, name))
	}
	fmt.Printf("Rows: %d player, %d team game, %d matchup (%d teams, %d games)\n",
		counts.PlayerRows, counts.TeamGameRows, counts.MatchupRows, counts.Teams, counts.Games)
}
