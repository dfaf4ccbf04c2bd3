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

	"nba-matchup-lab/internal/model"
	"nba-matchup-lab/internal/pipeline"
	"nba-matchup-lab/internal/reporting"
)

func main() {
	var (
		csvPath         = flag.String("csv", "", "Raw game log CSV to load")
		demo            = flag.Bool("demo", false, "Run against the built-in fixture season instead of a CSV")
		testSize        = flag.Float64("test-size", pipeline.DefaultTestSize, "Held-out share of matchup rows")
		threshold       = flag.Float64("threshold", model.DefaultThreshold, "Win classification cutoff")
		team            = flag.String("team", "", "Team abbreviation to predict for (requires -opponent)")
		opponent        = flag.String("opponent", "", "Opponent abbreviation")
		home            = flag.Bool("home", false, "Treat the team as playing at home")
		top             = flag.Int("top", pipeline.DefaultTopN, "Feature contributions to print")
		weightByMinutes = flag.Bool("weight-by-minutes", false, "Weight season averages by minutes played")
		outputDir       = flag.String("output-dir", "", "Directory for report artifacts (empty skips writing)")
	)
	flag.Parse()

	if *csvPath == "" && !*demo {
		fmt.Fprintln(os.Stderr, "Error: -csv is required (or pass -demo for fixture data)")
		flag.Usage()
		os.Exit(1)
	}
	if (*team == "") != (*opponent == "") {
		fmt.Fprintln(os.Stderr, "Error: -team and -opponent must be set together")
		os.Exit(1)
	}

	logger := log.New(os.Stderr, "[predict] ", log.LstdFlags)

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
		TestSize:        *testSize,
		Threshold:       *threshold,
		Team:            *team,
		Opponent:        *opponent,
		Home:            *home,
		TopN:            *top,
		WeightByMinutes: *weightByMinutes,
		OutputDir:       *outputDir,
	}
	if *demo {
		opts.CSVPath = ""
		opts.Raws = pipeline.FixtureRawRows()
	}

	result, err := pipeline.NewRunner(opts).WithLogger(logger).Run(ctx)
	if err != nil {
		logger.Fatalf("Pipeline failed: %v", err)
	}

	printResult(result)

	if *outputDir != "" {
		names := []string{
			reporting.ReportFilename,
			pipeline.TeamGamesFilename,
			pipeline.MatchupsFilename,
			pipeline.SeasonAveragesFilename,
		}
		if result.Gate != nil {
			names = append(names, pipeline.GateReportFilename)
		}
		fmt.Println("\nArtifacts:")
		for _, name := range names {
			fmt.Printf("  - %s\n", filepath.Join(*outputDir, name))
		}
	}
}

func printResult(result *pipeline.Result) {
	fmt.Printf("Dataset fingerprint: %s\n", result.Fingerprint)

	if !result.Sufficiency.AllPass {
		fmt.Println("Decision: INSUFFICIENT_DATA")
		for _, check := range result.Sufficiency.Checks {
			if !check.Pass {
				fmt.Printf("  failed: %s (threshold %s, actual %s)\n",
					check.Name, check.Threshold, check.Actual)
			}
		}
		return
	}

	eval := result.Evaluation
	fmt.Printf("Test accuracy: %.4f\n", eval.Accuracy)
	fmt.Printf("Test log-loss: %.4f\n", eval.LogLoss)
	fmt.Printf("Test ROC-AUC:  %.4f\n", eval.ROCAUC)
	fmt.Printf("Gate verdict:  %s\n", result.Gate.Verdict)

	if p := result.Prediction; p != nil {
		venue := "away"
		if p.Home {
			venue = "home"
		}
		outcome := "LOSS"
		if p.PredictedWin {
			outcome = "WIN"
		}
		fmt.Printf("\n%s vs %s (%s, %s game)\n", p.Team, p.Opponent, p.Team, venue)
		fmt.Printf("Win probability: %.4f (predicted %s)\n", p.Probability, outcome)
		fmt.Println("Top feature contributions:")
		for _, c := range p.Contributions {
			fmt.Printf("  %-14s %+.4f\n", c.Column, c.Contribution)
		}
	}
}
