package pipeline

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"nba-matchup-lab/internal/csvio"
	"nba-matchup-lab/internal/decision"
	"nba-matchup-lab/internal/domain"
	"nba-matchup-lab/internal/features"
	"nba-matchup-lab/internal/gamelog"
	"nba-matchup-lab/internal/model"
	"nba-matchup-lab/internal/reporting"
)

// Run defaults.
const (
	DefaultTestSize = 0.2
	DefaultTopN     = 5
)

// Derived frame filenames written next to the report.
const (
	TeamGamesFilename      = "team_games.csv"
	MatchupsFilename       = "matchups.csv"
	SeasonAveragesFilename = "season_averages.csv"
)

// GateReportFilename is the standalone acceptance gate report, written only
// when a model was fitted.
const GateReportFilename = "GATE_REPORT.md"

// Options contains configuration for a pipeline run.
type Options struct {
	CSVPath string           // raw game log CSV; ignored when Raws is set
	Raws    []gamelog.RawRow // in-memory input for demo mode and tests

	TestSize  float64 // held-out share of matchup rows; default DefaultTestSize
	Threshold float64 // win classification cutoff; default model.DefaultThreshold

	// Optional synthesized matchup to score after fitting. Both Team and
	// Opponent must be set to request one.
	Team     string
	Opponent string
	Home     bool
	TopN     int // contribution rows in the explanation; default DefaultTopN

	WeightByMinutes bool // weight season averages by minutes played

	// SummaryOnly stops after the data summary stages: no sufficiency
	// checks, no model, no gate.
	SummaryOnly bool

	OutputDir string // empty skips writing artifacts
}

// Result carries everything a run produced. Evaluation, Gate, and Prediction
// stay nil when sufficiency fails and model fitting is skipped.
type Result struct {
	Report      *reporting.Report
	Fingerprint string
	Sufficiency *SufficiencyResult
	Evaluation  *model.EvaluationResult
	Gate        *decision.Result
	Prediction  *reporting.PredictionSection
}

// Runner orchestrates the full run: read and normalize game logs, engineer
// features, fit and evaluate the classifier, apply the acceptance gate, and
// write the report artifacts.
type Runner struct {
	opts        Options
	sufficiency *SufficiencyChecker
	gate        *decision.Evaluator
	logger      *log.Logger
	clock       func() time.Time
}

// NewRunner creates a runner for the given options.
func NewRunner(opts Options) *Runner {
	if opts.TestSize == 0 {
		opts.TestSize = DefaultTestSize
	}
	if opts.Threshold == 0 {
		opts.Threshold = model.DefaultThreshold
	}
	if opts.TopN == 0 {
		opts.TopN = DefaultTopN
	}
	return &Runner{
		opts:        opts,
		sufficiency: NewSufficiencyChecker(),
		gate:        decision.NewEvaluator(),
		logger:      log.Default(),
		clock:       func() time.Time { return time.Now().UTC() },
	}
}

// WithLogger sets the runner's logger.
func (r *Runner) WithLogger(logger *log.Logger) *Runner {
	r.logger = logger
	return r
}

// WithClock sets a custom clock function for deterministic report timestamps.
func (r *Runner) WithClock(clock func() time.Time) *Runner {
	r.clock = clock
	return r
}

// WithSufficiencyChecker replaces the default sufficiency checker.
func (r *Runner) WithSufficiencyChecker(c *SufficiencyChecker) *Runner {
	r.sufficiency = c
	return r
}

// WithGateEvaluator replaces the default acceptance gate evaluator.
func (r *Runner) WithGateEvaluator(e *decision.Evaluator) *Runner {
	r.gate = e
	return r
}

// Run executes the full pipeline and writes output files when an output
// directory is configured:
// - REPORT.md, and GATE_REPORT.md once a model was fitted
// - team_summaries.csv, home_away_summary.csv, top_scorers.csv
// - team_games.csv, matchups.csv, season_averages.csv
//
// A failed sufficiency check is not an error: the report records the failed
// checks and the model stages are skipped.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	raws := r.opts.Raws
	if raws == nil {
		if r.opts.CSVPath == "" {
			return nil, fmt.Errorf("no input: a CSV path or raw rows are required")
		}
		var err error
		raws, err = csvio.ReadRawGameLog(r.opts.CSVPath)
		if err != nil {
			return nil, err
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	players, err := gamelog.Normalize(raws)
	if err != nil {
		return nil, fmt.Errorf("normalize game logs: %w", err)
	}
	r.logger.Printf("Normalized %d player rows", len(players))

	teamRows := features.AggregateTeamGames(players)
	matchups, err := features.BuildMatchupRows(teamRows)
	if err != nil {
		return nil, fmt.Errorf("build matchup rows: %w", err)
	}
	r.logger.Printf("Aggregated %d team games into %d matchup rows", len(teamRows), len(matchups))

	train, test, err := ChronologicalSplit(matchups, r.opts.TestSize)
	if err != nil {
		return nil, err
	}

	averages := features.SeasonAverages(teamRows, features.SeasonAverageOptions{
		WeightByMinutes: r.opts.WeightByMinutes,
	})

	report := &reporting.Report{
		GeneratedAt:        r.clock(),
		DatasetFingerprint: DatasetFingerprint(players),
		Counts: reporting.RowCounts{
			PlayerRows:   len(players),
			TeamGameRows: len(teamRows),
			MatchupRows:  len(matchups),
			TrainRows:    len(train),
			TestRows:     len(test),
			Teams:        countTeams(teamRows),
			Games:        countGames(teamRows),
		},
		TeamSummaries: reporting.ComputeTeamSummaries(teamRows),
		HomeAway:      reporting.ComputeHomeAwaySummary(teamRows),
		TopScorers:    reporting.ComputeTopScorers(players, 0),
	}

	result := &Result{Report: report, Fingerprint: report.DatasetFingerprint}

	if r.opts.SummaryOnly {
		if err := r.writeArtifacts(report, teamRows, matchups, averages, nil); err != nil {
			return nil, err
		}
		return result, nil
	}

	suff := r.sufficiency.Check(matchups, train)
	report.Sufficiency = sufficiencyCheckRows(suff.Checks)
	report.SufficiencyPassed = suff.AllPass
	result.Sufficiency = suff

	if !suff.AllPass {
		r.logger.Printf("Data sufficiency failed, skipping model fit")
		if err := r.writeArtifacts(report, teamRows, matchups, averages, nil); err != nil {
			return nil, err
		}
		return result, nil
	}

	trainObs := toObservations(train)
	testObs := toObservations(test)

	predictor := model.NewMatchupPredictor()
	if err := predictor.Fit(trainObs, domain.ModelFeatureColumns()); err != nil {
		return nil, fmt.Errorf("fit model: %w", err)
	}

	eval, err := predictor.Evaluate(testObs)
	if err != nil {
		return nil, fmt.Errorf("evaluate model: %w", err)
	}
	report.Evaluation = &eval
	result.Evaluation = &eval
	r.logger.Printf("Evaluation: accuracy=%.4f log-loss=%.4f roc-auc=%.4f",
		eval.Accuracy, eval.LogLoss, eval.ROCAUC)

	gate := r.gate.Evaluate(decision.BuildInput(eval, testObs))
	report.Gate = &reporting.GateSection{
		Verdict: string(gate.Verdict),
		Checks:  gateCheckRows(gate.Checks),
	}
	result.Gate = gate
	r.logger.Printf("Acceptance gate verdict: %s", gate.Verdict)

	if r.opts.Team != "" && r.opts.Opponent != "" {
		prediction, err := r.predictMatchup(predictor, averages)
		if err != nil {
			return nil, err
		}
		report.Prediction = prediction
		result.Prediction = prediction
		r.logger.Printf("Win probability for %s vs %s: %.4f",
			prediction.Team, prediction.Opponent, prediction.Probability)
	}

	if err := r.writeArtifacts(report, teamRows, matchups, averages, gate); err != nil {
		return nil, err
	}
	return result, nil
}

// predictMatchup scores a synthesized matchup built from season averages.
func (r *Runner) predictMatchup(predictor *model.MatchupPredictor, averages []domain.SeasonAverage) (*reporting.PredictionSection, error) {
	synth, err := features.SynthesizeMatchup(averages, r.opts.Team, r.opts.Opponent, r.opts.Home)
	if err != nil {
		return nil, fmt.Errorf("synthesize matchup: %w", err)
	}

	explanation, err := predictor.Explain(synth.ModelFeatures(), r.opts.TopN)
	if err != nil {
		return nil, fmt.Errorf("explain matchup: %w", err)
	}

	return &reporting.PredictionSection{
		Team:          r.opts.Team,
		Opponent:      r.opts.Opponent,
		Home:          r.opts.Home,
		Probability:   explanation.Probability,
		PredictedWin:  explanation.Probability >= r.opts.Threshold,
		Contributions: explanation.Contributions,
	}, nil
}

// writeArtifacts writes the report and the derived CSV frames when an output
// directory is configured.
func (r *Runner) writeArtifacts(report *reporting.Report, teamRows []domain.TeamGameRow, matchups []domain.MatchupRow, averages []domain.SeasonAverage, gate *decision.Result) error {
	if r.opts.OutputDir == "" {
		return nil
	}

	if err := reporting.NewGenerator(r.opts.OutputDir).Write(report); err != nil {
		return err
	}
	if gate != nil {
		md := decision.RenderMarkdown(gate)
		if err := os.WriteFile(filepath.Join(r.opts.OutputDir, GateReportFilename), []byte(md), 0644); err != nil {
			return err
		}
	}
	if err := csvio.WriteTeamGameRows(filepath.Join(r.opts.OutputDir, TeamGamesFilename), teamRows); err != nil {
		return err
	}
	if err := csvio.WriteMatchupRows(filepath.Join(r.opts.OutputDir, MatchupsFilename), matchups); err != nil {
		return err
	}
	if err := csvio.WriteSeasonAverages(filepath.Join(r.opts.OutputDir, SeasonAveragesFilename), averages); err != nil {
		return err
	}
	r.logger.Printf("Wrote report artifacts to %s", r.opts.OutputDir)
	return nil
}

func toObservations(rows []domain.MatchupRow) []model.Observation {
	obs := make([]model.Observation, len(rows))
	for i := range rows {
		obs[i] = model.Observation{Features: rows[i].ModelFeatures(), Win: rows[i].Win}
	}
	return obs
}

func sufficiencyCheckRows(checks []SufficiencyCheck) []reporting.CheckRow {
	rows := make([]reporting.CheckRow, len(checks))
	for i, c := range checks {
		rows[i] = reporting.CheckRow{Name: c.Name, Threshold: c.Threshold, Actual: c.Actual, Pass: c.Pass}
	}
	return rows
}

func gateCheckRows(checks []decision.Check) []reporting.CheckRow {
	rows := make([]reporting.CheckRow, len(checks))
	for i, c := range checks {
		rows[i] = reporting.CheckRow{Name: c.Name, Threshold: c.Threshold, Actual: c.Actual, Pass: c.Pass}
	}
	return rows
}

func countTeams(rows []domain.TeamGameRow) int {
	teams := make(map[string]bool)
	for i := range rows {
		teams[rows[i].Team] = true
	}
	return len(teams)
}

func countGames(rows []domain.TeamGameRow) int {
	games := make(map[string]bool)
	for i := range rows {
		games[rows[i].GameID] = true
	}
	return len(games)
}
