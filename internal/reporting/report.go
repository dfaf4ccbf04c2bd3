package reporting

import (
	"time"

	"nba-matchup-lab/internal/model"
)

// Report represents one pipeline run's report structure.
type Report struct {
	// Metadata
	GeneratedAt        time.Time
	DatasetFingerprint string

	// Row counts through the pipeline stages
	Counts RowCounts

	// Data sufficiency checks
	Sufficiency       []CheckRow
	SufficiencyPassed bool

	// Held-out evaluation (nil when no model was fitted)
	Evaluation *model.EvaluationResult

	// Acceptance gate verdict (nil when no model was fitted)
	Gate *GateSection

	// Data summaries (sorted, model-independent)
	TeamSummaries []TeamSummaryRow
	HomeAway      []HomeAwayRow
	TopScorers    []TopScorerRow

	// Requested matchup prediction (nil when none was requested)
	Prediction *PredictionSection
}

// CheckRow represents one sufficiency or gate criterion.
type CheckRow struct {
	Name      string
	Threshold string
	Actual    string
	Pass      bool
}

// RowCounts tracks frame sizes through the pipeline stages.
type RowCounts struct {
	PlayerRows   int
	TeamGameRows int
	MatchupRows  int
	TrainRows    int
	TestRows     int
	Teams        int
	Games        int
}

// GateSection mirrors the acceptance gate verdict and its checklist.
type GateSection struct {
	Verdict string
	Checks  []CheckRow
}

// TeamSummaryRow is one team's season line computed from its game rows.
// Per-game stats are means over the team's games. Pointer fields are nil
// when the underlying value could not be computed.
type TeamSummaryRow struct {
	Team             string
	Games            int
	Wins             int
	WinRate          float64
	PointsFor        float64
	PointsAgainst    float64
	PointDiff        float64 // PointsFor - PointsAgainst, per game
	Rebounds         float64
	Assists          float64
	Turnovers        float64
	AssistToTurnover *float64 // nil when turnovers average to zero
	TrueShootingPct  *float64
	Possessions      *float64
}

// HomeAwayRow is one team's home/away win-rate split.
type HomeAwayRow struct {
	Team        string
	HomeGames   int
	AwayGames   int
	HomeWinRate *float64 // nil when the team has no home games
	AwayWinRate *float64 // nil when the team has no away games
	HomeEdge    *float64 // home minus away win rate, nil when either side is empty
}

// TopScorerRow is one player's scoring line across the season.
type TopScorerRow struct {
	Player    string
	Team      string // most frequent team across the player's rows
	Games     int
	AvgPoints float64
}

// PredictionSection carries a synthesized matchup prediction with its
// strongest feature contributions.
type PredictionSection struct {
	Team          string
	Opponent      string
	Home          bool
	Probability   float64
	PredictedWin  bool
	Contributions []model.FeatureContribution
}
