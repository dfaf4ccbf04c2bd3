package decision

import "nba-matchup-lab/internal/model"

// Verdict is the outcome of the model acceptance gate.
type Verdict string

const (
	VerdictGo   Verdict = "GO"
	VerdictNoGo Verdict = "NO-GO"
)

// Check records one acceptance criterion with its threshold and the observed
// value, in the same row shape the sufficiency checks use.
type Check struct {
	Name      string
	Threshold string
	Actual    string
	Pass      bool
}

// Input carries the held-out evaluation facts the gate judges: the metrics
// themselves plus the test-split label counts the baselines derive from.
type Input struct {
	Evaluation model.EvaluationResult
	TestRows   int
	TestWins   int
}

// Result is the gate's verdict together with the per-criterion checklist
// behind it.
type Result struct {
	Verdict Verdict
	Checks  []Check
}
