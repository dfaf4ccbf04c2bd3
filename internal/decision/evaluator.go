package decision

import (
	"fmt"
	"math"
)

// DefaultMinTestRows is the smallest held-out split the gate accepts as
// meaningful.
const DefaultMinTestRows = 8

// Evaluator applies the acceptance criteria to a fitted model's held-out
// evaluation. The model is worth keeping only when it beats the label
// distribution itself on every axis.
type Evaluator struct {
	minTestRows int
}

// NewEvaluator creates an evaluator with default thresholds.
func NewEvaluator() *Evaluator {
	return &Evaluator{minTestRows: DefaultMinTestRows}
}

// WithMinTestRows overrides the minimum test-split size.
func (e *Evaluator) WithMinTestRows(n int) *Evaluator {
	e.minTestRows = n
	return e
}

// Evaluate produces the GO/NO-GO verdict. GO requires every check to pass.
func (e *Evaluator) Evaluate(input Input) *Result {
	baseline := BaselineAccuracy(input.TestWins, input.TestRows)
	noSkill := NoSkillLogLoss(input.TestWins, input.TestRows)
	losses := input.TestRows - input.TestWins

	checks := []Check{
		{
			Name:      "Accuracy above majority baseline",
			Threshold: fmt.Sprintf("> %.4f", baseline),
			Actual:    fmt.Sprintf("%.4f", input.Evaluation.Accuracy),
			Pass:      input.Evaluation.Accuracy > baseline,
		},
		{
			Name:      "ROC-AUC at or above chance",
			Threshold: ">= 0.5000",
			Actual:    fmt.Sprintf("%.4f", input.Evaluation.ROCAUC),
			Pass:      input.Evaluation.ROCAUC >= 0.5,
		},
		{
			Name:      "Log-loss below no-skill bound",
			Threshold: fmt.Sprintf("< %.4f", noSkill),
			Actual:    formatLogLoss(input.Evaluation.LogLoss),
			Pass:      isFinite(input.Evaluation.LogLoss) && input.Evaluation.LogLoss < noSkill,
		},
		{
			Name:      "Test split non-degenerate",
			Threshold: fmt.Sprintf(">= %d rows, both outcomes", e.minTestRows),
			Actual:    fmt.Sprintf("%d rows (%d wins, %d losses)", input.TestRows, input.TestWins, losses),
			Pass:      input.TestRows >= e.minTestRows && input.TestWins > 0 && losses > 0,
		},
	}

	verdict := VerdictGo
	for _, c := range checks {
		if !c.Pass {
			verdict = VerdictNoGo
			break
		}
	}

	return &Result{Verdict: verdict, Checks: checks}
}

// BaselineAccuracy is the accuracy of always predicting the majority class
// of the test labels.
func BaselineAccuracy(wins, rows int) float64 {
	if rows == 0 {
		return 0
	}
	majority := wins
	if rows-wins > majority {
		majority = rows - wins
	}
	return float64(majority) / float64(rows)
}

// NoSkillLogLoss is the log-loss of predicting the base win rate for every
// row: the entropy of the test label distribution. A model with information
// about the matchups must come in below it.
func NoSkillLogLoss(wins, rows int) float64 {
	if rows == 0 || wins <= 0 || wins >= rows {
		return 0
	}
	p := float64(wins) / float64(rows)
	return -(p*math.Log(p) + (1-p)*math.Log(1-p))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func formatLogLoss(v float64) string {
	if !isFinite(v) {
		return "not finite"
	}
	return fmt.Sprintf("%.4f", v)
}
