package pipeline

import (
	"fmt"

	"nba-matchup-lab/internal/domain"
)

// Default sufficiency thresholds.
const (
	DefaultMinMatchupRows  = 20
	DefaultMinTrainingRows = 12
	DefaultMinTeams        = 4
)

// SufficiencyCheck represents one data sufficiency criterion.
type SufficiencyCheck struct {
	Name      string
	Threshold string
	Actual    string
	Pass      bool
}

// SufficiencyResult contains all checks.
type SufficiencyResult struct {
	Checks  []SufficiencyCheck
	AllPass bool
}

// SufficiencyChecker validates that the engineered dataset is large and
// varied enough to make model fitting worthwhile.
type SufficiencyChecker struct {
	minMatchupRows  int
	minTrainingRows int
	minTeams        int
}

// NewSufficiencyChecker creates a checker with default thresholds.
func NewSufficiencyChecker() *SufficiencyChecker {
	return &SufficiencyChecker{
		minMatchupRows:  DefaultMinMatchupRows,
		minTrainingRows: DefaultMinTrainingRows,
		minTeams:        DefaultMinTeams,
	}
}

// WithMinMatchupRows overrides the minimum matchup row count.
func (c *SufficiencyChecker) WithMinMatchupRows(n int) *SufficiencyChecker {
	c.minMatchupRows = n
	return c
}

// WithMinTrainingRows overrides the minimum training row count.
func (c *SufficiencyChecker) WithMinTrainingRows(n int) *SufficiencyChecker {
	c.minTrainingRows = n
	return c
}

// WithMinTeams overrides the minimum distinct team count.
func (c *SufficiencyChecker) WithMinTeams(n int) *SufficiencyChecker {
	c.minTeams = n
	return c
}

// Check runs all sufficiency checks against the full matchup dataset and the
// training split.
func (c *SufficiencyChecker) Check(matchups, train []domain.MatchupRow) *SufficiencyResult {
	teams := make(map[string]bool)
	for i := range matchups {
		teams[matchups[i].Team] = true
	}

	trainWins, trainLosses := 0, 0
	for i := range train {
		if train[i].Win {
			trainWins++
		} else {
			trainLosses++
		}
	}

	checks := []SufficiencyCheck{
		{
			Name:      "Matchup rows",
			Threshold: fmt.Sprintf(">= %d", c.minMatchupRows),
			Actual:    fmt.Sprintf("%d", len(matchups)),
			Pass:      len(matchups) >= c.minMatchupRows,
		},
		{
			Name:      "Training rows",
			Threshold: fmt.Sprintf(">= %d", c.minTrainingRows),
			Actual:    fmt.Sprintf("%d", len(train)),
			Pass:      len(train) >= c.minTrainingRows,
		},
		{
			Name:      "Outcome classes in training split",
			Threshold: "both present",
			Actual:    fmt.Sprintf("%d wins, %d losses", trainWins, trainLosses),
			Pass:      trainWins > 0 && trainLosses > 0,
		},
		{
			Name:      "Distinct teams",
			Threshold: fmt.Sprintf(">= %d", c.minTeams),
			Actual:    fmt.Sprintf("%d", len(teams)),
			Pass:      len(teams) >= c.minTeams,
		},
	}

	result := &SufficiencyResult{Checks: checks, AllPass: true}
	for _, check := range checks {
		if !check.Pass {
			result.AllPass = false
		}
	}
	return result
}
