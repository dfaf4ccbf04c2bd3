package pipeline

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nba-matchup-lab/internal/domain"
)

// sufficientDataset builds rowCount matchup rows over four teams with
// alternating outcomes, plus a training split of trainCount rows.
func sufficientDataset(rowCount, trainCount int) (matchups, train []domain.MatchupRow) {
	teams := []string{"BOS", "GSW", "LAL", "MIA"}
	for i := 0; i < rowCount; i++ {
		matchups = append(matchups, matchupRow(
			fmt.Sprintf("00223%05d", i/2+1),
			fmt.Sprintf("2024-01-%02d", i/2+1),
			teams[i%len(teams)],
			i%2 == 0,
		))
	}
	train = matchups[:trainCount]
	return matchups, train
}

func TestSufficiencyChecker_AllPass(t *testing.T) {
	matchups, train := sufficientDataset(24, 19)

	result := NewSufficiencyChecker().Check(matchups, train)

	require.Len(t, result.Checks, 4)
	assert.True(t, result.AllPass)
	for _, check := range result.Checks {
		assert.True(t, check.Pass, "check %q", check.Name)
		assert.NotEmpty(t, check.Threshold)
		assert.NotEmpty(t, check.Actual)
	}
}

func TestSufficiencyChecker_TooFewMatchupRows(t *testing.T) {
	matchups, train := sufficientDataset(10, 8)

	result := NewSufficiencyChecker().Check(matchups, train)

	assert.False(t, result.AllPass)
	assert.False(t, result.Checks[0].Pass, "matchup row check fails")
	assert.Equal(t, ">= 20", result.Checks[0].Threshold)
	assert.Equal(t, "10", result.Checks[0].Actual)
}

func TestSufficiencyChecker_TooFewTrainingRows(t *testing.T) {
	matchups, train := sufficientDataset(24, 8)

	result := NewSufficiencyChecker().Check(matchups, train)

	assert.False(t, result.AllPass)
	assert.True(t, result.Checks[0].Pass)
	assert.False(t, result.Checks[1].Pass, "training row check fails")
	assert.Equal(t, "8", result.Checks[1].Actual)
}

func TestSufficiencyChecker_SingleOutcomeTrainingSplit(t *testing.T) {
	matchups, _ := sufficientDataset(24, 0)
	var train []domain.MatchupRow
	for _, m := range matchups {
		if m.Win {
			train = append(train, m)
		}
	}

	result := NewSufficiencyChecker().Check(matchups, train)

	assert.False(t, result.AllPass)
	assert.False(t, result.Checks[2].Pass, "outcome class check fails")
	assert.Equal(t, "12 wins, 0 losses", result.Checks[2].Actual)
}

func TestSufficiencyChecker_TooFewTeams(t *testing.T) {
	var matchups []domain.MatchupRow
	for i := 0; i < 24; i++ {
		team := "BOS"
		if i%2 == 1 {
			team = "LAL"
		}
		matchups = append(matchups, matchupRow(
			fmt.Sprintf("00223%05d", i/2+1),
			fmt.Sprintf("2024-01-%02d", i/2+1),
			team,
			i%2 == 0,
		))
	}

	result := NewSufficiencyChecker().Check(matchups, matchups[:19])

	assert.False(t, result.AllPass)
	assert.False(t, result.Checks[3].Pass, "distinct team check fails")
	assert.Equal(t, "2", result.Checks[3].Actual)
}

func TestSufficiencyChecker_CustomThresholds(t *testing.T) {
	matchups, train := sufficientDataset(10, 8)

	result := NewSufficiencyChecker().
		WithMinMatchupRows(10).
		WithMinTrainingRows(8).
		WithMinTeams(2).
		Check(matchups, train)

	assert.True(t, result.AllPass)
	assert.Equal(t, ">= 10", result.Checks[0].Threshold)
	assert.Equal(t, ">= 8", result.Checks[1].Threshold)
	assert.Equal(t, ">= 2", result.Checks[3].Threshold)
}

func TestSufficiencyChecker_EmptyDataset(t *testing.T) {
	result := NewSufficiencyChecker().Check(nil, nil)

	assert.False(t, result.AllPass)
	for _, check := range result.Checks {
		assert.False(t, check.Pass, "check %q", check.Name)
	}
}
