package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nba-matchup-lab/internal/domain"
)

func matchupRow(gameID, gameDate, team string, win bool) domain.MatchupRow {
	return domain.MatchupRow{
		GameID:   gameID,
		GameDate: gameDate,
		Team:     team,
		Opponent: "OPP",
		Win:      win,
		Diffs:    map[string]float64{"PTS_DIFF": 1},
	}
}

func TestChronologicalSplit_OrdersByDate(t *testing.T) {
	rows := []domain.MatchupRow{
		matchupRow("0022300003", "2024-01-06", "BOS", true),
		matchupRow("0022300001", "2024-01-02", "LAL", false),
		matchupRow("0022300004", "2024-01-08", "MIA", true),
		matchupRow("0022300002", "2024-01-04", "GSW", false),
		matchupRow("0022300005", "2024-01-10", "DEN", true),
	}

	train, test, err := ChronologicalSplit(rows, 0.2)
	require.NoError(t, err)

	require.Len(t, train, 4)
	require.Len(t, test, 1)
	assert.Equal(t, "2024-01-02", train[0].GameDate)
	assert.Equal(t, "2024-01-04", train[1].GameDate)
	assert.Equal(t, "2024-01-06", train[2].GameDate)
	assert.Equal(t, "2024-01-08", train[3].GameDate)
	assert.Equal(t, "2024-01-10", test[0].GameDate, "most recent row held out")
}

func TestChronologicalSplit_TieBreaksByGameIDThenTeam(t *testing.T) {
	rows := []domain.MatchupRow{
		matchupRow("0022300002", "2024-01-02", "LAL", false),
		matchupRow("0022300001", "2024-01-02", "GSW", true),
		matchupRow("0022300001", "2024-01-02", "BOS", true),
	}

	train, test, err := ChronologicalSplit(rows, 0.34)
	require.NoError(t, err)
	require.Len(t, train, 1)
	require.Len(t, test, 2)

	assert.Equal(t, "BOS", train[0].Team)
	assert.Equal(t, "GSW", test[0].Team)
	assert.Equal(t, "LAL", test[1].Team)
}

func TestChronologicalSplit_DoesNotMutateInput(t *testing.T) {
	rows := []domain.MatchupRow{
		matchupRow("0022300002", "2024-01-04", "GSW", false),
		matchupRow("0022300001", "2024-01-02", "BOS", true),
	}

	_, _, err := ChronologicalSplit(rows, 0.5)
	require.NoError(t, err)

	assert.Equal(t, "0022300002", rows[0].GameID, "input order untouched")
	assert.Equal(t, "0022300001", rows[1].GameID)
}

func TestChronologicalSplit_InvalidTestSize(t *testing.T) {
	rows := []domain.MatchupRow{matchupRow("0022300001", "2024-01-02", "BOS", true)}

	for _, size := range []float64{0, 1, -0.1, 1.5} {
		_, _, err := ChronologicalSplit(rows, size)
		assert.Error(t, err, "test size %v", size)
	}
}

func TestChronologicalSplit_Empty(t *testing.T) {
	train, test, err := ChronologicalSplit(nil, 0.2)
	require.NoError(t, err)
	assert.Empty(t, train)
	assert.Empty(t, test)
}
