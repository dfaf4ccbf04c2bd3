package reporting

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nba-matchup-lab/internal/domain"
)

func fptr(v float64) *float64 { return &v }

func teamGame(gameID, team, opponent string, home, win bool, feats map[string]float64) domain.TeamGameRow {
	return domain.TeamGameRow{
		GameID:   gameID,
		GameDate: "2024-01-02",
		Team:     team,
		Opponent: opponent,
		Home:     home,
		Win:      win,
		Features: feats,
	}
}

// twoTeamSeason is a home-and-home between BOS and LAL: each wins at home.
func twoTeamSeason() []domain.TeamGameRow {
	return []domain.TeamGameRow{
		teamGame("G1", "BOS", "LAL", true, true, map[string]float64{
			"PTS": 110, "REB": 40, "AST": 25, "TOV": 10, "FGA": 88, "FTA": 25, "OREB": 10,
		}),
		teamGame("G1", "LAL", "BOS", false, false, map[string]float64{
			"PTS": 100, "REB": 42, "AST": 22, "TOV": 12, "FGA": 85, "FTA": 20, "OREB": 8,
		}),
		teamGame("G2", "LAL", "BOS", true, true, map[string]float64{
			"PTS": 105, "REB": 44, "AST": 26, "TOV": 11, "FGA": 90, "FTA": 15, "OREB": 12,
		}),
		teamGame("G2", "BOS", "LAL", false, false, map[string]float64{
			"PTS": 90, "REB": 38, "AST": 23, "TOV": 14, "FGA": 80, "FTA": 25, "OREB": 9,
		}),
	}
}

func TestComputeTeamSummaries_TwoTeams(t *testing.T) {
	rows := ComputeTeamSummaries(twoTeamSeason())
	require.Len(t, rows, 2)

	// Sorted by point differential descending: LAL (+2.5) before BOS (-2.5)
	lal, bos := rows[0], rows[1]
	assert.Equal(t, "LAL", lal.Team)
	assert.Equal(t, "BOS", bos.Team)

	assert.Equal(t, 2, bos.Games)
	assert.Equal(t, 1, bos.Wins)
	assert.InDelta(t, 0.5, bos.WinRate, 1e-9)
	assert.InDelta(t, 100.0, bos.PointsFor, 1e-9)
	assert.InDelta(t, 102.5, bos.PointsAgainst, 1e-9)
	assert.InDelta(t, -2.5, bos.PointDiff, 1e-9)
	assert.InDelta(t, 39.0, bos.Rebounds, 1e-9)
	assert.InDelta(t, 24.0, bos.Assists, 1e-9)
	assert.InDelta(t, 12.0, bos.Turnovers, 1e-9)

	require.NotNil(t, bos.AssistToTurnover)
	assert.InDelta(t, 2.0, *bos.AssistToTurnover, 1e-9)

	// BOS possessions: G1 = 88 + 0.44*25 - 10 + 10 = 99, G2 = 80 + 0.44*25 - 9 + 14 = 96
	require.NotNil(t, bos.Possessions)
	assert.InDelta(t, 97.5, *bos.Possessions, 1e-9)
	require.NotNil(t, bos.TrueShootingPct)
	assert.InDelta(t, (110.0/198.0+90.0/182.0)/2, *bos.TrueShootingPct, 1e-9)

	assert.InDelta(t, 2.5, lal.PointDiff, 1e-9)
	assert.InDelta(t, 102.5, lal.PointsFor, 1e-9)
}

func TestComputeTeamSummaries_DropsUnattachedRows(t *testing.T) {
	// G3 has no opposing line, so it must not reach any summary
	rows := append(twoTeamSeason(),
		teamGame("G3", "BOS", "MIA", true, true, map[string]float64{"PTS": 120}))

	summaries := ComputeTeamSummaries(rows)
	require.Len(t, summaries, 2)
	for _, s := range summaries {
		assert.Equal(t, 2, s.Games, s.Team)
	}
}

func TestComputeTeamSummaries_NilRatios(t *testing.T) {
	rows := []domain.TeamGameRow{
		teamGame("G1", "BOS", "LAL", true, true, map[string]float64{"PTS": 100, "AST": 20, "TOV": 0}),
		teamGame("G1", "LAL", "BOS", false, false, map[string]float64{"PTS": 90}),
	}

	summaries := ComputeTeamSummaries(rows)
	require.Len(t, summaries, 2)

	bos := summaries[0]
	require.Equal(t, "BOS", bos.Team)
	assert.Nil(t, bos.AssistToTurnover, "zero turnovers leave the ratio nil")
	assert.Nil(t, bos.TrueShootingPct, "no shooting inputs leave TS nil")
	assert.Nil(t, bos.Possessions)
}

func TestComputeTeamSummaries_Empty(t *testing.T) {
	assert.Empty(t, ComputeTeamSummaries(nil))
}

func TestComputeHomeAwaySummary(t *testing.T) {
	rows := append(twoTeamSeason(),
		teamGame("G3", "MIA", "ORL", true, true, map[string]float64{"PTS": 100}))

	splits := ComputeHomeAwaySummary(rows)
	require.Len(t, splits, 3)

	// BOS and LAL both won at home and lost away: edge +1.0, tie broken by team
	assert.Equal(t, "BOS", splits[0].Team)
	assert.Equal(t, "LAL", splits[1].Team)
	require.NotNil(t, splits[0].HomeEdge)
	assert.InDelta(t, 1.0, *splits[0].HomeEdge, 1e-9)

	// MIA never played away: no away rate, no edge, sorts last
	mia := splits[2]
	assert.Equal(t, "MIA", mia.Team)
	assert.Equal(t, 1, mia.HomeGames)
	assert.Equal(t, 0, mia.AwayGames)
	require.NotNil(t, mia.HomeWinRate)
	assert.InDelta(t, 1.0, *mia.HomeWinRate, 1e-9)
	assert.Nil(t, mia.AwayWinRate)
	assert.Nil(t, mia.HomeEdge)
}

func TestComputeTopScorers(t *testing.T) {
	var players []domain.PlayerGameRow
	addGames := func(name, team string, games int, pts *float64) {
		for i := 0; i < games; i++ {
			players = append(players, domain.PlayerGameRow{
				GameID:     fmt.Sprintf("%s-%02d", name, i),
				PlayerName: name,
				Team:       team,
				Points:     pts,
			})
		}
	}
	addGames("Alice Guard", "BOS", 12, fptr(25))
	addGames("Bob Wing", "GSW", 11, fptr(30))
	addGames("Casey Center", "MIA", 5, fptr(40)) // below the game floor

	scorers := ComputeTopScorers(players, 0)
	require.Len(t, scorers, 2)

	assert.Equal(t, "Bob Wing", scorers[0].Player)
	assert.InDelta(t, 30.0, scorers[0].AvgPoints, 1e-9)
	assert.Equal(t, 11, scorers[0].Games)
	assert.Equal(t, "GSW", scorers[0].Team)

	assert.Equal(t, "Alice Guard", scorers[1].Player)
}

func TestComputeTopScorers_ModalTeamAndLimit(t *testing.T) {
	var players []domain.PlayerGameRow
	for i := 0; i < 12; i++ {
		// A mid-season trade: 6 games each, tie broken alphabetically
		team := "LAL"
		if i < 6 {
			team = "GSW"
		}
		players = append(players, domain.PlayerGameRow{
			GameID:     fmt.Sprintf("G%02d", i),
			PlayerName: "Traded Player",
			Team:       team,
			Points:     fptr(20),
		})
	}
	for i := 0; i < 10; i++ {
		players = append(players, domain.PlayerGameRow{
			GameID:     fmt.Sprintf("H%02d", i),
			PlayerName: "Second Player",
			Team:       "MIA",
			Points:     fptr(18),
		})
	}

	scorers := ComputeTopScorers(players, 1)
	require.Len(t, scorers, 1, "limit truncates the table")
	assert.Equal(t, "Traded Player", scorers[0].Player)
	assert.Equal(t, "GSW", scorers[0].Team)
}

func TestComputeTopScorers_MissingPointsSkipped(t *testing.T) {
	var players []domain.PlayerGameRow
	for i := 0; i < 10; i++ {
		pts := fptr(22)
		if i%2 == 0 {
			pts = nil // DNP rows carry no points
		}
		players = append(players, domain.PlayerGameRow{
			GameID:     fmt.Sprintf("G%02d", i),
			PlayerName: "Part Timer",
			Team:       "BOS",
			Points:     pts,
		})
	}

	scorers := ComputeTopScorers(players, 0)
	require.Len(t, scorers, 1)
	assert.Equal(t, 10, scorers[0].Games, "distinct games counted even without points")
	assert.InDelta(t, 22.0, scorers[0].AvgPoints, 1e-9, "average skips missing points")
}
