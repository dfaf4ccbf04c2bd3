package features

import (
	"sort"

	"nba-matchup-lab/internal/domain"
)

// AggregateTeamGames folds player box-score rows into one row per team per
// game. Counting stats are summed, shooting percentages averaged across the
// players that have them, and PLAYER_COUNT counts the named player rows.
// Missing player values are skipped. Output is sorted by (game id, team).
func AggregateTeamGames(players []domain.PlayerGameRow) []domain.TeamGameRow {
	type groupKey struct {
		gameID   string
		team     string
		opponent string
		home     bool
		win      bool
	}
	type groupAgg struct {
		gameDate    string
		sums        map[string]float64
		meanSums    map[string]float64
		meanCounts  map[string]int
		playerCount int
	}

	sumCols := domain.TeamSumColumns()
	meanCols := domain.TeamMeanColumns()

	groups := make(map[groupKey]*groupAgg)
	for i := range players {
		p := &players[i]
		key := groupKey{
			gameID:   p.GameID,
			team:     p.Team,
			opponent: p.Opponent,
			home:     p.Home,
			win:      p.Win,
		}
		g := groups[key]
		if g == nil {
			g = &groupAgg{
				// GAME_DATE takes the first value seen for the group.
				gameDate:   p.GameDate,
				sums:       make(map[string]float64, len(sumCols)),
				meanSums:   make(map[string]float64, len(meanCols)),
				meanCounts: make(map[string]int, len(meanCols)),
			}
			// Sum columns are always emitted, defaulting to 0 when no
			// player carries the stat.
			for _, col := range sumCols {
				g.sums[col] = 0
			}
			groups[key] = g
		}

		for _, col := range sumCols {
			if v, ok := p.StatValue(col); ok {
				g.sums[col] += v
			}
		}
		for _, col := range meanCols {
			if v, ok := p.StatValue(col); ok {
				g.meanSums[col] += v
				g.meanCounts[col]++
			}
		}
		if p.PlayerName != "" {
			g.playerCount++
		}
	}

	rows := make([]domain.TeamGameRow, 0, len(groups))
	for key, g := range groups {
		feats := make(map[string]float64, len(g.sums)+len(g.meanSums)+1)
		for col, v := range g.sums {
			feats[col] = v
		}
		// Mean columns are omitted when no player carried the stat.
		for col, sum := range g.meanSums {
			feats[col] = sum / float64(g.meanCounts[col])
		}
		feats[domain.ColumnPlayerCount] = float64(g.playerCount)

		rows = append(rows, domain.TeamGameRow{
			GameID:   key.gameID,
			GameDate: g.gameDate,
			Team:     key.team,
			Opponent: key.opponent,
			Home:     key.home,
			Win:      key.win,
			Features: feats,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].GameID != rows[j].GameID {
			return rows[i].GameID < rows[j].GameID
		}
		if rows[i].Team != rows[j].Team {
			return rows[i].Team < rows[j].Team
		}
		return rows[i].Opponent < rows[j].Opponent
	})
	return rows
}
