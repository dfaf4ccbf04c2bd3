package reporting

import (
	"sort"

	"nba-matchup-lab/internal/domain"
	"nba-matchup-lab/internal/features"
)

// MinTopScorerGames is the sample floor for the top-scorer table.
const MinTopScorerGames = 10

// DefaultTopScorers caps the top-scorer table length.
const DefaultTopScorers = 12

// statMean accumulates a mean over present values only.
type statMean struct {
	sum   float64
	count int
}

func (m *statMean) add(v float64) {
	m.sum += v
	m.count++
}

// value is the mean, 0 when nothing was accumulated.
func (m *statMean) value() float64 {
	if m.count == 0 {
		return 0
	}
	return m.sum / float64(m.count)
}

// mean is the mean as a pointer, nil when nothing was accumulated.
func (m *statMean) mean() *float64 {
	if m.count == 0 {
		return nil
	}
	v := m.sum / float64(m.count)
	return &v
}

// ComputeTeamSummaries rolls team game rows into one season line per team.
// Points against come from the opposing row of the same game; rows with no
// opposing line are dropped before aggregation so offense and defense
// describe the same games. Sorted by point differential descending, team
// ascending on ties.
func ComputeTeamSummaries(teamRows []domain.TeamGameRow) []TeamSummaryRow {
	type sideKey struct {
		GameID string
		Team   string
	}

	// Points indexed by (game, team) for the opponent lookup
	points := make(map[sideKey]float64, len(teamRows))
	for i := range teamRows {
		row := &teamRows[i]
		if pts, ok := row.Feature("PTS"); ok {
			points[sideKey{row.GameID, row.Team}] = pts
		}
	}

	type accum struct {
		games         int
		wins          int
		pointsFor     statMean
		pointsAgainst statMean
		pointDiff     statMean
		rebounds      statMean
		assists       statMean
		turnovers     statMean
		trueShooting  statMean
		possessions   statMean
	}

	accums := make(map[string]*accum)
	for i := range teamRows {
		row := &teamRows[i]
		oppPts, ok := points[sideKey{row.GameID, row.Opponent}]
		if !ok {
			continue // no opposing line for this game
		}

		acc := accums[row.Team]
		if acc == nil {
			acc = &accum{}
			accums[row.Team] = acc
		}
		acc.games++
		if row.Win {
			acc.wins++
		}
		acc.pointsAgainst.add(oppPts)
		if pts, present := row.Feature("PTS"); present {
			acc.pointsFor.add(pts)
			acc.pointDiff.add(pts - oppPts)
		}
		if v, present := row.Feature("REB"); present {
			acc.rebounds.add(v)
		}
		if v, present := row.Feature("AST"); present {
			acc.assists.add(v)
		}
		if v, present := row.Feature("TOV"); present {
			acc.turnovers.add(v)
		}
		eff := features.ComputeEfficiencyMetrics(row)
		if eff.TrueShootingPct != nil {
			acc.trueShooting.add(*eff.TrueShootingPct)
		}
		if eff.Possessions != nil {
			acc.possessions.add(*eff.Possessions)
		}
	}

	rows := make([]TeamSummaryRow, 0, len(accums))
	for team, acc := range accums {
		row := TeamSummaryRow{
			Team:          team,
			Games:         acc.games,
			Wins:          acc.wins,
			WinRate:       float64(acc.wins) / float64(acc.games),
			PointsFor:     acc.pointsFor.value(),
			PointsAgainst: acc.pointsAgainst.value(),
			PointDiff:     acc.pointDiff.value(),
			Rebounds:      acc.rebounds.value(),
			Assists:       acc.assists.value(),
			Turnovers:     acc.turnovers.value(),
		}
		if row.Turnovers != 0 {
			ratio := row.Assists / row.Turnovers
			row.AssistToTurnover = &ratio
		}
		row.TrueShootingPct = acc.trueShooting.mean()
		row.Possessions = acc.possessions.mean()
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].PointDiff != rows[j].PointDiff {
			return rows[i].PointDiff > rows[j].PointDiff
		}
		return rows[i].Team < rows[j].Team
	})
	return rows
}

// ComputeHomeAwaySummary splits each team's win rate by venue. A side the
// team never played leaves its rate nil and omits the home edge. Sorted by
// home edge descending with edgeless teams last, team ascending on ties.
func ComputeHomeAwaySummary(teamRows []domain.TeamGameRow) []HomeAwayRow {
	type venueCount struct {
		homeGames, homeWins int
		awayGames, awayWins int
	}

	counts := make(map[string]*venueCount)
	for i := range teamRows {
		row := &teamRows[i]
		c := counts[row.Team]
		if c == nil {
			c = &venueCount{}
			counts[row.Team] = c
		}
		if row.Home {
			c.homeGames++
			if row.Win {
				c.homeWins++
			}
		} else {
			c.awayGames++
			if row.Win {
				c.awayWins++
			}
		}
	}

	rows := make([]HomeAwayRow, 0, len(counts))
	for team, c := range counts {
		row := HomeAwayRow{Team: team, HomeGames: c.homeGames, AwayGames: c.awayGames}
		if c.homeGames > 0 {
			rate := float64(c.homeWins) / float64(c.homeGames)
			row.HomeWinRate = &rate
		}
		if c.awayGames > 0 {
			rate := float64(c.awayWins) / float64(c.awayGames)
			row.AwayWinRate = &rate
		}
		if row.HomeWinRate != nil && row.AwayWinRate != nil {
			edge := *row.HomeWinRate - *row.AwayWinRate
			row.HomeEdge = &edge
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		ei, ej := rows[i].HomeEdge, rows[j].HomeEdge
		switch {
		case ei != nil && ej == nil:
			return true
		case ei == nil && ej != nil:
			return false
		case ei != nil && ej != nil && *ei != *ej:
			return *ei > *ej
		}
		return rows[i].Team < rows[j].Team
	})
	return rows
}

// ComputeTopScorers ranks players by average points per game. Players under
// MinTopScorerGames distinct games are excluded, as are players with no
// recorded points. The listed team is the one the player appeared for most
// often, smallest alphabetically on ties. topN caps the table; zero or
// negative means DefaultTopScorers.
func ComputeTopScorers(players []domain.PlayerGameRow, topN int) []TopScorerRow {
	if topN <= 0 {
		topN = DefaultTopScorers
	}

	type scorer struct {
		games      map[string]struct{}
		teamCounts map[string]int
		points     statMean
	}

	scorers := make(map[string]*scorer)
	for i := range players {
		row := &players[i]
		if row.PlayerName == "" {
			continue
		}
		s := scorers[row.PlayerName]
		if s == nil {
			s = &scorer{games: make(map[string]struct{}), teamCounts: make(map[string]int)}
			scorers[row.PlayerName] = s
		}
		s.games[row.GameID] = struct{}{}
		s.teamCounts[row.Team]++
		if row.Points != nil {
			s.points.add(*row.Points)
		}
	}

	rows := make([]TopScorerRow, 0, len(scorers))
	for name, s := range scorers {
		if len(s.games) < MinTopScorerGames || s.points.count == 0 {
			continue
		}
		rows = append(rows, TopScorerRow{
			Player:    name,
			Team:      modalTeam(s.teamCounts),
			Games:     len(s.games),
			AvgPoints: s.points.value(),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].AvgPoints != rows[j].AvgPoints {
			return rows[i].AvgPoints > rows[j].AvgPoints
		}
		return rows[i].Player < rows[j].Player
	})
	if len(rows) > topN {
		rows = rows[:topN]
	}
	return rows
}

// modalTeam picks the most frequent team, smallest alphabetically on ties.
func modalTeam(counts map[string]int) string {
	best := ""
	bestCount := 0
	for team, n := range counts {
		if n > bestCount || (n == bestCount && team < best) {
			best = team
			bestCount = n
		}
	}
	return best
}
