package reporting

import (
	"fmt"
	"strings"
)

// RenderTeamSummariesCSV renders team summary rows as a CSV string.
func RenderTeamSummariesCSV(rows []TeamSummaryRow) string {
	var sb strings.Builder

	// Header
	sb.WriteString("team,games,wins,win_rate,points_for,points_against,point_diff,")
	sb.WriteString("rebounds,assists,turnovers,assist_turnover_ratio,true_shooting_pct,possessions\n")

	// Rows
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%s,%d,%d,%.6f,%.6f,%.6f,%.6f,%.6f,%.6f,%.6f,%s,%s,%s\n",
			r.Team,
			r.Games,
			r.Wins,
			r.WinRate,
			r.PointsFor,
			r.PointsAgainst,
			r.PointDiff,
			r.Rebounds,
			r.Assists,
			r.Turnovers,
			csvOptional(r.AssistToTurnover),
			csvOptional(r.TrueShootingPct),
			csvOptional(r.Possessions),
		))
	}

	return sb.String()
}

// RenderHomeAwayCSV renders home/away split rows as a CSV string.
func RenderHomeAwayCSV(rows []HomeAwayRow) string {
	var sb strings.Builder

	sb.WriteString("team,home_games,away_games,home_win_rate,away_win_rate,home_edge\n")

	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%s,%d,%d,%s,%s,%s\n",
			r.Team,
			r.HomeGames,
			r.AwayGames,
			csvOptional(r.HomeWinRate),
			csvOptional(r.AwayWinRate),
			csvOptional(r.HomeEdge),
		))
	}

	return sb.String()
}

// RenderTopScorersCSV renders top scorer rows as a CSV string.
func RenderTopScorersCSV(rows []TopScorerRow) string {
	var sb strings.Builder

	sb.WriteString("player,team,games,avg_points\n")

	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%s,%s,%d,%.6f\n",
			csvEscape(r.Player),
			r.Team,
			r.Games,
			r.AvgPoints,
		))
	}

	return sb.String()
}

// csvOptional renders a pointer value, empty cell when nil.
func csvOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.6f", *v)
}

// csvEscape quotes a field containing commas or quotes.
func csvEscape(s string) string {
	if !strings.ContainsAny(s, ",\"") {
		return s
	}
	return "\"" + strings.ReplaceAll(s, "\"", "\"\"") + "\""
}
