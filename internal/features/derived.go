package features

import (
	"nba-matchup-lab/internal/domain"
)

// Weight of a free throw attempt in possession estimates.
const freeThrowFactor = 0.44

// EfficiencyMetrics are possession-based derived metrics for one team game.
// They feed reports only and never enter the classifier feature set. A nil
// field means an input was missing or a denominator was zero.
type EfficiencyMetrics struct {
	Possessions     *float64
	TrueShootingPct *float64
	OffensiveRating *float64
	TurnoverPct     *float64
}

// ComputeEfficiencyMetrics derives possession-based metrics from a team game
// row.
//
// Formulas:
//   - possessions = FGA + 0.44*FTA - OREB + TOV
//   - true_shooting_pct = PTS / (2 * (FGA + 0.44*FTA))
//   - offensive_rating = 100 * PTS / possessions
//   - turnover_pct = TOV / (FGA + 0.44*FTA + TOV)
func ComputeEfficiencyMetrics(row *domain.TeamGameRow) EfficiencyMetrics {
	fga, hasFGA := row.Feature("FGA")
	fta, hasFTA := row.Feature("FTA")
	oreb, hasOREB := row.Feature("OREB")
	tov, hasTOV := row.Feature("TOV")
	pts, hasPTS := row.Feature("PTS")

	var m EfficiencyMetrics
	if !hasFGA || !hasFTA {
		return m
	}
	shotLoad := fga + freeThrowFactor*fta

	if hasOREB && hasTOV {
		possessions := shotLoad - oreb + tov
		m.Possessions = &possessions
		if hasPTS && possessions > 0 {
			rating := 100 * pts / possessions
			m.OffensiveRating = &rating
		}
	}
	if hasPTS && shotLoad > 0 {
		ts := pts / (2 * shotLoad)
		m.TrueShootingPct = &ts
	}
	if hasTOV && shotLoad+tov > 0 {
		tovPct := tov / (shotLoad + tov)
		m.TurnoverPct = &tovPct
	}
	return m
}
