package features

import (
	"sort"

	"nba-matchup-lab/internal/domain"
)

// SeasonAverageOptions configures season-level aggregation.
type SeasonAverageOptions struct {
	// WeightByMinutes weights each game by its minutes total instead of
	// equally. Weights are floored at 1 so a zero-minute game still counts.
	// Teams with no minutes data at all fall back to unweighted means.
	WeightByMinutes bool
}

// SeasonAverages computes per-team means of every team feature column across
// the given game rows. A feature is omitted for a team when no game carries
// it. Output is sorted by team and independent of input order.
func SeasonAverages(teamRows []domain.TeamGameRow, opts SeasonAverageOptions) []domain.SeasonAverage {
	byTeam := make(map[string][]*domain.TeamGameRow)
	for i := range teamRows {
		r := &teamRows[i]
		byTeam[r.Team] = append(byTeam[r.Team], r)
	}

	teams := make([]string, 0, len(byTeam))
	for team := range byTeam {
		teams = append(teams, team)
	}
	sort.Strings(teams)

	featureCols := domain.TeamFeatureColumns()
	averages := make([]domain.SeasonAverage, 0, len(teams))
	for _, team := range teams {
		rows := byTeam[team]
		// Accumulate in (game id, opponent) order so float sums do not
		// depend on input order.
		sort.Slice(rows, func(i, j int) bool {
			if rows[i].GameID != rows[j].GameID {
				return rows[i].GameID < rows[j].GameID
			}
			return rows[i].Opponent < rows[j].Opponent
		})

		weights := gameWeights(rows, opts.WeightByMinutes)

		feats := make(map[string]float64, len(featureCols))
		for _, col := range featureCols {
			num, den := 0.0, 0.0
			for i, r := range rows {
				v, ok := r.Feature(col)
				if !ok {
					continue
				}
				num += weights[i] * v
				den += weights[i]
			}
			if den > 0 {
				feats[col] = num / den
			}
		}

		averages = append(averages, domain.SeasonAverage{Team: team, Features: feats})
	}
	return averages
}

// gameWeights returns one weight per row. Unweighted mode and teams without
// any minutes data get uniform weights of 1.
func gameWeights(rows []*domain.TeamGameRow, weightByMinutes bool) []float64 {
	weights := make([]float64, len(rows))
	for i := range weights {
		weights[i] = 1
	}
	if !weightByMinutes {
		return weights
	}

	hasMinutes := false
	for _, r := range rows {
		if _, ok := r.Feature(domain.ColumnMinutes); ok {
			hasMinutes = true
			break
		}
	}
	if !hasMinutes {
		return weights
	}

	for i, r := range rows {
		if v, ok := r.Feature(domain.ColumnMinutes); ok && v > 1 {
			weights[i] = v
		}
	}
	return weights
}
