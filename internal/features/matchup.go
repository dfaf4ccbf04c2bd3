package features

import (
	"nba-matchup-lab/internal/domain"
)

// BuildMatchupRows self-joins team rows on game id, pairing each row with
// its opponent's row from the same game. Every paired feature becomes a
// team-minus-opponent differential; a differential is omitted when either
// side's feature is missing. Each complete game yields two mirror rows.
//
// The join must pair every input row with exactly one opponent row, so the
// output length equals the input length. Anything else, an unpaired row or
// a duplicate, fails with JoinCardinalityError.
func BuildMatchupRows(teamRows []domain.TeamGameRow) ([]domain.MatchupRow, error) {
	type joinKey struct {
		gameID   string
		team     string
		opponent string
	}

	index := make(map[joinKey]*domain.TeamGameRow, len(teamRows))
	counts := make(map[joinKey]int, len(teamRows))
	for i := range teamRows {
		r := &teamRows[i]
		key := joinKey{gameID: r.GameID, team: r.Team, opponent: r.Opponent}
		index[key] = r
		counts[key]++
	}

	got := 0
	for i := range teamRows {
		r := &teamRows[i]
		got += counts[joinKey{gameID: r.GameID, team: r.Opponent, opponent: r.Team}]
	}
	if got != len(teamRows) {
		return nil, &JoinCardinalityError{Got: got, Want: len(teamRows)}
	}

	featureCols := domain.TeamFeatureColumns()
	rows := make([]domain.MatchupRow, 0, len(teamRows))
	for i := range teamRows {
		r := &teamRows[i]
		opp := index[joinKey{gameID: r.GameID, team: r.Opponent, opponent: r.Team}]

		diffs := make(map[string]float64, len(featureCols))
		for _, col := range featureCols {
			tv, tok := r.Feature(col)
			ov, ook := opp.Feature(col)
			if tok && ook {
				diffs[col+domain.DiffSuffix] = tv - ov
			}
		}

		rows = append(rows, domain.MatchupRow{
			GameID:   r.GameID,
			GameDate: r.GameDate,
			Team:     r.Team,
			Opponent: r.Opponent,
			Home:     r.Home,
			Win:      r.Win,
			Diffs:    diffs,
		})
	}
	return rows, nil
}
