package pipeline

import (
	"fmt"
	"sort"

	"nba-matchup-lab/internal/domain"
)

// ChronologicalSplit orders matchup rows by (GameDate, GameID, Team) and
// holds out the most recent testSize share as the test set. The sort is
// stable, so rows that compare equal keep their input order. testSize must
// lie strictly between 0 and 1.
func ChronologicalSplit(matchups []domain.MatchupRow, testSize float64) (train, test []domain.MatchupRow, err error) {
	if testSize <= 0 || testSize >= 1 {
		return nil, nil, fmt.Errorf("test size must be in (0, 1), got %v", testSize)
	}

	ordered := make([]domain.MatchupRow, len(matchups))
	copy(ordered, matchups)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := &ordered[i], &ordered[j]
		if a.GameDate != b.GameDate {
			return a.GameDate < b.GameDate
		}
		if a.GameID != b.GameID {
			return a.GameID < b.GameID
		}
		return a.Team < b.Team
	})

	cut := int(float64(len(ordered)) * (1 - testSize))
	return ordered[:cut], ordered[cut:], nil
}
