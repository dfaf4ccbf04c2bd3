package features

import (
	"sort"

	"nba-matchup-lab/internal/domain"
)

// SynthesizeMatchup builds a single matchup row from two teams' season
// averages, for scoring a game that has not been played. The row carries
// SeasonAverageGameID instead of a real game id and no date or outcome.
func SynthesizeMatchup(averages []domain.SeasonAverage, team, opponent string, home bool) (domain.MatchupRow, error) {
	byTeam := make(map[string]*domain.SeasonAverage, len(averages))
	for i := range averages {
		byTeam[averages[i].Team] = &averages[i]
	}

	missing := make(map[string]bool)
	for _, name := range []string{team, opponent} {
		if byTeam[name] == nil {
			missing[name] = true
		}
	}
	if len(missing) > 0 {
		names := make([]string, 0, len(missing))
		for name := range missing {
			names = append(names, name)
		}
		sort.Strings(names)
		return domain.MatchupRow{}, &UnknownTeamError{Teams: names}
	}

	teamAvg := byTeam[team]
	oppAvg := byTeam[opponent]

	diffs := make(map[string]float64)
	for _, col := range domain.TeamFeatureColumns() {
		tv, tok := teamAvg.Feature(col)
		ov, ook := oppAvg.Feature(col)
		if tok && ook {
			diffs[col+domain.DiffSuffix] = tv - ov
		}
	}

	return domain.MatchupRow{
		GameID:   domain.SeasonAverageGameID,
		Team:     team,
		Opponent: opponent,
		Home:     home,
		Diffs:    diffs,
	}, nil
}
