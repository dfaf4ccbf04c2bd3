package gamelog

import (
	"strconv"
	"strings"

	"nba-matchup-lab/internal/domain"
)

// Normalize converts raw game log records into typed player rows. Numeric
// fields that are empty or fail coercion become missing values; a MATCHUP
// string that cannot be parsed aborts the whole batch with
// MalformedMatchupError.
func Normalize(raws []RawRow) ([]domain.PlayerGameRow, error) {
	rows := make([]domain.PlayerGameRow, 0, len(raws))
	for i := range raws {
		row, err := normalizeRow(&raws[i])
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func normalizeRow(raw *RawRow) (domain.PlayerGameRow, error) {
	team, opponent, home, err := ParseMatchup(raw.Matchup)
	if err != nil {
		return domain.PlayerGameRow{}, err
	}

	return domain.PlayerGameRow{
		SeasonID: raw.SeasonID,
		PlayerID: raw.PlayerID,
		GameID:   raw.GameID,
		GameDate: raw.GameDate,
		Matchup:  raw.Matchup,
		WinLoss:  raw.WinLoss,

		Team:     team,
		Opponent: opponent,
		Home:     home,
		Win:      raw.WinLoss == "W",

		Minutes:                parseStat(raw.Minutes),
		FieldGoalsMade:         parseStat(raw.FieldGoalsMade),
		FieldGoalsAttempted:    parseStat(raw.FieldGoalsAttempted),
		FieldGoalPct:           parseStat(raw.FieldGoalPct),
		ThreePointersMade:      parseStat(raw.ThreePointersMade),
		ThreePointersAttempted: parseStat(raw.ThreePointersAttempted),
		ThreePointPct:          parseStat(raw.ThreePointPct),
		FreeThrowsMade:         parseStat(raw.FreeThrowsMade),
		FreeThrowsAttempted:    parseStat(raw.FreeThrowsAttempted),
		FreeThrowPct:           parseStat(raw.FreeThrowPct),
		OffensiveRebounds:      parseStat(raw.OffensiveRebounds),
		DefensiveRebounds:      parseStat(raw.DefensiveRebounds),
		Rebounds:               parseStat(raw.Rebounds),
		Assists:                parseStat(raw.Assists),
		Steals:                 parseStat(raw.Steals),
		Blocks:                 parseStat(raw.Blocks),
		Turnovers:              parseStat(raw.Turnovers),
		PersonalFouls:          parseStat(raw.PersonalFouls),
		Points:                 parseStat(raw.Points),
		PlusMinus:              parseStat(raw.PlusMinus),
		VideoAvailable:         parseStat(raw.VideoAvailable),

		PlayerName: raw.PlayerName,
	}, nil
}

// parseStat coerces a raw stat string to a float, mapping empty strings and
// unparseable values to missing.
func parseStat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
