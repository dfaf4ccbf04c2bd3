package gamelog

// RawRow is one record of the raw player game log interchange format: every
// column as an unparsed string. Field order mirrors the column order of the
// headerless CSV files, so positional unmarshaling lines up.
type RawRow struct {
	SeasonID               string
	PlayerID               string
	GameID                 string
	GameDate               string
	Matchup                string
	WinLoss                string
	Minutes                string
	FieldGoalsMade         string
	FieldGoalsAttempted    string
	FieldGoalPct           string
	ThreePointersMade      string
	ThreePointersAttempted string
	ThreePointPct          string
	FreeThrowsMade         string
	FreeThrowsAttempted    string
	FreeThrowPct           string
	OffensiveRebounds      string
	DefensiveRebounds      string
	Rebounds               string
	Assists                string
	Steals                 string
	Blocks                 string
	Turnovers              string
	PersonalFouls          string
	Points                 string
	PlusMinus              string
	VideoAvailable         string
	PlayerName             string
}

// Fields returns the row's values in column order.
func (r *RawRow) Fields() []string {
	return []string{
		r.SeasonID,
		r.PlayerID,
		r.GameID,
		r.GameDate,
		r.Matchup,
		r.WinLoss,
		r.Minutes,
		r.FieldGoalsMade,
		r.FieldGoalsAttempted,
		r.FieldGoalPct,
		r.ThreePointersMade,
		r.ThreePointersAttempted,
		r.ThreePointPct,
		r.FreeThrowsMade,
		r.FreeThrowsAttempted,
		r.FreeThrowPct,
		r.OffensiveRebounds,
		r.DefensiveRebounds,
		r.Rebounds,
		r.Assists,
		r.Steals,
		r.Blocks,
		r.Turnovers,
		r.PersonalFouls,
		r.Points,
		r.PlusMinus,
		r.VideoAvailable,
		r.PlayerName,
	}
}
