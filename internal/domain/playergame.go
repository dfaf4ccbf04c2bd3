package domain

// PlayerGameRow is one player's box score line for one game, normalized from
// the provider's game log format. Stat fields are pointers: nil marks a value
// that was empty or failed numeric coercion in the source data.
type PlayerGameRow struct {
	SeasonID string `csv:"SEASON_ID"`
	PlayerID string `csv:"PLAYER_ID"`
	GameID   string `csv:"GAME_ID"`
	GameDate string `csv:"GAME_DATE"` // ISO date, lexicographic order is chronological
	Matchup  string `csv:"MATCHUP"`   // raw provider string, e.g. "BOS vs. LAL"
	WinLoss  string `csv:"WL"`        // "W" | "L"

	// Parsed during normalization.
	Team     string `csv:"TEAM_ABBREVIATION"`     // first token of MATCHUP
	Opponent string `csv:"OPPONENT_ABBREVIATION"` // token after the separator
	Home     bool   `csv:"HOME"`                  // separator was "vs."
	Win      bool   `csv:"WIN"`                   // WL == "W"

	Minutes                *float64 `csv:"MIN,omitempty"`
	FieldGoalsMade         *float64 `csv:"FGM,omitempty"`
	FieldGoalsAttempted    *float64 `csv:"FGA,omitempty"`
	FieldGoalPct           *float64 `csv:"FG_PCT,omitempty"`
	ThreePointersMade      *float64 `csv:"FG3M,omitempty"`
	ThreePointersAttempted *float64 `csv:"FG3A,omitempty"`
	ThreePointPct          *float64 `csv:"FG3_PCT,omitempty"`
	FreeThrowsMade         *float64 `csv:"FTM,omitempty"`
	FreeThrowsAttempted    *float64 `csv:"FTA,omitempty"`
	FreeThrowPct           *float64 `csv:"FT_PCT,omitempty"`
	OffensiveRebounds      *float64 `csv:"OREB,omitempty"`
	DefensiveRebounds      *float64 `csv:"DREB,omitempty"`
	Rebounds               *float64 `csv:"REB,omitempty"`
	Assists                *float64 `csv:"AST,omitempty"`
	Steals                 *float64 `csv:"STL,omitempty"`
	Blocks                 *float64 `csv:"BLK,omitempty"`
	Turnovers              *float64 `csv:"TOV,omitempty"`
	PersonalFouls          *float64 `csv:"PF,omitempty"`
	Points                 *float64 `csv:"PTS,omitempty"`
	PlusMinus              *float64 `csv:"PLUS_MINUS,omitempty"`
	VideoAvailable         *float64 `csv:"VIDEO_AVAILABLE,omitempty"`

	PlayerName string `csv:"PLAYER_NAME"`
}

// StatValue returns the named stat and whether it is present. Column names
// follow the provider header, e.g. "PTS" or "FG_PCT".
func (r *PlayerGameRow) StatValue(column string) (float64, bool) {
	var v *float64
	switch column {
	case "MIN":
		v = r.Minutes
	case "FGM":
		v = r.FieldGoalsMade
	case "FGA":
		v = r.FieldGoalsAttempted
	case "FG_PCT":
		v = r.FieldGoalPct
	case "FG3M":
		v = r.ThreePointersMade
	case "FG3A":
		v = r.ThreePointersAttempted
	case "FG3_PCT":
		v = r.ThreePointPct
	case "FTM":
		v = r.FreeThrowsMade
	case "FTA":
		v = r.FreeThrowsAttempted
	case "FT_PCT":
		v = r.FreeThrowPct
	case "OREB":
		v = r.OffensiveRebounds
	case "DREB":
		v = r.DefensiveRebounds
	case "REB":
		v = r.Rebounds
	case "AST":
		v = r.Assists
	case "STL":
		v = r.Steals
	case "BLK":
		v = r.Blocks
	case "TOV":
		v = r.Turnovers
	case "PF":
		v = r.PersonalFouls
	case "PTS":
		v = r.Points
	case "PLUS_MINUS":
		v = r.PlusMinus
	case "VIDEO_AVAILABLE":
		v = r.VideoAvailable
	default:
		return 0, false
	}
	if v == nil {
		return 0, false
	}
	return *v, true
}
