package domain

// Column names shared across raw, team, and matchup frames.
const (
	ColumnGameID   = "GAME_ID"
	ColumnGameDate = "GAME_DATE"
	ColumnTeam     = "TEAM_ABBREVIATION"
	ColumnOpponent = "OPPONENT_ABBREVIATION"
	ColumnHome     = "HOME"
	ColumnWin      = "WIN"

	ColumnMinutes     = "MIN"
	ColumnPlayerCount = "PLAYER_COUNT"
)

// DiffSuffix marks a differential feature column (team value minus opponent value).
const DiffSuffix = "_DIFF"

// SeasonAverageGameID is the GAME_ID carried by matchup rows synthesized from
// season averages rather than a played game.
const SeasonAverageGameID = "SEASON_AVG"

// Counting stats aggregated by summation when folding player rows into team rows.
var teamSumColumns = []string{
	"MIN", "FGM", "FGA", "FG3M", "FG3A", "FTM", "FTA",
	"OREB", "DREB", "REB", "AST", "STL", "BLK", "TOV", "PF",
	"PTS", "PLUS_MINUS",
}

// Shooting percentages aggregated by averaging. Summing rates across players
// is meaningless, so these stay means.
var teamMeanColumns = []string{"FG_PCT", "FG3_PCT", "FT_PCT"}

// TeamSumColumns returns the stat columns that are summed per team per game.
func TeamSumColumns() []string {
	return copyStrings(teamSumColumns)
}

// TeamMeanColumns returns the stat columns that are averaged per team per game.
func TeamMeanColumns() []string {
	return copyStrings(teamMeanColumns)
}

// TeamFeatureColumns returns every team-level feature column: summed stats,
// averaged rates, then the player count.
func TeamFeatureColumns() []string {
	cols := make([]string, 0, len(teamSumColumns)+len(teamMeanColumns)+1)
	cols = append(cols, teamSumColumns...)
	cols = append(cols, teamMeanColumns...)
	cols = append(cols, ColumnPlayerCount)
	return cols
}

// DiffFeatureColumns returns the differential column for each team feature,
// in the same order as TeamFeatureColumns.
func DiffFeatureColumns() []string {
	base := TeamFeatureColumns()
	cols := make([]string, len(base))
	for i, c := range base {
		cols[i] = c + DiffSuffix
	}
	return cols
}

// ModelFeatureColumns returns the default classifier input set: every
// differential column plus the home-court indicator.
func ModelFeatureColumns() []string {
	return append(DiffFeatureColumns(), ColumnHome)
}

func copyStrings(src []string) []string {
	out := make([]string, len(src))
	copy(out, src)
	return out
}
