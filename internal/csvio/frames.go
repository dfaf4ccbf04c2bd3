package csvio

import (
	"os"
	"strconv"
	"strings"

	"nba-matchup-lab/internal/domain"
)

// Derived frames are write-only artifacts: identity columns first, then
// feature columns in catalog order. Missing features render as empty cells;
// HOME and WIN render as 1 or 0.

// WriteTeamGameRows writes aggregated team game rows.
func WriteTeamGameRows(path string, rows []domain.TeamGameRow) error {
	cols := domain.TeamFeatureColumns()

	var sb strings.Builder
	writeHeader(&sb, cols)
	for i := range rows {
		row := &rows[i]
		fields := identityFields(row.GameID, row.GameDate, row.Team, row.Opponent, row.Home, row.Win)
		for _, col := range cols {
			fields = append(fields, formatCell(row.Features, col))
		}
		writeRecord(&sb, fields)
	}

	return os.WriteFile(path, []byte(sb.String()), 0644)
}

// WriteMatchupRows writes matchup differential rows.
func WriteMatchupRows(path string, rows []domain.MatchupRow) error {
	cols := domain.DiffFeatureColumns()

	var sb strings.Builder
	writeHeader(&sb, cols)
	for i := range rows {
		row := &rows[i]
		fields := identityFields(row.GameID, row.GameDate, row.Team, row.Opponent, row.Home, row.Win)
		for _, col := range cols {
			fields = append(fields, formatCell(row.Diffs, col))
		}
		writeRecord(&sb, fields)
	}

	return os.WriteFile(path, []byte(sb.String()), 0644)
}

// WriteSeasonAverages writes per-team season feature means.
func WriteSeasonAverages(path string, averages []domain.SeasonAverage) error {
	cols := domain.TeamFeatureColumns()

	var sb strings.Builder
	writeRecord(&sb, append([]string{domain.ColumnTeam}, cols...))
	for i := range averages {
		avg := &averages[i]
		fields := []string{avg.Team}
		for _, col := range cols {
			fields = append(fields, formatCell(avg.Features, col))
		}
		writeRecord(&sb, fields)
	}

	return os.WriteFile(path, []byte(sb.String()), 0644)
}

func writeHeader(sb *strings.Builder, featureCols []string) {
	identity := []string{
		domain.ColumnGameID,
		domain.ColumnGameDate,
		domain.ColumnTeam,
		domain.ColumnOpponent,
		domain.ColumnHome,
		domain.ColumnWin,
	}
	writeRecord(sb, append(identity, featureCols...))
}

func writeRecord(sb *strings.Builder, fields []string) {
	sb.WriteString(strings.Join(fields, ","))
	sb.WriteByte('\n')
}

func identityFields(gameID, gameDate, team, opponent string, home, win bool) []string {
	return []string{gameID, gameDate, team, opponent, formatFlag(home), formatFlag(win)}
}

func formatFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func formatCell(values map[string]float64, col string) string {
	v, ok := values[col]
	if !ok {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
