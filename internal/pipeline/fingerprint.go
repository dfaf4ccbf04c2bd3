package pipeline

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"nba-matchup-lab/internal/domain"
)

// DatasetFingerprint computes a short SHA-256 hash of the normalized player
// rows so a report can be tied back to the exact dataset that produced it.
// Row order does not matter; any change to a row's identity or stats changes
// the fingerprint.
func DatasetFingerprint(rows []domain.PlayerGameRow) string {
	statCols := append(domain.TeamSumColumns(), domain.TeamMeanColumns()...)

	parts := make([]string, 0, len(rows))
	for i := range rows {
		r := &rows[i]
		var sb strings.Builder
		sb.WriteString(r.GameID)
		sb.WriteByte('|')
		sb.WriteString(r.PlayerID)
		sb.WriteByte('|')
		sb.WriteString(r.GameDate)
		sb.WriteByte('|')
		sb.WriteString(r.Team)
		sb.WriteByte('|')
		sb.WriteString(r.Opponent)
		sb.WriteByte('|')
		sb.WriteString(r.WinLoss)
		for _, col := range statCols {
			sb.WriteByte('|')
			if v, ok := r.StatValue(col); ok {
				fmt.Fprintf(&sb, "%.6f", v)
			}
		}
		parts = append(parts, sb.String())
	}
	sort.Strings(parts)

	h := sha256.New()
	h.Write([]byte(strings.Join(parts, "\n")))
	return hex.EncodeToString(h.Sum(nil))[:12]
}
