package reporting

import (
	"fmt"
	"strings"
	"time"
)

// RenderMarkdown renders the report as a Markdown string.
func RenderMarkdown(r *Report) string {
	var sb strings.Builder

	// Header
	sb.WriteString("# Matchup Lab Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Dataset fingerprint: `%s`\n\n", r.DatasetFingerprint))

	// Data Summary
	sb.WriteString("## Data Summary\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Player Rows | %d |\n", r.Counts.PlayerRows))
	sb.WriteString(fmt.Sprintf("| Team Game Rows | %d |\n", r.Counts.TeamGameRows))
	sb.WriteString(fmt.Sprintf("| Matchup Rows | %d |\n", r.Counts.MatchupRows))
	sb.WriteString(fmt.Sprintf("| Training Rows | %d |\n", r.Counts.TrainRows))
	sb.WriteString(fmt.Sprintf("| Test Rows | %d |\n", r.Counts.TestRows))
	sb.WriteString(fmt.Sprintf("| Teams | %d |\n", r.Counts.Teams))
	sb.WriteString(fmt.Sprintf("| Games | %d |\n", r.Counts.Games))
	sb.WriteString("\n")

	// Data Sufficiency
	sb.WriteString("## Data Sufficiency\n\n")
	if len(r.Sufficiency) > 0 {
		sb.WriteString("| Check | Threshold | Actual | Status |\n")
		sb.WriteString("|-------|-----------|--------|--------|\n")
		for _, check := range r.Sufficiency {
			status := "FAIL"
			if check.Pass {
				status = "PASS"
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
				check.Name, check.Threshold, check.Actual, status))
		}
		sb.WriteString("\n")

		// Overall status
		if r.SufficiencyPassed {
			sb.WriteString("**All checks passed.** Proceeding with model fitting.\n\n")
		} else {
			sb.WriteString("**Some checks failed.** Model fitting skipped: INSUFFICIENT_DATA\n\n")
		}
	} else {
		sb.WriteString("No sufficiency checks performed.\n\n")
	}

	// Model Evaluation
	sb.WriteString("## Model Evaluation\n\n")
	if r.Evaluation != nil {
		sb.WriteString("| Metric | Value |\n")
		sb.WriteString("|--------|-------|\n")
		sb.WriteString(fmt.Sprintf("| Accuracy | %.4f |\n", r.Evaluation.Accuracy))
		sb.WriteString(fmt.Sprintf("| Log-Loss | %.4f |\n", r.Evaluation.LogLoss))
		sb.WriteString(fmt.Sprintf("| ROC-AUC | %.4f |\n", r.Evaluation.ROCAUC))
	} else {
		sb.WriteString("No model was fitted.\n")
	}
	sb.WriteString("\n")

	// Acceptance Gate
	sb.WriteString("## Acceptance Gate\n\n")
	if r.Gate != nil {
		sb.WriteString(fmt.Sprintf("Verdict: **%s**\n\n", r.Gate.Verdict))
		sb.WriteString("| Check | Threshold | Actual | Status |\n")
		sb.WriteString("|-------|-----------|--------|--------|\n")
		for _, check := range r.Gate.Checks {
			status := "FAIL"
			if check.Pass {
				status = "PASS"
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
				check.Name, check.Threshold, check.Actual, status))
		}
	} else {
		sb.WriteString("No gate verdict available.\n")
	}
	sb.WriteString("\n")

	// Team Summaries
	sb.WriteString("## Team Summaries\n\n")
	if len(r.TeamSummaries) > 0 {
		sb.WriteString("| Team | Games | Wins | WinRate | PtsFor | PtsAgainst | PtDiff | Reb | Ast | Tov | Ast/Tov | TS% | Poss |\n")
		sb.WriteString("|------|-------|------|---------|--------|------------|--------|-----|-----|-----|---------|-----|------|\n")
		for _, t := range r.TeamSummaries {
			sb.WriteString(fmt.Sprintf("| %s | %d | %d | %.4f | %.1f | %.1f | %+.1f | %.1f | %.1f | %.1f | %s | %s | %s |\n",
				t.Team, t.Games, t.Wins, t.WinRate,
				t.PointsFor, t.PointsAgainst, t.PointDiff,
				t.Rebounds, t.Assists, t.Turnovers,
				formatOptional(t.AssistToTurnover, "%.2f"),
				formatOptional(t.TrueShootingPct, "%.4f"),
				formatOptional(t.Possessions, "%.1f")))
		}
	} else {
		sb.WriteString("No team summaries available.\n")
	}
	sb.WriteString("\n")

	// Home/Away Splits
	sb.WriteString("## Home/Away Splits\n\n")
	if len(r.HomeAway) > 0 {
		sb.WriteString("| Team | Home Games | Away Games | Home WinRate | Away WinRate | Home Edge |\n")
		sb.WriteString("|------|------------|------------|--------------|--------------|----------|\n")
		for _, h := range r.HomeAway {
			sb.WriteString(fmt.Sprintf("| %s | %d | %d | %s | %s | %s |\n",
				h.Team, h.HomeGames, h.AwayGames,
				formatOptional(h.HomeWinRate, "%.4f"),
				formatOptional(h.AwayWinRate, "%.4f"),
				formatOptional(h.HomeEdge, "%+.4f")))
		}
	} else {
		sb.WriteString("No home/away splits available.\n")
	}
	sb.WriteString("\n")

	// Top Scorers
	sb.WriteString("## Top Scorers\n\n")
	if len(r.TopScorers) > 0 {
		sb.WriteString("| Player | Team | Games | Avg Points |\n")
		sb.WriteString("|--------|------|-------|------------|\n")
		for _, s := range r.TopScorers {
			sb.WriteString(fmt.Sprintf("| %s | %s | %d | %.1f |\n",
				s.Player, s.Team, s.Games, s.AvgPoints))
		}
	} else {
		sb.WriteString("No qualified scorers available.\n")
	}
	sb.WriteString("\n")

	// Matchup Prediction
	sb.WriteString("## Matchup Prediction\n\n")
	if r.Prediction != nil {
		p := r.Prediction
		venue := "away"
		if p.Home {
			venue = "home"
		}
		outcome := "LOSS"
		if p.PredictedWin {
			outcome = "WIN"
		}
		sb.WriteString(fmt.Sprintf("%s vs %s (%s for %s)\n\n", p.Team, p.Opponent, venue, p.Team))
		sb.WriteString(fmt.Sprintf("Win probability for %s: **%.4f** (predicted %s)\n\n",
			p.Team, p.Probability, outcome))
		if len(p.Contributions) > 0 {
			sb.WriteString("| Feature | Contribution |\n")
			sb.WriteString("|---------|-------------|\n")
			for _, c := range p.Contributions {
				sb.WriteString(fmt.Sprintf("| %s | %+.4f |\n", c.Column, c.Contribution))
			}
			sb.WriteString("\n")
		}
	} else {
		sb.WriteString("No matchup prediction requested.\n\n")
	}

	return sb.String()
}

// formatOptional formats a pointer value, "-" when nil.
func formatOptional(v *float64, format string) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf(format, *v)
}
