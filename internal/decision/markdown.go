package decision

import (
	"fmt"
	"strings"
)

// RenderMarkdown renders a gate Result as a Markdown string.
func RenderMarkdown(result *Result) string {
	var sb strings.Builder

	// Verdict header
	sb.WriteString("# Acceptance Gate Report\n\n")
	sb.WriteString(fmt.Sprintf("## Verdict: %s\n\n", result.Verdict))

	// Checks table
	sb.WriteString("## Checks\n\n")
	sb.WriteString("| # | Check | Threshold | Actual | Status |\n")
	sb.WriteString("|---|-------|-----------|--------|--------|\n")
	for i, c := range result.Checks {
		statusStr := "PASS"
		if !c.Pass {
			statusStr = "FAIL"
		}
		sb.WriteString(fmt.Sprintf("| %d | %s | %s | %s | %s |\n",
			i+1, c.Name, c.Threshold, c.Actual, statusStr))
	}
	sb.WriteString("\n")

	// Count passes
	passed := 0
	for _, c := range result.Checks {
		if c.Pass {
			passed++
		}
	}
	sb.WriteString(fmt.Sprintf("Checks: %d/%d passed\n\n", passed, len(result.Checks)))

	// Summary
	sb.WriteString("## Summary\n\n")
	if result.Verdict == VerdictGo {
		sb.WriteString("All acceptance checks passed.\n")
	} else {
		sb.WriteString("Verdict is NO-GO due to:\n")
		for _, c := range result.Checks {
			if !c.Pass {
				sb.WriteString(fmt.Sprintf("- Check failed: %s (actual: %s)\n", c.Name, c.Actual))
			}
		}
	}

	return sb.String()
}
