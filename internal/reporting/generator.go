package reporting

import (
	"os"
	"path/filepath"
)

// Artifact filenames written by the Generator.
const (
	ReportFilename        = "REPORT.md"
	TeamSummariesFilename = "team_summaries.csv"
	HomeAwayFilename      = "home_away_summary.csv"
	TopScorersFilename    = "top_scorers.csv"
)

// Generator writes report artifacts into an output directory.
type Generator struct {
	outputDir string
}

// NewGenerator creates a generator writing into outputDir.
func NewGenerator(outputDir string) *Generator {
	return &Generator{outputDir: outputDir}
}

// Write renders the report and writes REPORT.md plus the CSV artifacts,
// creating the output directory if needed.
func (g *Generator) Write(r *Report) error {
	if err := os.MkdirAll(g.outputDir, 0755); err != nil {
		return err
	}

	md := RenderMarkdown(r)
	if err := os.WriteFile(filepath.Join(g.outputDir, ReportFilename), []byte(md), 0644); err != nil {
		return err
	}

	teamCSV := RenderTeamSummariesCSV(r.TeamSummaries)
	if err := os.WriteFile(filepath.Join(g.outputDir, TeamSummariesFilename), []byte(teamCSV), 0644); err != nil {
		return err
	}

	homeAwayCSV := RenderHomeAwayCSV(r.HomeAway)
	if err := os.WriteFile(filepath.Join(g.outputDir, HomeAwayFilename), []byte(homeAwayCSV), 0644); err != nil {
		return err
	}

	scorersCSV := RenderTopScorersCSV(r.TopScorers)
	return os.WriteFile(filepath.Join(g.outputDir, TopScorersFilename), []byte(scorersCSV), 0644)
}
