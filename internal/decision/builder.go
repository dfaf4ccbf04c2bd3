package decision

import "nba-matchup-lab/internal/model"

// BuildInput assembles the gate input from a held-out evaluation and the
// observations it was computed on. Win counts come from the same labels the
// metrics were scored on, so the baselines describe the exact split under
// judgment.
func BuildInput(eval model.EvaluationResult, test []model.Observation) Input {
	wins := 0
	for _, obs := range test {
		if obs.Win {
			wins++
		}
	}
	return Input{
		Evaluation: eval,
		TestRows:   len(test),
		TestWins:   wins,
	}
}
