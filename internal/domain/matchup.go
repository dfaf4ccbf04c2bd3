package domain

// MatchupRow is one side of a game expressed as differentials against the
// opposing team. Every played game yields two mirror rows whose differentials
// negate each other.
type MatchupRow struct {
	GameID   string // SeasonAverageGameID when synthesized
	GameDate string
	Team     string
	Opponent string
	Home     bool
	Win      bool

	// Diffs maps DiffFeatureColumns entries to team-minus-opponent values.
	// A key is absent when either side's underlying feature is missing.
	Diffs map[string]float64
}

// Diff returns the named differential and whether it is present.
func (r *MatchupRow) Diff(name string) (float64, bool) {
	v, ok := r.Diffs[name]
	return v, ok
}

// ModelFeatures returns the row as a classifier input vector: every
// differential plus the home indicator encoded as 0 or 1.
func (r *MatchupRow) ModelFeatures() map[string]float64 {
	out := make(map[string]float64, len(r.Diffs)+1)
	for k, v := range r.Diffs {
		out[k] = v
	}
	if r.Home {
		out[ColumnHome] = 1
	} else {
		out[ColumnHome] = 0
	}
	return out
}
