package domain

// SeasonAverage is one team's per-game feature means across a season,
// optionally weighted by minutes played.
type SeasonAverage struct {
	Team string

	// Features maps TeamFeatureColumns entries to season means. A key is
	// absent when no game of the team carried the underlying feature.
	Features map[string]float64
}

// Feature returns the named season mean and whether it is present.
func (a *SeasonAverage) Feature(name string) (float64, bool) {
	v, ok := a.Features[name]
	return v, ok
}
