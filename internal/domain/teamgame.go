package domain

// TeamGameRow is one team's aggregated line for one game: counting stats
// summed across the team's player rows, shooting percentages averaged, plus
// the player count.
type TeamGameRow struct {
	GameID   string
	GameDate string // first date seen for the group, in source order
	Team     string
	Opponent string
	Home     bool
	Win      bool

	// Features maps TeamFeatureColumns entries to aggregated values. A key
	// absent from the map means the value could not be computed from the
	// source rows.
	Features map[string]float64
}

// Feature returns the named feature value and whether it is present.
func (r *TeamGameRow) Feature(name string) (float64, bool) {
	v, ok := r.Features[name]
	return v, ok
}

// PlayerCount returns the number of named player rows folded into this line.
func (r *TeamGameRow) PlayerCount() int {
	return int(r.Features[ColumnPlayerCount])
}
