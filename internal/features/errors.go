package features

import (
	"fmt"
	"strings"
)

// JoinCardinalityError reports a matchup self-join that did not pair every
// team row with exactly one opponent row.
type JoinCardinalityError struct {
	Got  int // joined rows produced
	Want int // team rows supplied
}

func (e *JoinCardinalityError) Error() string {
	return fmt.Sprintf("matchup join produced %d rows, expected %d", e.Got, e.Want)
}

// UnknownTeamError reports teams that have no season-average entry.
type UnknownTeamError struct {
	Teams []string // sorted
}

func (e *UnknownTeamError) Error() string {
	return fmt.Sprintf("season averages missing for teams: %s", strings.Join(e.Teams, ", "))
}
