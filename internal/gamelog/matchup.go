package gamelog

import (
	"fmt"
	"strings"
)

// Matchup separators as emitted by the stats provider. "vs." marks a home
// game for the team named first, "@" an away game.
const (
	homeSeparator = "vs."
	awaySeparator = "@"
)

// MalformedMatchupError reports a MATCHUP string that contains neither a
// recognized home nor away separator, or that is missing a team on either
// side of it.
type MalformedMatchupError struct {
	Matchup string
}

func (e *MalformedMatchupError) Error() string {
	return fmt.Sprintf("unrecognized MATCHUP format: %q", e.Matchup)
}

// ParseMatchup splits a provider MATCHUP string such as "BOS vs. LAL" or
// "BOS @ LAL" into team, opponent, and the home flag.
func ParseMatchup(matchup string) (team, opponent string, home bool, err error) {
	var sep string
	switch {
	case strings.Contains(matchup, homeSeparator):
		sep = homeSeparator
		home = true
	case strings.Contains(matchup, awaySeparator):
		sep = awaySeparator
		home = false
	default:
		return "", "", false, &MalformedMatchupError{Matchup: matchup}
	}

	parts := strings.SplitN(matchup, sep, 2)
	team = firstToken(parts[0])
	opponent = strings.TrimSpace(parts[1])
	if team == "" || opponent == "" {
		return "", "", false, &MalformedMatchupError{Matchup: matchup}
	}
	return team, opponent, home, nil
}

// firstToken returns the first whitespace-delimited token of s, or "".
func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
