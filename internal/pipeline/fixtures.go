package pipeline

import (
	"fmt"
	"strconv"
	"time"

	"nba-matchup-lab/internal/gamelog"
)

// fixtureTeam pairs a franchise code with a scoring strength. A stronger
// team always outscores a weaker one by at least five points, so every
// fixture game has a stable, predictable winner.
type fixtureTeam struct {
	abbr     string
	strength int
}

var fixtureTeams = []fixtureTeam{
	{"BOS", 4},
	{"GSW", 3},
	{"LAL", 2},
	{"MIA", 1},
}

const fixturePlayersPerTeam = 4

// FixtureRawRows builds a deterministic miniature season of raw game logs:
// four teams, every ordered home/away pairing played twice, four players per
// side. Box score arithmetic is internally consistent (points recompute from
// makes, rebounds from the offensive/defensive split, win/loss from the
// score), so the rows survive normalization and aggregation unchanged. The
// set is large enough to clear the default sufficiency thresholds, which
// makes it usable as demo input.
func FixtureRawRows() []gamelog.RawRow {
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	var rows []gamelog.RawRow
	gameNum := 0
	for round := 0; round < 2; round++ {
		for h, home := range fixtureTeams {
			for a, away := range fixtureTeams {
				if h == a {
					continue
				}
				gameNum++
				gameID := fmt.Sprintf("00223%05d", gameNum)
				date := start.AddDate(0, 0, (gameNum-1)*2).Format("2006-01-02")
				rows = append(rows, fixtureGame(gameID, date, home, away, h, a, gameNum)...)
			}
		}
	}
	return rows
}

// FixtureTwoGameRows is the minimal slice of the fixture season: one BOS/LAL
// and one GSW/MIA game. It is far too small to pass sufficiency, which makes
// it handy for exercising the insufficient-data path and the aggregation
// stages in isolation.
func FixtureTwoGameRows() []gamelog.RawRow {
	rows := fixtureGame("0022300001", "2024-01-02", fixtureTeams[0], fixtureTeams[2], 0, 2, 1)
	rows = append(rows, fixtureGame("0022300002", "2024-01-04", fixtureTeams[1], fixtureTeams[3], 1, 3, 2)...)
	return rows
}

// fixtureLine is one player's generated box score.
type fixtureLine struct {
	playerID string
	name     string
	min      int
	fgm      int
	fga      int
	fg3m     int
	fg3a     int
	ftm      int
	fta      int
	oreb     int
	dreb     int
	ast      int
	stl      int
	blk      int
	tov      int
	pf       int
}

func (l *fixtureLine) points() int {
	return 2*(l.fgm-l.fg3m) + 3*l.fg3m + l.ftm
}

// fixtureGame generates both teams' player rows for one game.
func fixtureGame(gameID, date string, home, away fixtureTeam, homeIdx, awayIdx, gameNum int) []gamelog.RawRow {
	homeLines := fixtureSideLines(home, homeIdx, gameNum, true)
	awayLines := fixtureSideLines(away, awayIdx, gameNum, false)

	homePts, awayPts := 0, 0
	for i := range homeLines {
		homePts += homeLines[i].points()
	}
	for i := range awayLines {
		awayPts += awayLines[i].points()
	}

	rows := make([]gamelog.RawRow, 0, len(homeLines)+len(awayLines))
	rows = append(rows, fixtureSideRows(gameID, date, home, away, true, homePts, awayPts, homeLines)...)
	rows = append(rows, fixtureSideRows(gameID, date, away, home, false, awayPts, homePts, awayLines)...)
	return rows
}

// fixtureSideLines generates one team's player lines. Field goal volume is
// driven by team strength; the remaining stats vary with the player and game
// indices so no two lines are identical. The home side's first player gets
// one extra free throw, far too small to flip an outcome.
func fixtureSideLines(team fixtureTeam, teamIdx, gameNum int, home bool) []fixtureLine {
	lines := make([]fixtureLine, fixturePlayersPerTeam)
	for j := range lines {
		fgm := 2 + team.strength + (j+gameNum)%3
		fg3m := (j + gameNum) % 3
		ftm := 1 + (teamIdx+j+gameNum)%3
		if home && j == 0 {
			ftm++
		}
		oreb := (j + gameNum) % 3
		dreb := 2 + (teamIdx+j+gameNum)%4

		lines[j] = fixtureLine{
			playerID: strconv.Itoa(1000 + teamIdx*10 + j),
			name:     fmt.Sprintf("%s Player %d", team.abbr, j+1),
			min:      24 + (teamIdx+j+gameNum)%10,
			fgm:      fgm,
			fga:      fgm + 4 + (j+gameNum)%3,
			fg3m:     fg3m,
			fg3a:     fg3m + 2,
			ftm:      ftm,
			fta:      ftm + 1,
			oreb:     oreb,
			dreb:     dreb,
			ast:      1 + (team.strength+j+gameNum)%5,
			stl:      (j + gameNum) % 3,
			blk:      (teamIdx + j + gameNum) % 2,
			tov:      1 + (j+gameNum)%3,
			pf:       1 + (teamIdx+j)%3,
		}
	}
	return lines
}

// fixtureSideRows renders one team's lines as raw interchange rows.
func fixtureSideRows(gameID, date string, team, opp fixtureTeam, home bool, pts, oppPts int, lines []fixtureLine) []gamelog.RawRow {
	matchup := fmt.Sprintf("%s vs. %s", team.abbr, opp.abbr)
	if !home {
		matchup = fmt.Sprintf("%s @ %s", team.abbr, opp.abbr)
	}
	winLoss := "W"
	if pts < oppPts {
		winLoss = "L"
	}
	plusMinus := strconv.Itoa(pts - oppPts)

	rows := make([]gamelog.RawRow, len(lines))
	for i := range lines {
		l := &lines[i]
		rows[i] = gamelog.RawRow{
			SeasonID:               "22023",
			PlayerID:               l.playerID,
			GameID:                 gameID,
			GameDate:               date,
			Matchup:                matchup,
			WinLoss:                winLoss,
			Minutes:                strconv.Itoa(l.min),
			FieldGoalsMade:         strconv.Itoa(l.fgm),
			FieldGoalsAttempted:    strconv.Itoa(l.fga),
			FieldGoalPct:           fixturePct(l.fgm, l.fga),
			ThreePointersMade:      strconv.Itoa(l.fg3m),
			ThreePointersAttempted: strconv.Itoa(l.fg3a),
			ThreePointPct:          fixturePct(l.fg3m, l.fg3a),
			FreeThrowsMade:         strconv.Itoa(l.ftm),
			FreeThrowsAttempted:    strconv.Itoa(l.fta),
			FreeThrowPct:           fixturePct(l.ftm, l.fta),
			OffensiveRebounds:      strconv.Itoa(l.oreb),
			DefensiveRebounds:      strconv.Itoa(l.dreb),
			Rebounds:               strconv.Itoa(l.oreb + l.dreb),
			Assists:                strconv.Itoa(l.ast),
			Steals:                 strconv.Itoa(l.stl),
			Blocks:                 strconv.Itoa(l.blk),
			Turnovers:              strconv.Itoa(l.tov),
			PersonalFouls:          strconv.Itoa(l.pf),
			Points:                 strconv.Itoa(l.points()),
			PlusMinus:              plusMinus,
			VideoAvailable:         "1",
			PlayerName:             l.name,
		}
	}
	return rows
}

func fixturePct(made, attempted int) string {
	if attempted == 0 {
		return ""
	}
	return strconv.FormatFloat(float64(made)/float64(attempted), 'f', 3, 64)
}
