package statsapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const playerIndexBody = `{
	"resource": "commonallplayers",
	"resultSets": [{
		"name": "CommonAllPlayers",
		"headers": ["PERSON_ID", "DISPLAY_LAST_COMMA_FIRST", "DISPLAY_FIRST_LAST", "ROSTERSTATUS", "TEAM_ABBREVIATION"],
		"rowSet": [
			[2544, "James, LeBron", "LeBron James", 1, "LAL"],
			[201939, "Curry, Stephen", "Stephen Curry", 1, "GSW"],
			[null, "Ghost, Entry", "", 0, ""]
		]
	}]
}`

const gameLogBody = `{
	"resource": "playergamelog",
	"resultSets": [{
		"name": "PlayerGameLog",
		"headers": ["SEASON_ID", "Player_ID", "Game_ID", "GAME_DATE", "MATCHUP", "WL", "MIN",
			"FGM", "FGA", "FG_PCT", "FG3M", "FG3A", "FG3_PCT", "FTM", "FTA", "FT_PCT",
			"OREB", "DREB", "REB", "AST", "STL", "BLK", "TOV", "PF", "PTS", "PLUS_MINUS", "VIDEO_AVAILABLE"],
		"rowSet": [
			["22023", 2544, "0022300445", "JAN 15, 2024", "LAL vs. OKC", "W", 36,
				10, 20, 0.5, 2, 5, 0.4, 3, 4, 0.75,
				1, 7, 8, 8, 1, 1, 3, 2, 25, 7, 1],
			["22023", 2544, "0022300431", "JAN 13, 2024", "LAL @ UTA", "L", 34,
				8, 19, 0.421, 1, 6, 0.167, 5, 6, 0.833,
				0, 6, 6, 9, 2, 0, 4, 1, 22, -6, 1]
		]
	}]
}`

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient()

	assert.Equal(t, DefaultBaseURL, c.baseURL)
	assert.Equal(t, DefaultMaxRetries, c.maxRetries)
	assert.Equal(t, DefaultRetryDelay, c.retryDelay)
	assert.Equal(t, DefaultMaxDelay, c.maxDelay)
	assert.Equal(t, DefaultTimeout, c.client.Timeout)
}

func TestNewClient_Options(t *testing.T) {
	c := NewClient(
		WithBaseURL("http://localhost:9999/stats/"),
		WithTimeout(5*time.Second),
		WithMaxRetries(1),
		WithRetryDelay(2*time.Millisecond),
		WithMaxDelay(5*time.Millisecond),
	)

	assert.Equal(t, "http://localhost:9999/stats", c.baseURL, "trailing slash trimmed")
	assert.Equal(t, 5*time.Second, c.client.Timeout)
	assert.Equal(t, 1, c.maxRetries)
	assert.Equal(t, 2*time.Millisecond, c.retryDelay)
	assert.Equal(t, 5*time.Millisecond, c.maxDelay)
}

func TestPlayerIndex(t *testing.T) {
	var gotPath, gotReferer, gotUserAgent string
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		gotReferer = r.Header.Get("Referer")
		gotUserAgent = r.Header.Get("User-Agent")
		w.Write([]byte(playerIndexBody))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	players, err := c.PlayerIndex(context.Background(), "2023-24")
	require.NoError(t, err)

	assert.Equal(t, "/commonallplayers", gotPath)
	assert.Equal(t, []string{"00"}, gotQuery["LeagueID"])
	assert.Equal(t, []string{"2023-24"}, gotQuery["Season"])
	assert.Equal(t, []string{"1"}, gotQuery["IsOnlyCurrentSeason"])
	assert.Equal(t, "https://www.nba.com/", gotReferer)
	assert.Contains(t, gotUserAgent, "Mozilla/5.0")

	require.Len(t, players, 2, "row with null id and empty name dropped")
	assert.Equal(t, Player{ID: 2544, Name: "LeBron James"}, players[0])
	assert.Equal(t, Player{ID: 201939, Name: "Stephen Curry"}, players[1])
}

func TestPlayerGameLog(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(gameLogBody))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	player := Player{ID: 2544, Name: "LeBron James"}
	rows, err := c.PlayerGameLog(context.Background(), player, "2023-24")
	require.NoError(t, err)

	assert.Equal(t, []string{"2544"}, gotQuery["PlayerID"])
	assert.Equal(t, []string{"2023-24"}, gotQuery["Season"])
	assert.Equal(t, []string{"Regular Season"}, gotQuery["SeasonType"])

	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, "22023", first.SeasonID)
	assert.Equal(t, "2544", first.PlayerID)
	assert.Equal(t, "0022300445", first.GameID)
	assert.Equal(t, "2024-01-15", first.GameDate, "provider date rewritten as ISO 8601")
	assert.Equal(t, "LAL vs. OKC", first.Matchup)
	assert.Equal(t, "W", first.WinLoss)
	assert.Equal(t, "36", first.Minutes)
	assert.Equal(t, "10", first.FieldGoalsMade)
	assert.Equal(t, "0.5", first.FieldGoalPct)
	assert.Equal(t, "25", first.Points)
	assert.Equal(t, "7", first.PlusMinus)
	assert.Equal(t, "1", first.VideoAvailable)
	assert.Equal(t, "LeBron James", first.PlayerName, "name attached from the index entry")

	second := rows[1]
	assert.Equal(t, "2024-01-13", second.GameDate)
	assert.Equal(t, "LAL @ UTA", second.Matchup)
	assert.Equal(t, "-6", second.PlusMinus)
}

func TestPlayerGameLog_HeaderOrderIndependent(t *testing.T) {
	body := `{
		"resultSets": [{
			"name": "PlayerGameLog",
			"headers": ["PTS", "Game_ID", "GAME_DATE", "SEASON_ID", "Player_ID", "MATCHUP", "WL"],
			"rowSet": [[31, "0022300500", "FEB 01, 2024", "22023", 203999, "DEN vs. POR", "W"]]
		}]
	}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	rows, err := c.PlayerGameLog(context.Background(), Player{ID: 203999, Name: "Nikola Jokic"}, "2023-24")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "31", rows[0].Points)
	assert.Equal(t, "0022300500", rows[0].GameID)
	assert.Equal(t, "2024-02-01", rows[0].GameDate)
	assert.Equal(t, "", rows[0].Minutes, "columns absent from the payload stay empty")
	assert.Equal(t, "", rows[0].Rebounds)
}

func TestPlayerIndex_MissingResultSet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"resultSets": [{"name": "SomethingElse", "headers": [], "rowSet": []}]}`))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	_, err := c.PlayerIndex(context.Background(), "2023-24")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `result set "CommonAllPlayers" not found`)
}

func TestGet_RetriesAfterRateLimit(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(playerIndexBody))
	}))
	defer srv.Close()

	c := NewClient(
		WithBaseURL(srv.URL),
		WithRetryDelay(time.Millisecond),
		WithMaxDelay(2*time.Millisecond),
	)
	players, err := c.PlayerIndex(context.Background(), "2023-24")
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.Len(t, players, 2)
}

func TestGet_MaxRetriesExceeded(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		http.Error(w, "upstream broke", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(
		WithBaseURL(srv.URL),
		WithMaxRetries(2),
		WithRetryDelay(time.Millisecond),
	)
	_, err := c.PlayerIndex(context.Background(), "2023-24")
	require.Error(t, err)
	assert.Equal(t, 3, attempts, "initial attempt plus two retries")
	assert.Contains(t, err.Error(), "max retries exceeded")
	assert.Contains(t, err.Error(), "unexpected status 500")
}

func TestGet_ContextCancelledDuringBackoff(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	c := NewClient(
		WithBaseURL(srv.URL),
		WithRetryDelay(10*time.Second),
	)
	_, err := c.PlayerIndex(ctx, "2023-24")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestNormalizeGameDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"APR 09, 2023", "2023-04-09"},
		{"JAN 2, 2024", "2024-01-02"},
		{"Oct 30, 2023", "2023-10-30"},
		{"2023-04-09", "2023-04-09"},
		{"", ""},
		{"not a date", "not a date"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, normalizeGameDate(tc.in), "input %q", tc.in)
	}
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "", cellString(nil))
	assert.Equal(t, "LAL vs. OKC", cellString("LAL vs. OKC"))
	assert.Equal(t, "22023", cellString(float64(22023)), "integral floats stay integral")
	assert.Equal(t, "0.5", cellString(0.5))
	assert.Equal(t, "-7", cellString(float64(-7)))
	assert.Equal(t, "1", cellString(true))
}
