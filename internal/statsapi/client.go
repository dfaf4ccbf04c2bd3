package statsapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"nba-matchup-lab/internal/gamelog"
)

// Default configuration values.
const (
	DefaultBaseURL     = "https://stats.nba.com/stats"
	DefaultTimeout     = 30 * time.Second
	DefaultMaxRetries  = 3
	DefaultRetryDelay  = 1 * time.Second
	DefaultMaxDelay    = 10 * time.Second
	DefaultBackoffMult = 2.0
)

// Browser-like headers. The provider rejects requests that do not carry them.
const (
	refererHeader = "https://www.nba.com/"
	userAgent     = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client fetches player data from the stats.nba.com JSON endpoints.
type Client struct {
	baseURL     string
	client      *http.Client
	maxRetries  int
	retryDelay  time.Duration
	maxDelay    time.Duration
	backoffMult float64
}

// ClientOption configures the client.
type ClientOption func(*Client)

// WithBaseURL overrides the provider base URL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout sets the HTTP request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.client.Timeout = d
	}
}

// WithMaxRetries sets the maximum number of retry attempts.
func WithMaxRetries(n int) ClientOption {
	return func(c *Client) {
		c.maxRetries = n
	}
}

// WithRetryDelay sets the initial retry delay.
func WithRetryDelay(d time.Duration) ClientOption {
	return func(c *Client) {
		c.retryDelay = d
	}
}

// WithMaxDelay sets the maximum retry delay.
func WithMaxDelay(d time.Duration) ClientOption {
	return func(c *Client) {
		c.maxDelay = d
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.client = client
	}
}

// NewClient creates a stats.nba.com client with the given options.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:     DefaultBaseURL,
		client:      &http.Client{Timeout: DefaultTimeout},
		maxRetries:  DefaultMaxRetries,
		retryDelay:  DefaultRetryDelay,
		maxDelay:    DefaultMaxDelay,
		backoffMult: DefaultBackoffMult,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// statsResponse is the envelope every stats.nba.com endpoint returns: named
// result sets carrying positional rows whose layout is described by the
// headers list.
type statsResponse struct {
	ResultSets []resultSet `json:"resultSets"`
}

type resultSet struct {
	Name    string          `json:"name"`
	Headers []string        `json:"headers"`
	RowSet  [][]interface{} `json:"rowSet"`
}

func (r *statsResponse) findSet(name string) (*resultSet, error) {
	for i := range r.ResultSets {
		if r.ResultSets[i].Name == name {
			return &r.ResultSets[i], nil
		}
	}
	return nil, fmt.Errorf("result set %q not found", name)
}

// columnIndex maps header names to row positions so decoding does not depend
// on the provider keeping its column order stable.
func (rs *resultSet) columnIndex() map[string]int {
	idx := make(map[string]int, len(rs.Headers))
	for i, h := range rs.Headers {
		idx[h] = i
	}
	return idx
}

func (rs *resultSet) cell(row []interface{}, idx map[string]int, column string) interface{} {
	i, ok := idx[column]
	if !ok || i >= len(row) {
		return nil
	}
	return row[i]
}

// cellString renders one rowSet cell in its raw interchange form. The decoder
// hands numbers back as float64; integral values must not grow a decimal
// point, so the shortest round-trip representation is used.
func cellString(cell interface{}) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		if v {
			return "1"
		}
		return "0"
	default:
		return fmt.Sprint(v)
	}
}

// Player is one entry of the league player index.
type Player struct {
	ID   int64
	Name string
}

// PlayerIndex fetches the index of players active in the given season
// ("2023-24" format).
func (c *Client) PlayerIndex(ctx context.Context, season string) ([]Player, error) {
	params := url.Values{}
	params.Set("LeagueID", "00")
	params.Set("Season", season)
	params.Set("IsOnlyCurrentSeason", "1")

	resp, err := c.get(ctx, "commonallplayers", params)
	if err != nil {
		return nil, fmt.Errorf("fetch player index: %w", err)
	}

	set, err := resp.findSet("CommonAllPlayers")
	if err != nil {
		return nil, fmt.Errorf("fetch player index: %w", err)
	}

	idx := set.columnIndex()
	players := make([]Player, 0, len(set.RowSet))
	for _, row := range set.RowSet {
		id, ok := set.cell(row, idx, "PERSON_ID").(float64)
		if !ok {
			continue
		}
		name, _ := set.cell(row, idx, "DISPLAY_FIRST_LAST").(string)
		if name == "" {
			continue
		}
		players = append(players, Player{ID: int64(id), Name: name})
	}
	return players, nil
}

// PlayerGameLog fetches one player's regular-season game log and returns it
// as raw interchange rows. The provider omits the player name from the
// payload, so it is attached from the index entry; game dates are rewritten
// as ISO 8601 so lexicographic order matches chronological order downstream.
func (c *Client) PlayerGameLog(ctx context.Context, player Player, season string) ([]gamelog.RawRow, error) {
	params := url.Values{}
	params.Set("PlayerID", strconv.FormatInt(player.ID, 10))
	params.Set("Season", season)
	params.Set("SeasonType", "Regular Season")

	resp, err := c.get(ctx, "playergamelog", params)
	if err != nil {
		return nil, fmt.Errorf("fetch game log for player %d: %w", player.ID, err)
	}

	set, err := resp.findSet("PlayerGameLog")
	if err != nil {
		return nil, fmt.Errorf("fetch game log for player %d: %w", player.ID, err)
	}

	idx := set.columnIndex()
	rows := make([]gamelog.RawRow, 0, len(set.RowSet))
	for _, row := range set.RowSet {
		rows = append(rows, gamelog.RawRow{
			SeasonID:               cellString(set.cell(row, idx, "SEASON_ID")),
			PlayerID:               cellString(set.cell(row, idx, "Player_ID")),
			GameID:                 cellString(set.cell(row, idx, "Game_ID")),
			GameDate:               normalizeGameDate(cellString(set.cell(row, idx, "GAME_DATE"))),
			Matchup:                cellString(set.cell(row, idx, "MATCHUP")),
			WinLoss:                cellString(set.cell(row, idx, "WL")),
			Minutes:                cellString(set.cell(row, idx, "MIN")),
			FieldGoalsMade:         cellString(set.cell(row, idx, "FGM")),
			FieldGoalsAttempted:    cellString(set.cell(row, idx, "FGA")),
			FieldGoalPct:           cellString(set.cell(row, idx, "FG_PCT")),
			ThreePointersMade:      cellString(set.cell(row, idx, "FG3M")),
			ThreePointersAttempted: cellString(set.cell(row, idx, "FG3A")),
			ThreePointPct:          cellString(set.cell(row, idx, "FG3_PCT")),
			FreeThrowsMade:         cellString(set.cell(row, idx, "FTM")),
			FreeThrowsAttempted:    cellString(set.cell(row, idx, "FTA")),
			FreeThrowPct:           cellString(set.cell(row, idx, "FT_PCT")),
			OffensiveRebounds:      cellString(set.cell(row, idx, "OREB")),
			DefensiveRebounds:      cellString(set.cell(row, idx, "DREB")),
			Rebounds:               cellString(set.cell(row, idx, "REB")),
			Assists:                cellString(set.cell(row, idx, "AST")),
			Steals:                 cellString(set.cell(row, idx, "STL")),
			Blocks:                 cellString(set.cell(row, idx, "BLK")),
			Turnovers:              cellString(set.cell(row, idx, "TOV")),
			PersonalFouls:          cellString(set.cell(row, idx, "PF")),
			Points:                 cellString(set.cell(row, idx, "PTS")),
			PlusMinus:              cellString(set.cell(row, idx, "PLUS_MINUS")),
			VideoAvailable:         cellString(set.cell(row, idx, "VIDEO_AVAILABLE")),
			PlayerName:             player.Name,
		})
	}
	return rows, nil
}

// normalizeGameDate rewrites provider dates ("APR 09, 2023") as ISO 8601.
// Dates already in ISO form pass through; anything unparseable is returned
// unchanged.
func normalizeGameDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if _, err := time.Parse("2006-01-02", s); err == nil {
		return s
	}
	if len(s) > 3 {
		folded := strings.ToUpper(s[:1]) + strings.ToLower(s[1:3]) + s[3:]
		if t, err := time.Parse("Jan 2, 2006", folded); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}

// get performs a GET request with retries and exponential backoff, decoding
// the resultSets envelope.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (*statsResponse, error) {
	requestURL := c.baseURL + "/" + endpoint + "?" + params.Encode()

	delay := c.retryDelay
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
			// Exponential backoff
			delay = time.Duration(float64(delay) * c.backoffMult)
			if delay > c.maxDelay {
				delay = c.maxDelay
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("Referer", refererHeader)
		req.Header.Set("User-Agent", userAgent)

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("http request: %w", err)
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("read response: %w", err)
			continue
		}

		// Handle rate limiting
		if resp.StatusCode == http.StatusTooManyRequests {
			lastErr = fmt.Errorf("rate limited (429)")
			continue
		}

		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
			continue
		}

		var decoded statsResponse
		if err := json.Unmarshal(body, &decoded); err != nil {
			lastErr = fmt.Errorf("unmarshal response: %w", err)
			continue
		}
		return &decoded, nil
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}
