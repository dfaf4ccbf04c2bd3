package gamelog

import (
	"errors"
	"testing"
)

func sampleRaw() RawRow {
	return RawRow{
		SeasonID:               "22024",
		PlayerID:               "1628369",
		GameID:                 "0022400001",
		GameDate:               "2024-10-22",
		Matchup:                "BOS vs. NYK",
		WinLoss:                "W",
		Minutes:                "36.5",
		FieldGoalsMade:         "10",
		FieldGoalsAttempted:    "20",
		FieldGoalPct:           "0.5",
		ThreePointersMade:      "4",
		ThreePointersAttempted: "10",
		ThreePointPct:          "0.4",
		FreeThrowsMade:         "6",
		FreeThrowsAttempted:    "7",
		FreeThrowPct:           "0.857",
		OffensiveRebounds:      "1",
		DefensiveRebounds:      "7",
		Rebounds:               "8",
		Assists:                "5",
		Steals:                 "1",
		Blocks:                 "0",
		Turnovers:              "3",
		PersonalFouls:          "2",
		Points:                 "30",
		PlusMinus:              "12",
		VideoAvailable:         "1",
		PlayerName:             "Jayson Tatum",
	}
}

func TestNormalize_ParsesFullRow(t *testing.T) {
	rows, err := Normalize([]RawRow{sampleRaw()})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}

	row := rows[0]
	if row.Team != "BOS" || row.Opponent != "NYK" {
		t.Errorf("Expected (BOS, NYK), got (%s, %s)", row.Team, row.Opponent)
	}
	if !row.Home {
		t.Errorf("Expected home game for vs. matchup")
	}
	if !row.Win {
		t.Errorf("Expected win for WL=W")
	}
	if row.Points == nil || *row.Points != 30 {
		t.Errorf("Expected PTS 30, got %v", row.Points)
	}
	if row.FieldGoalPct == nil || *row.FieldGoalPct != 0.5 {
		t.Errorf("Expected FG_PCT 0.5, got %v", row.FieldGoalPct)
	}
	if row.PlayerName != "Jayson Tatum" {
		t.Errorf("Expected player name to pass through, got %q", row.PlayerName)
	}
}

func TestNormalize_LossFlag(t *testing.T) {
	raw := sampleRaw()
	raw.WinLoss = "L"

	rows, err := Normalize([]RawRow{raw})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if rows[0].Win {
		t.Errorf("Expected win=false for WL=L")
	}
}

func TestNormalize_CoercionFailureBecomesMissing(t *testing.T) {
	raw := sampleRaw()
	raw.Points = "abc"
	raw.FieldGoalPct = ""

	rows, err := Normalize([]RawRow{raw})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	row := rows[0]
	if row.Points != nil {
		t.Errorf("Expected unparseable PTS to be missing, got %v", *row.Points)
	}
	if row.FieldGoalPct != nil {
		t.Errorf("Expected empty FG_PCT to be missing, got %v", *row.FieldGoalPct)
	}
	if _, ok := row.StatValue("PTS"); ok {
		t.Errorf("Expected StatValue to report PTS as absent")
	}
	if v, ok := row.StatValue("REB"); !ok || v != 8 {
		t.Errorf("Expected REB 8 present, got (%v, %v)", v, ok)
	}
}

func TestNormalize_MalformedMatchupAborts(t *testing.T) {
	good := sampleRaw()
	bad := sampleRaw()
	bad.Matchup = "BOS - LAL"

	rows, err := Normalize([]RawRow{good, bad})
	if err == nil {
		t.Fatalf("Expected error for malformed matchup")
	}
	if rows != nil {
		t.Errorf("Expected no partial output, got %d rows", len(rows))
	}

	var malformed *MalformedMatchupError
	if !errors.As(err, &malformed) {
		t.Fatalf("Expected MalformedMatchupError, got %T", err)
	}
	if malformed.Matchup != "BOS - LAL" {
		t.Errorf("Expected error to carry the raw matchup, got %q", malformed.Matchup)
	}
}

func TestNormalize_Empty(t *testing.T) {
	rows, err := Normalize(nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("Expected no rows, got %d", len(rows))
	}
}
