package league

import (
	"testing"

	"github.com/utakatalp/odds-recorder/internal/odds"
)

func TestParseScore(t *testing.T) {
	tests := []struct {
		in      string
		want    Score
		wantErr bool
	}{
		{"2:1", Score{2, 1}, false},
		{" 0 - 0 ", Score{0, 0}, false},
		{"3：2", Score{3, 2}, false},
		{"2", Score{}, true},
		{"a:1", Score{}, true},
		{"1:2:3", Score{}, true},
	}
	for _, tt := range tests {
		got, err := ParseScore(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseScore(%q) err = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseScore(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func match(home, away int, result string) odds.Matches {
	names := map[int]string{1: "曼联", 2: "利物浦", 3: "切尔西"}
	return odds.Matches{
		HomeTeamID: home,
		HomeTeam:   names[home],
		AwayTeamID: away,
		AwayTeam:   names[away],
		GameResult: odds.Optional(result),
	}
}

func TestStandings(t *testing.T) {
	table := Standings([]odds.Matches{
		match(1, 2, "2:1"),
		match(2, 3, "1:1"),
		match(3, 1, "0:3"),
		match(2, 1, ""),        // not played yet
		match(3, 2, "pending"), // unparsable
	})
	if len(table) != 3 {
		t.Fatalf("expected 3 teams, got %d", len(table))
	}

	first := table[0]
	if first.TeamID != 1 || first.Points != 6 || first.Played != 2 || first.GoalDiff != 4 {
		t.Errorf("leader: %+v", first)
	}
	// 利物浦 and 切尔西 both have 1 point; goal difference -1 beats -3
	if table[1].TeamID != 2 || table[1].Points != 1 || table[1].Draws != 1 {
		t.Errorf("second: %+v", table[1])
	}
	if table[2].TeamID != 3 || table[2].GoalsAgainst != 4 || table[2].Losses != 1 {
		t.Errorf("third: %+v", table[2])
	}
}
