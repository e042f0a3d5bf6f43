package league

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/utakatalp/odds-recorder/internal/odds"
)

// ParseScore reads a recorded result such as "2:1", "2-1" or "2：1".
func ParseScore(result string) (Score, error) {
	r := strings.NewReplacer("：", ":", "-", ":", " ", "")
	parts := strings.Split(r.Replace(strings.TrimSpace(result)), ":")
	if len(parts) != 2 {
		return Score{}, fmt.Errorf("parsing score %q: want home:away", result)
	}
	home, err := strconv.Atoi(parts[0])
	if err != nil || home < 0 {
		return Score{}, fmt.Errorf("parsing home goals of %q", result)
	}
	away, err := strconv.Atoi(parts[1])
	if err != nil || away < 0 {
		return Score{}, fmt.Errorf("parsing away goals of %q", result)
	}
	return Score{Home: home, Away: away}, nil
}

// Standings builds the league table from recorded results. Matches without a
// parsable GameResult are not counted.
func Standings(matches []odds.Matches) []*TableEntry {
	entries := make(map[int]*TableEntry)
	entry := func(id int, name string) *TableEntry {
		e, ok := entries[id]
		if !ok {
			e = &TableEntry{TeamID: id, TeamName: name}
			entries[id] = e
		}
		return e
	}

	for _, m := range matches {
		if m.GameResult == nil {
			continue
		}
		score, err := ParseScore(*m.GameResult)
		if err != nil {
			continue
		}
		home := entry(m.HomeTeamID, m.HomeTeam)
		away := entry(m.AwayTeamID, m.AwayTeam)

		home.Played++
		away.Played++
		home.GoalsFor += score.Home
		home.GoalsAgainst += score.Away
		away.GoalsFor += score.Away
		away.GoalsAgainst += score.Home

		switch {
		case score.Home > score.Away:
			home.Wins++
			away.Losses++
			home.Points += 3
		case score.Home < score.Away:
			away.Wins++
			home.Losses++
			away.Points += 3
		default:
			home.Draws++
			away.Draws++
			home.Points++
			away.Points++
		}
	}

	table := make([]*TableEntry, 0, len(entries))
	for _, e := range entries {
		e.GoalDiff = e.GoalsFor - e.GoalsAgainst
		table = append(table, e)
	}

	sort.Slice(table, func(i, j int) bool {
		a, b := table[i], table[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDiff != b.GoalDiff {
			return a.GoalDiff > b.GoalDiff
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		if a.TeamName != b.TeamName {
			return a.TeamName < b.TeamName
		}
		return a.TeamID < b.TeamID
	})
	return table
}
