package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/utakatalp/odds-recorder/internal/odds"
)

// teamSelect reads teams from the relation named by %s, joined with their league.
const teamSelect = `
	SELECT t.id, t.league_id, l.name, t.name, t.note, t.created_at, t.updated_at
	FROM %s t
	LEFT JOIN euro.leagues l ON l.id = t.league_id`

func scanTeam(row scanner) (odds.Team, error) {
	var t odds.Team
	err := row.Scan(&t.ID, &t.LeagueID, &t.LeagueName, &t.Name, &t.Note, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (s *Store) queryTeams(ctx context.Context, op, query string, args ...any) ([]odds.Team, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, odds.DbErr(op, err)
	}
	defer rows.Close()

	teams := []odds.Team{}
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, odds.DbErr("scan team", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, odds.DbErr(op, err)
	}
	return teams, nil
}

func (s *Store) ListTeams(ctx context.Context) ([]odds.Team, error) {
	return s.queryTeams(ctx, "list teams",
		fmt.Sprintf(teamSelect, "euro.teams")+` ORDER BY t.created_at, t.id`)
}

// ListTeamsByLeague returns the teams registered in one league.
func (s *Store) ListTeamsByLeague(ctx context.Context, leagueID int) ([]odds.Team, error) {
	return s.queryTeams(ctx, fmt.Sprintf("list teams of league %d", leagueID),
		fmt.Sprintf(teamSelect, "euro.teams")+` WHERE t.league_id = $1 ORDER BY t.created_at, t.id`,
		leagueID)
}

func (s *Store) GetTeamByID(ctx context.Context, id int) (odds.Team, error) {
	t, err := scanTeam(s.DB.QueryRowContext(ctx,
		fmt.Sprintf(teamSelect, "euro.teams")+` WHERE t.id = $1`, id))
	if err != nil {
		return odds.Team{}, odds.DbErr(fmt.Sprintf("get team %d", id), err)
	}
	return t, nil
}

func (s *Store) CreateTeam(ctx context.Context, t odds.Team) (odds.Team, error) {
	created, err := scanTeam(s.DB.QueryRowContext(ctx, `
		WITH ins AS (
			INSERT INTO euro.teams (league_id, name, note)
			VALUES ($1, $2, $3)
			RETURNING *
		)`+fmt.Sprintf(teamSelect, "ins"),
		t.LeagueID, t.Name, t.Note,
	))
	if err != nil {
		return odds.Team{}, odds.DbErr("create team", err)
	}
	slog.Debug("team created", "id", created.ID, "league_id", created.LeagueID, "name", created.Name)
	return created, nil
}

// UpdateTeam overwrites name, league and note. LeagueName is ignored and
// re-read from the league row.
func (s *Store) UpdateTeam(ctx context.Context, t odds.Team) (odds.Team, error) {
	updated, err := scanTeam(s.DB.QueryRowContext(ctx, `
		WITH upd AS (
			UPDATE euro.teams
			SET league_id = $1, name = $2, note = $3, updated_at = NOW()
			WHERE id = $4
			RETURNING *
		)`+fmt.Sprintf(teamSelect, "upd"),
		t.LeagueID, t.Name, t.Note, t.ID,
	))
	if err != nil {
		return odds.Team{}, odds.DbErr(fmt.Sprintf("update team %d", t.ID), err)
	}
	slog.Debug("team updated", "id", updated.ID)
	return updated, nil
}

func (s *Store) DeleteTeam(ctx context.Context, id int) (int64, error) {
	return deleteByID(ctx, s.DB, "euro.teams", id)
}
