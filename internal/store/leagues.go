package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/utakatalp/odds-recorder/internal/odds"
)

const leagueColumns = `id, name, note, created_at, updated_at`

func scanLeague(row scanner) (odds.League, error) {
	var l odds.League
	err := row.Scan(&l.ID, &l.Name, &l.Note, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}

func (s *Store) ListLeagues(ctx context.Context) ([]odds.League, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT `+leagueColumns+` FROM euro.leagues ORDER BY created_at, id`)
	if err != nil {
		return nil, odds.DbErr("list leagues", err)
	}
	defer rows.Close()

	leagues := []odds.League{}
	for rows.Next() {
		l, err := scanLeague(rows)
		if err != nil {
			return nil, odds.DbErr("scan league", err)
		}
		leagues = append(leagues, l)
	}
	if err := rows.Err(); err != nil {
		return nil, odds.DbErr("iterate leagues", err)
	}
	return leagues, nil
}

func (s *Store) GetLeagueByID(ctx context.Context, id int) (odds.League, error) {
	l, err := scanLeague(s.DB.QueryRowContext(ctx,
		`SELECT `+leagueColumns+` FROM euro.leagues WHERE id = $1`, id))
	if err != nil {
		return odds.League{}, odds.DbErr(fmt.Sprintf("get league %d", id), err)
	}
	return l, nil
}

func (s *Store) CreateLeague(ctx context.Context, l odds.League) (odds.League, error) {
	created, err := scanLeague(s.DB.QueryRowContext(ctx, `
		INSERT INTO euro.leagues (name, note)
		VALUES ($1, $2)
		RETURNING `+leagueColumns,
		l.Name, l.Note,
	))
	if err != nil {
		return odds.League{}, odds.DbErr("create league", err)
	}
	slog.Debug("league created", "id", created.ID, "name", created.Name)
	return created, nil
}

func (s *Store) UpdateLeague(ctx context.Context, l odds.League) (odds.League, error) {
	updated, err := scanLeague(s.DB.QueryRowContext(ctx, `
		UPDATE euro.leagues
		SET name = $1, note = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING `+leagueColumns,
		l.Name, l.Note, l.ID,
	))
	if err != nil {
		return odds.League{}, odds.DbErr(fmt.Sprintf("update league %d", l.ID), err)
	}
	slog.Debug("league updated", "id", updated.ID)
	return updated, nil
}

// DeleteLeague fails with a database error while teams or matches still
// reference the league.
func (s *Store) DeleteLeague(ctx context.Context, id int) (int64, error) {
	return deleteByID(ctx, s.DB, "euro.leagues", id)
}
