package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/utakatalp/odds-recorder/internal/odds"
)

const bookMakerColumns = `id, name, url, note, created_at, updated_at`

func scanBookMaker(row scanner) (odds.BookMaker, error) {
	var b odds.BookMaker
	err := row.Scan(&b.ID, &b.Name, &b.URL, &b.Note, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func (s *Store) ListBookMakers(ctx context.Context) ([]odds.BookMaker, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT `+bookMakerColumns+` FROM euro.bookmakers ORDER BY created_at, id`)
	if err != nil {
		return nil, odds.DbErr("list bookmakers", err)
	}
	defer rows.Close()

	bms := []odds.BookMaker{}
	for rows.Next() {
		b, err := scanBookMaker(rows)
		if err != nil {
			return nil, odds.DbErr("scan bookmaker", err)
		}
		bms = append(bms, b)
	}
	if err := rows.Err(); err != nil {
		return nil, odds.DbErr("iterate bookmakers", err)
	}
	return bms, nil
}

func (s *Store) GetBookMakerByID(ctx context.Context, id int) (odds.BookMaker, error) {
	b, err := scanBookMaker(s.DB.QueryRowContext(ctx,
		`SELECT `+bookMakerColumns+` FROM euro.bookmakers WHERE id = $1`, id))
	if err != nil {
		return odds.BookMaker{}, odds.DbErr(fmt.Sprintf("get bookmaker %d", id), err)
	}
	return b, nil
}

// CreateBookMaker inserts b ignoring any preset id and returns the stored row.
func (s *Store) CreateBookMaker(ctx context.Context, b odds.BookMaker) (odds.BookMaker, error) {
	created, err := scanBookMaker(s.DB.QueryRowContext(ctx, `
		INSERT INTO euro.bookmakers (name, url, note)
		VALUES ($1, $2, $3)
		RETURNING `+bookMakerColumns,
		b.Name, b.URL, b.Note,
	))
	if err != nil {
		return odds.BookMaker{}, odds.DbErr("create bookmaker", err)
	}
	slog.Debug("bookmaker created", "id", created.ID, "name", created.Name)
	return created, nil
}

// UpdateBookMaker overwrites every field of the row selected by b.ID.
func (s *Store) UpdateBookMaker(ctx context.Context, b odds.BookMaker) (odds.BookMaker, error) {
	updated, err := scanBookMaker(s.DB.QueryRowContext(ctx, `
		UPDATE euro.bookmakers
		SET name = $1, url = $2, note = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING `+bookMakerColumns,
		b.Name, b.URL, b.Note, b.ID,
	))
	if err != nil {
		return odds.BookMaker{}, odds.DbErr(fmt.Sprintf("update bookmaker %d", b.ID), err)
	}
	slog.Debug("bookmaker updated", "id", updated.ID)
	return updated, nil
}

func (s *Store) DeleteBookMaker(ctx context.Context, id int) (int64, error) {
	return deleteByID(ctx, s.DB, "euro.bookmakers", id)
}
