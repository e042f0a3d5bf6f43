package store

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"github.com/utakatalp/odds-recorder/internal/odds"
)

const oddsSelect = `
	SELECT o.id, o.match_id, o.bookmaker_id, b.name,
	       o.home_win_start, o.draw_start, o.away_win_start,
	       o.home_win_end, o.draw_end, o.away_win_end, o.note
	FROM %s o
	LEFT JOIN euro.bookmakers b ON b.id = o.bookmaker_id`

func scanOdds(row scanner) (odds.Odds, error) {
	var o odds.Odds
	err := row.Scan(
		&o.ID,
		&o.MatchID,
		&o.BookMakerID,
		&o.BookMakerName,
		&o.HomeWinStart,
		&o.DrawStart,
		&o.AwayWinStart,
		&o.HomeWinEnd,
		&o.DrawEnd,
		&o.AwayWinEnd,
		&o.Note,
	)
	return o, err
}

// ListOddsByMatch returns the odds recorded for a match ordered by id.
func (s *Store) ListOddsByMatch(ctx context.Context, matchID int) ([]odds.Odds, error) {
	return listOdds(ctx, s.DB, matchID)
}

func listOdds(ctx context.Context, q dbtx, matchID int) ([]odds.Odds, error) {
	op := fmt.Sprintf("list odds of match %d", matchID)
	rows, err := q.QueryContext(ctx,
		fmt.Sprintf(oddsSelect, "euro.odds")+` WHERE o.match_id = $1 ORDER BY o.id`, matchID)
	if err != nil {
		return nil, odds.DbErr(op, err)
	}
	defer rows.Close()

	list := []odds.Odds{}
	for rows.Next() {
		o, err := scanOdds(rows)
		if err != nil {
			return nil, odds.DbErr("scan odds", err)
		}
		list = append(list, o)
	}
	if err := rows.Err(); err != nil {
		return nil, odds.DbErr(op, err)
	}
	return list, nil
}

func insertOdds(ctx context.Context, q dbtx, o odds.Odds) (odds.Odds, error) {
	created, err := scanOdds(q.QueryRowContext(ctx, `
		WITH ins AS (
			INSERT INTO euro.odds (
				match_id, bookmaker_id, home_win_start, draw_start, away_win_start,
				home_win_end, draw_end, away_win_end, note)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING *
		)`+fmt.Sprintf(oddsSelect, "ins"),
		o.MatchID, o.BookMakerID, o.HomeWinStart, o.DrawStart, o.AwayWinStart,
		o.HomeWinEnd, o.DrawEnd, o.AwayWinEnd, o.Note,
	))
	if err != nil {
		return odds.Odds{}, odds.DbErr(fmt.Sprintf("create odds for match %d", o.MatchID), err)
	}
	return created, nil
}

func updateOdds(ctx context.Context, q dbtx, o odds.Odds) error {
	res, err := q.ExecContext(ctx, `
		UPDATE euro.odds
		SET bookmaker_id = $1, home_win_start = $2, draw_start = $3, away_win_start = $4,
		    home_win_end = $5, draw_end = $6, away_win_end = $7, note = $8
		WHERE id = $9 AND match_id = $10`,
		o.BookMakerID, o.HomeWinStart, o.DrawStart, o.AwayWinStart,
		o.HomeWinEnd, o.DrawEnd, o.AwayWinEnd, o.Note, o.ID, o.MatchID,
	)
	op := fmt.Sprintf("update odds %d", o.ID)
	if err != nil {
		return odds.DbErr(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return odds.DbErr(op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, odds.ErrNotFound)
	}
	return nil
}

func deleteOdds(ctx context.Context, q dbtx, matchID int, ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	keys := make([]int64, len(ids))
	for i, id := range ids {
		keys[i] = int64(id)
	}
	_, err := q.ExecContext(ctx,
		`DELETE FROM euro.odds WHERE match_id = $1 AND id = ANY($2)`,
		matchID, pq.Array(keys))
	return odds.DbErr(fmt.Sprintf("delete odds of match %d", matchID), err)
}

// applyPlan writes a reconcile plan: deletes first, then updates, then inserts.
func applyPlan(ctx context.Context, q dbtx, matchID int, plan odds.ReconcilePlan) error {
	if err := deleteOdds(ctx, q, matchID, plan.Delete); err != nil {
		return err
	}
	for _, o := range plan.Update {
		if err := updateOdds(ctx, q, o); err != nil {
			return err
		}
	}
	for _, o := range plan.Insert {
		if _, err := insertOdds(ctx, q, o); err != nil {
			return err
		}
	}
	return nil
}
