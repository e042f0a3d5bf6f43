package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/utakatalp/odds-recorder/internal/odds"
)

// matchSelect reads matches from the relation named by %s with league and
// team names joined in.
const matchSelect = `
	SELECT m.id, m.league_id, l.name, m.home_team_id, h.name, m.away_team_id, a.name,
	       m.game_time, m.game_year, m.game_round, m.game_result, m.predict_game_result,
	       m.history_note, m.note, m.created_at, m.updated_at
	FROM %s m
	JOIN euro.teams h ON h.id = m.home_team_id
	JOIN euro.teams a ON a.id = m.away_team_id
	LEFT JOIN euro.leagues l ON l.id = m.league_id`

func scanMatches(row scanner) (odds.Matches, error) {
	var m odds.Matches
	err := row.Scan(
		&m.ID,
		&m.LeagueID,
		&m.LeagueName,
		&m.HomeTeamID,
		&m.HomeTeam,
		&m.AwayTeamID,
		&m.AwayTeam,
		&m.GameTime,
		&m.GameYear,
		&m.GameRound,
		&m.GameResult,
		&m.PredictGameResult,
		&m.HistoryNote,
		&m.Note,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func collectMatches(rows *sql.Rows, op string) ([]odds.Matches, error) {
	defer rows.Close()

	matches := []odds.Matches{}
	for rows.Next() {
		m, err := scanMatches(rows)
		if err != nil {
			return nil, odds.DbErr("scan match", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, odds.DbErr(op, err)
	}
	return matches, nil
}

func insertMatch(ctx context.Context, q dbtx, m odds.Matches) (odds.Matches, error) {
	created, err := scanMatches(q.QueryRowContext(ctx, `
		WITH ins AS (
			INSERT INTO euro.matches (
				league_id, home_team_id, away_team_id, game_time, game_year, game_round,
				game_result, predict_game_result, history_note, note)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING *
		)`+fmt.Sprintf(matchSelect, "ins"),
		m.LeagueID, m.HomeTeamID, m.AwayTeamID, m.GameTime, m.GameYear, m.GameRound,
		m.GameResult, m.PredictGameResult, m.HistoryNote, m.Note,
	))
	if err != nil {
		return odds.Matches{}, odds.DbErr("create match", err)
	}
	return created, nil
}

func updateMatch(ctx context.Context, q dbtx, m odds.Matches) (odds.Matches, error) {
	updated, err := scanMatches(q.QueryRowContext(ctx, `
		WITH upd AS (
			UPDATE euro.matches
			SET league_id = $1, home_team_id = $2, away_team_id = $3, game_time = $4,
			    game_year = $5, game_round = $6, game_result = $7, predict_game_result = $8,
			    history_note = $9, note = $10, updated_at = NOW()
			WHERE id = $11
			RETURNING *
		)`+fmt.Sprintf(matchSelect, "upd"),
		m.LeagueID, m.HomeTeamID, m.AwayTeamID, m.GameTime, m.GameYear, m.GameRound,
		m.GameResult, m.PredictGameResult, m.HistoryNote, m.Note, m.ID,
	))
	if err != nil {
		return odds.Matches{}, odds.DbErr(fmt.Sprintf("update match %d", m.ID), err)
	}
	return updated, nil
}

func (s *Store) GetMatchByID(ctx context.Context, id int) (odds.Matches, error) {
	m, err := scanMatches(s.DB.QueryRowContext(ctx,
		fmt.Sprintf(matchSelect, "euro.matches")+` WHERE m.id = $1`, id))
	if err != nil {
		return odds.Matches{}, odds.DbErr(fmt.Sprintf("get match %d", id), err)
	}
	return m, nil
}

// ListMatchesByLeague returns every match of a league in kick-off order.
func (s *Store) ListMatchesByLeague(ctx context.Context, leagueID int) ([]odds.Matches, error) {
	op := fmt.Sprintf("list matches of league %d", leagueID)
	rows, err := s.DB.QueryContext(ctx,
		fmt.Sprintf(matchSelect, "euro.matches")+` WHERE m.league_id = $1 ORDER BY m.game_time, m.id`,
		leagueID)
	if err != nil {
		return nil, odds.DbErr(op, err)
	}
	return collectMatches(rows, op)
}

// CreateMatchInfo inserts the match and then each odds row bound to the new
// match id. Everything is written in one transaction.
func (s *Store) CreateMatchInfo(ctx context.Context, m odds.Matches, list []odds.Odds) (odds.MatchInfo, error) {
	var info odds.MatchInfo
	err := s.inTx(ctx, "create match info", func(tx *sql.Tx) error {
		created, err := insertMatch(ctx, tx, m)
		if err != nil {
			return err
		}
		stored := make([]odds.Odds, 0, len(list))
		for _, o := range list {
			o.MatchID = created.ID
			o, err = insertOdds(ctx, tx, o)
			if err != nil {
				return err
			}
			stored = append(stored, o)
		}
		info = odds.NewMatchInfo(created, stored)
		return nil
	})
	if err != nil {
		return odds.MatchInfo{}, err
	}
	slog.Debug("match info created", "match_id", info.Matches.ID, "odds", len(info.Odds))
	return info, nil
}

// UpdateMatchInfo overwrites the match row and reconciles its odds so that
// the stored set equals info.Odds: known ids are updated, id 0 entries are
// inserted and stored odds missing from the list are deleted. The whole
// sequence commits or rolls back as one unit.
func (s *Store) UpdateMatchInfo(ctx context.Context, info odds.MatchInfo) (odds.MatchInfo, error) {
	if info.Matches.ID <= 0 {
		return odds.MatchInfo{}, odds.Invalidf("match id is required for update")
	}

	var result odds.MatchInfo
	var plan odds.ReconcilePlan
	err := s.inTx(ctx, "update match info", func(tx *sql.Tx) error {
		// updating the match row first locks it against concurrent reconciles
		updated, err := updateMatch(ctx, tx, info.Matches)
		if err != nil {
			return err
		}
		current, err := listOdds(ctx, tx, updated.ID)
		if err != nil {
			return err
		}
		plan, err = odds.PlanReconcile(updated.ID, current, info.Odds)
		if err != nil {
			return err
		}
		if plan.Empty() {
			result = odds.NewMatchInfo(updated, current)
			return nil
		}
		if err := applyPlan(ctx, tx, updated.ID, plan); err != nil {
			return err
		}
		stored, err := listOdds(ctx, tx, updated.ID)
		if err != nil {
			return err
		}
		result = odds.NewMatchInfo(updated, stored)
		return nil
	})
	if err != nil {
		return odds.MatchInfo{}, err
	}
	slog.Debug("match info updated",
		"match_id", result.Matches.ID,
		"odds_updated", len(plan.Update),
		"odds_inserted", len(plan.Insert),
		"odds_deleted", len(plan.Delete),
	)
	return result, nil
}

// GetMatchInfo returns the match with all of its odds.
func (s *Store) GetMatchInfo(ctx context.Context, id int) (odds.MatchInfo, error) {
	m, err := s.GetMatchByID(ctx, id)
	if err != nil {
		return odds.MatchInfo{}, err
	}
	list, err := listOdds(ctx, s.DB, id)
	if err != nil {
		return odds.MatchInfo{}, err
	}
	return odds.NewMatchInfo(m, list), nil
}

// DeleteMatchInfo deletes the match row; its odds go with it through the
// foreign key.
func (s *Store) DeleteMatchInfo(ctx context.Context, id int) (int64, error) {
	return deleteByID(ctx, s.DB, "euro.matches", id)
}

// QueryMatchInfo returns one page of matches from euro.query_match_info.
func (s *Store) QueryMatchInfo(ctx context.Context, q odds.MatchQuery) ([]odds.Matches, error) {
	q, err := q.Normalize()
	if err != nil {
		return nil, err
	}
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, league_id, league_name, home_team_id, home_team, away_team_id, away_team,
		       game_time, game_year, game_round, game_result, predict_game_result,
		       history_note, note, created_at, updated_at
		FROM euro.query_match_info($1, $2, $3, $4, $5, $6, $7, $8)`,
		q.BookMakerID, q.LeagueID, q.TeamID, q.GameYear, q.GameRound, q.IsDesc, q.Cursor, q.PageSize,
	)
	if err != nil {
		return nil, odds.DbErr("query match info", err)
	}
	return collectMatches(rows, "query match info")
}
