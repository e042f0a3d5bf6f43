package store

var migrations = []string{
	`CREATE SCHEMA IF NOT EXISTS euro`,
	`CREATE TABLE IF NOT EXISTS euro.bookmakers (
		id         SERIAL PRIMARY KEY,
		name       TEXT        NOT NULL,
		url        TEXT,
		note       TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS euro.leagues (
		id         SERIAL PRIMARY KEY,
		name       TEXT        NOT NULL,
		note       TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS euro.teams (
		id         SERIAL PRIMARY KEY,
		league_id  INT         NOT NULL REFERENCES euro.leagues(id),
		name       TEXT        NOT NULL,
		note       TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_teams_league_id ON euro.teams(league_id)`,
	`CREATE TABLE IF NOT EXISTS euro.matches (
		id                  SERIAL PRIMARY KEY,
		league_id           INT         NOT NULL REFERENCES euro.leagues(id),
		home_team_id        INT         NOT NULL REFERENCES euro.teams(id),
		away_team_id        INT         NOT NULL REFERENCES euro.teams(id),
		game_time           TIMESTAMPTZ NOT NULL,
		game_year           TEXT,
		game_round          TEXT,
		game_result         TEXT,
		predict_game_result TEXT,
		history_note        TEXT,
		note                TEXT,
		created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at          TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CHECK (home_team_id <> away_team_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_matches_league_id ON euro.matches(league_id)`,
	`CREATE INDEX IF NOT EXISTS idx_matches_home_team_id ON euro.matches(home_team_id)`,
	`CREATE INDEX IF NOT EXISTS idx_matches_away_team_id ON euro.matches(away_team_id)`,
	`CREATE TABLE IF NOT EXISTS euro.odds (
		id             SERIAL PRIMARY KEY,
		match_id       INT           NOT NULL REFERENCES euro.matches(id) ON DELETE CASCADE,
		bookmaker_id   INT           NOT NULL REFERENCES euro.bookmakers(id),
		home_win_start NUMERIC(10,4) NOT NULL DEFAULT 0,
		draw_start     NUMERIC(10,4) NOT NULL DEFAULT 0,
		away_win_start NUMERIC(10,4) NOT NULL DEFAULT 0,
		home_win_end   NUMERIC(10,4) NOT NULL DEFAULT 0,
		draw_end       NUMERIC(10,4) NOT NULL DEFAULT 0,
		away_win_end   NUMERIC(10,4) NOT NULL DEFAULT 0,
		note           TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_odds_match_id ON euro.odds(match_id)`,
	`CREATE INDEX IF NOT EXISTS idx_odds_bookmaker_id ON euro.odds(bookmaker_id)`,
	// paging is keyed on id so identical calls return identical pages
	`CREATE OR REPLACE FUNCTION euro.query_match_info(
		p_bookmaker_id INT,
		p_league_id    INT,
		p_team_id      INT,
		p_game_year    TEXT,
		p_game_round   TEXT,
		p_is_desc      BOOLEAN,
		p_cursor       INT,
		p_page_size    INT
	)
	RETURNS TABLE (
		id                  INT,
		league_id           INT,
		league_name         TEXT,
		home_team_id        INT,
		home_team           TEXT,
		away_team_id        INT,
		away_team           TEXT,
		game_time           TIMESTAMPTZ,
		game_year           TEXT,
		game_round          TEXT,
		game_result         TEXT,
		predict_game_result TEXT,
		history_note        TEXT,
		note                TEXT,
		created_at          TIMESTAMPTZ,
		updated_at          TIMESTAMPTZ
	)
	LANGUAGE sql STABLE AS $$
		SELECT m.id, m.league_id, l.name, m.home_team_id, h.name, m.away_team_id, a.name,
		       m.game_time, m.game_year, m.game_round, m.game_result, m.predict_game_result,
		       m.history_note, m.note, m.created_at, m.updated_at
		FROM euro.matches m
		JOIN euro.teams h ON h.id = m.home_team_id
		JOIN euro.teams a ON a.id = m.away_team_id
		LEFT JOIN euro.leagues l ON l.id = m.league_id
		WHERE (p_league_id = 0 OR m.league_id = p_league_id)
		  AND (p_team_id = 0 OR m.home_team_id = p_team_id OR m.away_team_id = p_team_id)
		  AND (p_bookmaker_id = 0 OR EXISTS (
		        SELECT 1 FROM euro.odds o
		        WHERE o.match_id = m.id AND o.bookmaker_id = p_bookmaker_id))
		  AND (p_game_year IS NULL OR m.game_year = p_game_year)
		  AND (p_game_round IS NULL OR m.game_round = p_game_round)
		  AND (p_cursor = 0
		       OR (p_is_desc AND m.id < p_cursor)
		       OR (NOT p_is_desc AND m.id > p_cursor))
		ORDER BY CASE WHEN p_is_desc THEN m.id END DESC,
		         CASE WHEN NOT p_is_desc THEN m.id END ASC
		LIMIT p_page_size
	$$`,
}
