package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"

	"github.com/utakatalp/odds-recorder/internal/config"
	"github.com/utakatalp/odds-recorder/internal/odds"
)

// Store wraps a Postgres connection pool and is the only component that
// talks to the odds database. It holds no other state and is safe for
// concurrent use.
type Store struct {
	DB *sql.DB
}

// dbtx is satisfied by both *sql.DB and *sql.Tx.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type scanner interface {
	Scan(dest ...any) error
}

// NewStore opens a Postgres pool using the given connection string.
func NewStore(ctx context.Context, connStr string, maxConns int) (*Store, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", odds.DbErr("open", err))
	}
	if maxConns > 0 {
		db.SetMaxOpenConns(maxConns)
		db.SetMaxIdleConns(maxConns)
	}

	// verify early
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", odds.DbErr("ping", err))
	}
	slog.Info("database connection established", "max_connections", maxConns)
	return &Store{DB: db}, nil
}

// Open builds the pool from the db section of the configuration.
func Open(ctx context.Context, cfg config.DbConfig) (*Store, error) {
	return NewStore(ctx, cfg.DSN(), cfg.MaxConnections)
}

func (s *Store) Ping(ctx context.Context) error {
	return odds.DbErr("ping", s.DB.PingContext(ctx))
}

func (s *Store) Close() error {
	return s.DB.Close()
}

// Migrate creates the euro schema, its tables and the paging function if
// they do not exist.
func (s *Store) Migrate(ctx context.Context) error {
	for _, q := range migrations {
		if _, err := s.DB.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("migrating: %w", odds.DbErr("migrate", err))
		}
	}
	slog.Info("database schema migrated", "statements", len(migrations))
	return nil
}

// inTx runs fn in a transaction that is committed only when fn succeeds.
func (s *Store) inTx(ctx context.Context, op string, fn func(tx *sql.Tx) error) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return odds.DbErr("begin "+op, err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return odds.DbErr("commit "+op, err)
	}
	return nil
}

// deleteByID removes one row of table. Zero affected rows is ErrNotFound.
func deleteByID(ctx context.Context, q dbtx, table string, id int) (int64, error) {
	op := fmt.Sprintf("delete %s %d", table, id)
	res, err := q.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return 0, odds.DbErr(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, odds.DbErr(op, err)
	}
	if n == 0 {
		return 0, fmt.Errorf("%s: %w", op, odds.ErrNotFound)
	}
	slog.Debug("row deleted", "table", table, "id", id)
	return n, nil
}
