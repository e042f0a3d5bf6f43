package odds

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	ErrConfigRead  = errors.New("failed to read configuration file")
	ErrConfigParse = errors.New("failed to parse configuration file")
	ErrNotFound    = errors.New("no result found by the given condition")
	ErrInvalid     = errors.New("invalid record")
	ErrUnknown     = errors.New("unknown error")
)

// Kind classifies an error into the closed set used across the data layer.
type Kind int

const (
	KindNone Kind = iota
	KindConfigRead
	KindConfigParse
	KindDb
	KindNotFound
	KindInvalid
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindConfigRead:
		return "config_read"
	case KindConfigParse:
		return "config_parse"
	case KindDb:
		return "database"
	case KindNotFound:
		return "not_found"
	case KindInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// DbError wraps any failure reported by the database driver.
type DbError struct {
	Op  string
	Err error
}

func (e *DbError) Error() string {
	var pqErr *pq.Error
	if errors.As(e.Err, &pqErr) {
		return fmt.Sprintf("database error: %s: %s (%s)", e.Op, pqErr.Message, pqErr.Code)
	}
	return fmt.Sprintf("database error: %s: %v", e.Op, e.Err)
}

func (e *DbError) Unwrap() error { return e.Err }

// DbErr converts a driver error into the taxonomy. sql.ErrNoRows becomes
// ErrNotFound; nil stays nil.
func DbErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	var dbErr *DbError
	if errors.As(err, &dbErr) {
		return err
	}
	return &DbError{Op: op, Err: err}
}

// Invalidf returns an ErrInvalid carrying a formatted reason.
func Invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var dbErr *DbError
	switch {
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalid):
		return KindInvalid
	case errors.Is(err, ErrConfigRead):
		return KindConfigRead
	case errors.Is(err, ErrConfigParse):
		return KindConfigParse
	case errors.As(err, &dbErr):
		return KindDb
	default:
		return KindUnknown
	}
}
