package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/oklog/ulid/v2"
	"github.com/prepit-kitchen/prepit/internal/logger"
	"github.com/prepit-kitchen/prepit/internal/models"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)

const (
	DefaultPageSize = 100
	MaxPageSize     = 1000
)

// pgUniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

// newID returns a fresh ULID string.
var newID = func() string {
	return ulid.Make().String()
}

// TxGetter returns the transaction bound to ctx, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor picks the request transaction when there is one.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// mapError converts driver errors into repository sentinels.
func mapError(err error) error {
	if err == nil || errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) {
		return err
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w: %s", ErrConflict, pgErr.ConstraintName)
	}
	return err
}

// checkAffected turns a zero-row update or delete into ErrNotFound.
func checkAffected(res sql.Result) (int64, error) {
	if res == nil {
		return 0, nil
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: %w", ErrNotFound, sql.ErrNoRows)
	}
	return n, nil
}

func logQuery(query string, args []any, result any, err error) {
	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

func pageLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultPageSize
	case limit > MaxPageSize:
		return MaxPageSize
	}
	return limit
}

// toPage trims an over-fetched slice of limit+1 rows and sets the next cursor.
func toPage[T any](rows []T, limit int, id func(T) string) models.Page[T] {
	if rows == nil {
		rows = []T{}
	}
	if len(rows) <= limit {
		return models.Page[T]{Items: rows}
	}
	rows = rows[:limit]
	return models.Page[T]{Items: rows, NextCursor: id(rows[len(rows)-1])}
}

// PageFetcher loads the page that starts after cursor.
type PageFetcher[T any] func(ctx context.Context, cursor string) (models.Page[T], error)

// CollectAll drains a paginated source. It stops at the first error.
func CollectAll[T any](ctx context.Context, fetch PageFetcher[T]) ([]T, error) {
	all := []T{}
	cursor := ""
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page, err := fetch(ctx, cursor)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Items...)
		if page.NextCursor == "" || page.NextCursor == cursor {
			return all, nil
		}
		cursor = page.NextCursor
	}
}
