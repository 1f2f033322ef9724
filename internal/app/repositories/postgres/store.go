// Package postgres implements repositories.Store on PostgreSQL through pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yigit/airport/internal/app/models"
	"github.com/yigit/airport/internal/app/repositories"
	"github.com/yigit/airport/internal/pkg/dberrors"
	"github.com/yigit/airport/internal/pkg/logger"
)

// DBTX is the subset of pgxpool.Pool used by the store
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// Store handles every entity on a PostgreSQL database
type Store struct {
	db DBTX
	// Use squirrel instance with placeholder format
	sb squirrel.StatementBuilderType
}

var _ repositories.Store = (*Store)(nil)

// NewStore creates a new Store
func NewStore(db DBTX) *Store {
	return &Store{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Ping checks the database connection
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Close closes the underlying pool when it supports closing
func (s *Store) Close(ctx context.Context) error {
	if closer, ok := s.db.(interface{ Close() }); ok {
		closer.Close()
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

// parseID converts an identifier to the BIGINT key used by every table
func parseID(id models.ID) (int64, error) {
	v, err := id.Int64()
	if err != nil {
		return 0, fmt.Errorf("%w: %q", repositories.ErrInvalidID, id.String())
	}
	return v, nil
}

// writeError maps constraint violations to repository errors and wraps the rest
func writeError(err error, what string) error {
	switch {
	case dberrors.IsUniqueViolation(err):
		return repositories.ErrAlreadyExists
	case dberrors.IsForeignKeyViolation(err):
		return fmt.Errorf("%s: %w", what, repositories.ErrReferenceViolation)
	}
	logger.Error().Err(err).Str("operation", what).Msg("Error executing write query")
	return fmt.Errorf("error executing %s: %w", what, err)
}

// insert runs an INSERT ... RETURNING id statement
func (s *Store) insert(ctx context.Context, q squirrel.InsertBuilder, what string) (models.ID, error) {
	sql, args, err := q.Suffix("RETURNING id").ToSql()
	if err != nil {
		logger.Error().Err(err).Str("operation", what).Msg("Error building insert SQL")
		return "", fmt.Errorf("failed to build %s query: %w", what, err)
	}

	var id models.ID
	if err := s.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return "", writeError(err, what)
	}
	return id, nil
}

// exec runs an UPDATE or DELETE statement. Zero affected rows is not an error.
func (s *Store) exec(ctx context.Context, q squirrel.Sqlizer, what string) error {
	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Str("operation", what).Msg("Error building SQL")
		return fmt.Errorf("failed to build %s query: %w", what, err)
	}

	if _, err := s.db.Exec(ctx, sql, args...); err != nil {
		return writeError(err, what)
	}
	return nil
}

// selectOne runs q and scans a single row, mapping no rows to ErrNotFound
func selectOne[T any](ctx context.Context, db DBTX, q squirrel.SelectBuilder, scan func(scanner) (*T, error), what string) (*T, error) {
	sql, args, err := q.Limit(1).ToSql()
	if err != nil {
		logger.Error().Err(err).Str("operation", what).Msg("Error building select SQL")
		return nil, fmt.Errorf("failed to build %s query: %w", what, err)
	}

	record, err := scan(db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		logger.Error().Err(err).Str("operation", what).Msg("Error scanning row")
		return nil, fmt.Errorf("error executing %s: %w", what, err)
	}
	return record, nil
}

// selectMany runs q and scans every row into a non-nil slice
func selectMany[T any](ctx context.Context, db DBTX, q squirrel.SelectBuilder, scan func(scanner) (*T, error), what string) ([]*T, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Str("operation", what).Msg("Error building select SQL")
		return nil, fmt.Errorf("failed to build %s query: %w", what, err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("operation", what).Msg("Error executing select query")
		return nil, fmt.Errorf("error executing %s: %w", what, err)
	}
	defer rows.Close()

	records := []*T{}
	for rows.Next() {
		record, err := scan(rows)
		if err != nil {
			logger.Error().Err(err).Str("operation", what).Msg("Error scanning row")
			return nil, fmt.Errorf("error scanning %s row: %w", what, err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Str("operation", what).Msg("Error iterating rows")
		return nil, fmt.Errorf("error iterating %s rows: %w", what, err)
	}
	return records, nil
}

// touch is the SetMap entry every update carries
func touch(values map[string]any) map[string]any {
	values["updated_at"] = squirrel.Expr("NOW()")
	return values
}
