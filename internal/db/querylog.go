package db

import (
	"context"
	"database/sql"
	"strings"

	"go.uber.org/zap"
)

// QueryLogger logs every statement before handing it to the wrapped DBTX.
type QueryLogger struct {
	DB  DBTX
	Log *zap.Logger
	// Format keeps the statement's line breaks and indentation.
	Format bool
}

// NewQueryLogger wraps db. When show is false db is returned unchanged.
func NewQueryLogger(db DBTX, log *zap.Logger, show, format bool) DBTX {
	if !show {
		return db
	}
	return &QueryLogger{DB: db, Log: log, Format: format}
}

// ExecContext logs query and executes it on the wrapped handle.
func (q *QueryLogger) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	q.log(query, args)
	return q.DB.ExecContext(ctx, query, args...)
}

// QueryContext logs query and runs it on the wrapped handle.
func (q *QueryLogger) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	q.log(query, args)
	return q.DB.QueryContext(ctx, query, args...)
}

// QueryRowContext logs query and runs it on the wrapped handle, expecting at most one row.
func (q *QueryLogger) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	q.log(query, args)
	return q.DB.QueryRowContext(ctx, query, args...)
}

func (q *QueryLogger) log(query string, args []any) {
	if !q.Format {
		query = strings.Join(strings.Fields(query), " ")
	}
	q.Log.Info("sql", zap.String("query", query), zap.Int("args", len(args)))
}
