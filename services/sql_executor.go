package services

import (
	"context"
	"database/sql"
)

// SQLExecutor는 서비스 계층이 데이터베이스 구현 세부사항으로부터 분리되도록 해주는 최소한의 인터페이스입니다.
type SQLExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// NewSQLExecutor는 *sql.DB를 SQLExecutor로 사용합니다.
func NewSQLExecutor(db *sql.DB) SQLExecutor {
	return db
}

// TraceFunc is called with every statement before it is sent to the database.
type TraceFunc func(ctx context.Context, query string, args []any)

type tracingExecutor struct {
	next  SQLExecutor
	trace TraceFunc
}

// NewTracingExecutor wraps next so trace sees each query. Statements run
// inside a transaction obtained from BeginTx are not traced.
func NewTracingExecutor(next SQLExecutor, trace TraceFunc) SQLExecutor {
	return &tracingExecutor{next: next, trace: trace}
}

func (t *tracingExecutor) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	t.trace(ctx, query, args)
	return t.next.ExecContext(ctx, query, args...)
}

func (t *tracingExecutor) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	t.trace(ctx, query, args)
	return t.next.QueryContext(ctx, query, args...)
}

func (t *tracingExecutor) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	t.trace(ctx, query, args)
	return t.next.QueryRowContext(ctx, query, args...)
}

func (t *tracingExecutor) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	t.trace(ctx, "BEGIN", nil)
	return t.next.BeginTx(ctx, opts)
}
