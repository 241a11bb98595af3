package database

import "context"

// DB is the narrow database surface the record store needs: whole-table
// reads, transactional writes, and connectivity checks.
type DB interface {
	Ping(ctx context.Context) error
	Close() error

	Query(ctx context.Context, query string, args ...any) (Rows, error)

	Begin(ctx context.Context) (Tx, error)
}

// Tx is a write transaction. Record appends run inside one so a failed
// insert never becomes visible.
type Tx interface {
	Exec(ctx context.Context, query string, args ...any) (int64, error)

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type Rows interface {
	Close()
	Next() bool
	Scan(dest ...any) error
	Err() error
}
