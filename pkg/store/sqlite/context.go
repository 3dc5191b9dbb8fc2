package sqlite

import (
	"context"
	"database/sql"
)

type txKey struct{}

// WithTransaction attaches a transaction to the context so multi-statement
// seeding can share one tx without threading it through every store call.
func WithTransaction(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func GetTransaction(ctx context.Context) *sql.Tx {
	tx, _ := ctx.Value(txKey{}).(*sql.Tx)
	return tx
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func executor(ctx context.Context, db *sql.DB) execer {
	if tx := GetTransaction(ctx); tx != nil {
		return tx
	}
	return db
}
