package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/memo-app/internal/middlewares"
)

// executor is the subset of sqlx shared by *sqlx.DB and *sqlx.Tx, so
// repositories run inside the request transaction when one is scoped to
// the context and fall back to the pool otherwise.
type executor interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

func pick(ctx context.Context, db *sqlx.DB) executor {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}

// squish collapses a multi-line query to one line for logging.
func squish(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
