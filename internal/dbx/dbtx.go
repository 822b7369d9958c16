// Package dbx holds the small database/sql abstractions shared by the
// repositories: the DBTX handle satisfied by both *sql.DB and *sql.Tx, a
// transaction runner and the classification of driver errors.
package dbx

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/desawisata/internal/common"
)

// DBTX is the subset of database/sql used by the repositories.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx begins a transaction, runs fn against it and commits when fn
// returns nil. Errors and panics roll the transaction back; panics are
// rethrown.
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    _, err := repomanager.Blogs(tx).SoftDelete(ctx, id)
//	    return err
//	})
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return Wrap("begin transaction", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if cerr := tx.Commit(); cerr != nil {
			err = Wrap("commit", cerr)
		}
	}()

	err = fn(ctx, tx)
	return err
}

// Wrap marks err as a persistence failure of op. A context deadline also
// matches common.ErrTimeout, which is how an exhausted pool surfaces.
// Already classified errors pass through untouched.
func Wrap(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrorNotFound), errors.Is(err, common.ErrPersistence):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %s: %w", common.ErrPersistence, op, errors.Join(common.ErrTimeout, err))
	default:
		return fmt.Errorf("%w: %s: %w", common.ErrPersistence, op, err)
	}
}
