package resources

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/desawisata/internal/common"
	"github.com/dmitrijs2005/desawisata/internal/dbx"
	"github.com/dmitrijs2005/desawisata/internal/server/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository[T any, P any] struct {
	db   dbx.DBTX
	kind *Kind[T, P]
}

func NewPostgresRepository[T any, P any](db dbx.DBTX, kind *Kind[T, P]) *PostgresRepository[T, P] {
	return &PostgresRepository[T, P]{db: db, kind: kind}
}

func (r *PostgresRepository[T, P]) ListActive(ctx context.Context) ([]T, error) {
	rows, err := r.db.QueryContext(ctx, r.kind.queries().list)
	if err != nil {
		return nil, dbx.Wrap("list "+r.kind.Name, err)
	}
	defer rows.Close()

	result := make([]T, 0)
	for rows.Next() {
		item, err := r.kind.Scan(rows)
		if err != nil {
			return nil, dbx.Wrap("scan "+r.kind.Name, err)
		}
		result = append(result, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.Wrap("list "+r.kind.Name, err)
	}

	return result, nil
}

func (r *PostgresRepository[T, P]) Get(ctx context.Context, id int64) (*T, error) {
	row := r.db.QueryRowContext(ctx, r.kind.queries().get, id)
	return r.scanOne("get "+r.kind.Name, row)
}

func (r *PostgresRepository[T, P]) Create(ctx context.Context, p *P) (*T, error) {
	row := r.db.QueryRowContext(ctx, r.kind.queries().insert, r.kind.Values(p)...)
	return r.scanOne("insert "+r.kind.Name, row)
}

func (r *PostgresRepository[T, P]) Update(ctx context.Context, id int64, p *P) (*T, error) {
	args := append(r.kind.Values(p), id)
	row := r.db.QueryRowContext(ctx, r.kind.queries().update, args...)
	return r.scanOne("update "+r.kind.Name, row)
}

func (r *PostgresRepository[T, P]) SoftDelete(ctx context.Context, id int64) (*models.Deleted, error) {
	d := &models.Deleted{}
	err := r.db.QueryRowContext(ctx, r.kind.queries().softDelete, id).Scan(&d.ID, &d.Label)
	if err != nil {
		return nil, r.classify("delete "+r.kind.Name, err)
	}
	return d, nil
}

func (r *PostgresRepository[T, P]) scanOne(op string, row *sql.Row) (*T, error) {
	item, err := r.kind.Scan(row)
	if err != nil {
		return nil, r.classify(op, err)
	}
	return item, nil
}

func (r *PostgresRepository[T, P]) classify(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrorNotFound
	}
	return dbx.Wrap(op, err)
}
