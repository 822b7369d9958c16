package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/desawisata/internal/common"
	"github.com/dmitrijs2005/desawisata/internal/dbx"
	"github.com/dmitrijs2005/desawisata/internal/server/models"
	"github.com/dmitrijs2005/desawisata/internal/server/repositories/resources"
)

// CreatePreparer is implemented by payloads that validate themselves and
// fill defaults before insertion.
type CreatePreparer interface {
	PrepareCreate() error
}

type UpdatePreparer interface {
	PrepareUpdate() error
}

// ResourceService runs the CRUD protocol of one resource kind. Reads use the
// pool directly; every write is a single-statement transaction. Each call is
// bounded by timeout, which also caps the wait for a pooled connection.
type ResourceService[T any, P any] struct {
	db      *sql.DB
	repo    func(db dbx.DBTX) resources.Repository[T, P]
	timeout time.Duration
}

func NewResourceService[T any, P any](db *sql.DB, repo func(db dbx.DBTX) resources.Repository[T, P], timeout time.Duration) *ResourceService[T, P] {
	return &ResourceService[T, P]{db: db, repo: repo, timeout: timeout}
}

func (s *ResourceService[T, P]) List(ctx context.Context) ([]T, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	return s.repo(s.db).ListActive(ctx)
}

func (s *ResourceService[T, P]) Get(ctx context.Context, id int64) (*T, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	return s.repo(s.db).Get(ctx, id)
}

func (s *ResourceService[T, P]) Create(ctx context.Context, p *P) (*T, error) {
	if v, ok := any(p).(CreatePreparer); ok {
		if err := v.PrepareCreate(); err != nil {
			return nil, fmt.Errorf("%w: %w", common.ErrValidation, err)
		}
	}

	var item *T
	err := s.inTx(ctx, func(ctx context.Context, tx dbx.DBTX) (err error) {
		item, err = s.repo(tx).Create(ctx, p)
		return err
	})
	return item, err
}

// Update applies the non-nil fields of p to an active record.
func (s *ResourceService[T, P]) Update(ctx context.Context, id int64, p *P) (*T, error) {
	if v, ok := any(p).(UpdatePreparer); ok {
		if err := v.PrepareUpdate(); err != nil {
			return nil, fmt.Errorf("%w: %w", common.ErrValidation, err)
		}
	}

	var item *T
	err := s.inTx(ctx, func(ctx context.Context, tx dbx.DBTX) (err error) {
		item, err = s.repo(tx).Update(ctx, id, p)
		return err
	})
	return item, err
}

func (s *ResourceService[T, P]) Delete(ctx context.Context, id int64) (*models.Deleted, error) {
	var deleted *models.Deleted
	err := s.inTx(ctx, func(ctx context.Context, tx dbx.DBTX) (err error) {
		deleted, err = s.repo(tx).SoftDelete(ctx, id)
		return err
	})
	return deleted, err
}

func (s *ResourceService[T, P]) inTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	return dbx.WithTx(ctx, s.db, nil, fn)
}
