package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/desawisata/internal/common"
	"github.com/dmitrijs2005/desawisata/internal/dbx"
	"github.com/dmitrijs2005/desawisata/internal/server/models"
	"github.com/dmitrijs2005/desawisata/internal/server/repositories/blogs"
	"github.com/dmitrijs2005/desawisata/internal/server/repositories/destinations"
	"github.com/dmitrijs2005/desawisata/internal/server/repositories/packages"
	"github.com/dmitrijs2005/desawisata/internal/server/repositories/users"
)

var errBoom = errors.New("boom")

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

type fakeUsersRepo struct {
	getOut *models.User
	getErr error
	gotKey string

	createErr error
	created   *models.User
}

func (f *fakeUsersRepo) GetActiveByEmail(ctx context.Context, email string) (*models.User, error) {
	f.gotKey = email
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = 1
	u.Active = true
	f.created = u
	return u, nil
}

// fakeResourceRepo is an in-memory resources.Repository keyed by id. The
// DBTX it was bound to is recorded so tests can tell pool reads from
// transactional writes.
type fakeResourceRepo[T any, P any] struct {
	items   map[int64]*T
	labels  map[int64]string
	err     error
	boundTo []dbx.DBTX
	build   func(id int64, p *P, prev *T) *T

	lastCtx context.Context
}

func (f *fakeResourceRepo[T, P]) bind(db dbx.DBTX) *fakeResourceRepo[T, P] {
	f.boundTo = append(f.boundTo, db)
	return f
}

func (f *fakeResourceRepo[T, P]) ListActive(ctx context.Context) ([]T, error) {
	f.lastCtx = ctx
	if f.err != nil {
		return nil, f.err
	}
	out := make([]T, 0, len(f.items))
	for _, it := range f.items {
		out = append(out, *it)
	}
	return out, nil
}

func (f *fakeResourceRepo[T, P]) Get(ctx context.Context, id int64) (*T, error) {
	f.lastCtx = ctx
	if f.err != nil {
		return nil, f.err
	}
	it, ok := f.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return it, nil
}

func (f *fakeResourceRepo[T, P]) Create(ctx context.Context, p *P) (*T, error) {
	if f.err != nil {
		return nil, f.err
	}
	id := int64(len(f.items) + 1)
	it := f.build(id, p, nil)
	f.items[id] = it
	return it, nil
}

func (f *fakeResourceRepo[T, P]) Update(ctx context.Context, id int64, p *P) (*T, error) {
	if f.err != nil {
		return nil, f.err
	}
	prev, ok := f.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	it := f.build(id, p, prev)
	f.items[id] = it
	return it, nil
}

func (f *fakeResourceRepo[T, P]) SoftDelete(ctx context.Context, id int64) (*models.Deleted, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.items[id]; !ok {
		return nil, common.ErrorNotFound
	}
	delete(f.items, id)
	return &models.Deleted{ID: id, Label: f.labels[id]}, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	d *fakeResourceRepo[models.Destination, models.DestinationInput]
	p *fakeResourceRepo[models.Package, models.PackageInput]
	b *fakeResourceRepo[models.Blog, models.BlogInput]
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository           { return m.u }
func (m *fakeRepoManager) Destinations(db dbx.DBTX) destinations.Repository {
	return m.d.bind(db)
}
func (m *fakeRepoManager) Packages(db dbx.DBTX) packages.Repository { return m.p.bind(db) }
func (m *fakeRepoManager) Blogs(db dbx.DBTX) blogs.Repository       { return m.b.bind(db) }

type fakeTokens struct {
	token string
	err   error

	gotID   int64
	gotRole string
}

func (f *fakeTokens) Issue(userID int64, role string) (string, error) {
	f.gotID, f.gotRole = userID, role
	return f.token, f.err
}

// plainHasher treats "hashed:<pw>" as the hash of pw.
type plainHasher struct{ err error }

func (h plainHasher) Hash(p string) (string, error) { return "hashed:" + p, h.err }
func (h plainHasher) Verify(p, encoded string) bool { return encoded == "hashed:"+p }
