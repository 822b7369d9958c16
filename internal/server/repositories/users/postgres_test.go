package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/desawisata/internal/common"
	"github.com/dmitrijs2005/desawisata/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const selectByEmail = `(?s)^SELECT\s+id_user,\s*username,\s*email,\s*password,\s*role,\s*status,\s*created_at,\s*updated_at\s+FROM\s+users\s+WHERE\s+email\s*=\s*\$1\s+AND\s+status\s*=\s*1\s+LIMIT\s+1$`

var ts = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestGetActiveByEmail_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id_user", "username", "email", "password", "role", "status", "created_at", "updated_at"}).
		AddRow(int64(1), "admin", "admin@desa.id", "pbkdf2:sha256:1000$s$h", "admin", 1, ts, ts)
	mock.ExpectQuery(selectByEmail).
		WithArgs("admin@desa.id").
		WillReturnRows(rows)

	got, err := repo.GetActiveByEmail(context.Background(), "admin@desa.id")
	if err != nil {
		t.Fatalf("GetActiveByEmail error: %v", err)
	}
	if got.ID != 1 || got.Username != "admin" || got.Role != "admin" || !got.Active {
		t.Fatalf("unexpected user: %+v", got)
	}
	if got.PasswordHash != "pbkdf2:sha256:1000$s$h" {
		t.Fatalf("unexpected hash: %q", got.PasswordHash)
	}
}

func TestGetActiveByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectByEmail).
		WithArgs("ADMIN@desa.id").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetActiveByEmail(context.Background(), "ADMIN@desa.id")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestGetActiveByEmail_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectByEmail).
		WithArgs("admin@desa.id").
		WillReturnError(errors.New("db down"))

	_, err := repo.GetActiveByEmail(context.Background(), "admin@desa.id")
	if !errors.Is(err, common.ErrPersistence) || !regexp.MustCompile(`get user: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped persistence error, got %v", err)
	}
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+users\s*\(username,\s*email,\s*password,\s*role,\s*status,\s*created_at,\s*updated_at\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*1,\s*NOW\(\),\s*NOW\(\)\)\s*RETURNING\s+id_user,\s*created_at,\s*updated_at$`

	mock.ExpectQuery(q).
		WithArgs("kades", "kades@desa.id", "hash", models.RoleAdmin).
		WillReturnRows(sqlmock.NewRows([]string{"id_user", "created_at", "updated_at"}).AddRow(int64(42), ts, ts))

	u := &models.User{Username: "kades", Email: "kades@desa.id", PasswordHash: "hash", Role: models.RoleAdmin}
	got, err := repo.Create(context.Background(), u)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 42 || !got.Active || !got.CreatedAt.Equal(ts) {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+users`).
		WillReturnError(errors.New(`duplicate key value violates unique constraint "users_email_key"`))

	_, err := repo.Create(context.Background(), &models.User{Email: "kades@desa.id"})
	if !errors.Is(err, common.ErrPersistence) {
		t.Fatalf("expected persistence error, got %v", err)
	}
}
