// Package users provides the PostgreSQL-backed credential store for
// administrator accounts.
package users

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/desawisata/internal/common"
	"github.com/dmitrijs2005/desawisata/internal/dbx"
	"github.com/dmitrijs2005/desawisata/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetActiveByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT id_user, username, email, password, role, status, created_at, updated_at
		 FROM users
		 WHERE email = $1 AND status = 1
		 LIMIT 1`

	var status int
	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.Role, &status,
		&user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, dbx.Wrap("get user", err)
	}

	user.Active = status == 1
	return user, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`INSERT INTO users (username, email, password, role, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, 1, NOW(), NOW())
		 RETURNING id_user, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		user.Username, user.Email, user.PasswordHash, user.Role).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		return nil, dbx.Wrap("insert user", err)
	}

	user.Active = true
	return user, nil
}
