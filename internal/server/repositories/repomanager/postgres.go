// Package repomanager wires the PostgreSQL repository constructors together
// with the embedded goose migrations.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/desawisata/internal/dbx"
	"github.com/dmitrijs2005/desawisata/internal/server/migrations"
	"github.com/dmitrijs2005/desawisata/internal/server/repositories/blogs"
	"github.com/dmitrijs2005/desawisata/internal/server/repositories/destinations"
	"github.com/dmitrijs2005/desawisata/internal/server/repositories/packages"
	"github.com/dmitrijs2005/desawisata/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
)

type PostgresRepositoryManager struct{}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Destinations(db dbx.DBTX) destinations.Repository {
	return destinations.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Packages(db dbx.DBTX) packages.Repository {
	return packages.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Blogs(db dbx.DBTX) blogs.Repository {
	return blogs.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations. Tables are created with
// IF NOT EXISTS so an existing deployment's schema is adopted as is.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	return gooseUpContext(ctx, db, ".")
}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}
