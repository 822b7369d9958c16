package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/desawisata/internal/dbx"
	"github.com/dmitrijs2005/desawisata/internal/server/repositories/blogs"
	"github.com/dmitrijs2005/desawisata/internal/server/repositories/destinations"
	"github.com/dmitrijs2005/desawisata/internal/server/repositories/packages"
	"github.com/dmitrijs2005/desawisata/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so services can run
// them either on the pool or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Destinations(db dbx.DBTX) destinations.Repository
	Packages(db dbx.DBTX) packages.Repository
	Blogs(db dbx.DBTX) blogs.Repository
}
