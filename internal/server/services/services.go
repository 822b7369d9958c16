// Package services implements the API use cases on top of the repositories:
// admin login and provisioning, and the CRUD protocol of each resource.
package services

import (
	"database/sql"
	"time"

	"github.com/dmitrijs2005/desawisata/internal/server/models"
	"github.com/dmitrijs2005/desawisata/internal/server/repositories/repomanager"
)

type (
	DestinationService = ResourceService[models.Destination, models.DestinationInput]
	PackageService     = ResourceService[models.Package, models.PackageInput]
	BlogService        = ResourceService[models.Blog, models.BlogInput]
)

// Services bundles everything the HTTP layer calls into.
type Services struct {
	Auth         *AuthService
	Destinations *DestinationService
	Packages     *PackageService
	Blogs        *BlogService
}

func New(db *sql.DB, m repomanager.RepositoryManager, tokens TokenIssuer, passwords PasswordHasher, timeout time.Duration) *Services {
	return &Services{
		Auth:         NewAuthService(db, m, tokens, passwords, timeout),
		Destinations: NewResourceService(db, m.Destinations, timeout),
		Packages:     NewResourceService(db, m.Packages, timeout),
		Blogs:        NewResourceService(db, m.Blogs, timeout),
	}
}
