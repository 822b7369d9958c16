// Package packages stores travel packages in the "packages" table through
// the generic resources repository. Destination ids and benefits live in
// Postgres array columns.
package packages

import (
	"github.com/dmitrijs2005/desawisata/internal/dbx"
	"github.com/dmitrijs2005/desawisata/internal/server/models"
	"github.com/dmitrijs2005/desawisata/internal/server/repositories/resources"
	"github.com/lib/pq"
)

type Repository = resources.Repository[models.Package, models.PackageInput]

var Kind = &resources.Kind[models.Package, models.PackageInput]{
	Name:        "package",
	Table:       "packages",
	IDColumn:    "id_package",
	LabelColumn: "name",
	Columns:     []string{"name", "description", "price", "destinations", "benefits", "image_url"},
	Scan:        scan,
	Values:      values,
}

func NewPostgresRepository(db dbx.DBTX) Repository {
	return resources.NewPostgresRepository(db, Kind)
}

func scan(s resources.Scanner) (*models.Package, error) {
	p := &models.Package{}
	err := s.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price,
		(*pq.Int64Array)(&p.Destinations), (*pq.StringArray)(&p.Benefits),
		&p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if p.Destinations == nil {
		p.Destinations = []int64{}
	}
	if p.Benefits == nil {
		p.Benefits = []string{}
	}
	return p, nil
}

// values passes nil slices as SQL NULL so COALESCE keeps the stored array.
func values(p *models.PackageInput) []any {
	var destinations, benefits any
	if p.Destinations != nil {
		destinations = pq.Int64Array(p.Destinations)
	}
	if p.Benefits != nil {
		benefits = pq.StringArray(p.Benefits)
	}
	return []any{p.Name, p.Description, p.Price, destinations, benefits, p.ImageURL}
}
