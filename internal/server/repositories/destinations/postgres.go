// Package destinations stores tourist destinations in the "destinations"
// table through the generic resources repository.
package destinations

import (
	"github.com/dmitrijs2005/desawisata/internal/dbx"
	"github.com/dmitrijs2005/desawisata/internal/server/models"
	"github.com/dmitrijs2005/desawisata/internal/server/repositories/resources"
)

type Repository = resources.Repository[models.Destination, models.DestinationInput]

var Kind = &resources.Kind[models.Destination, models.DestinationInput]{
	Name:        "destination",
	Table:       "destinations",
	IDColumn:    "id_destination",
	LabelColumn: "name",
	Columns:     []string{"name", "description", "image_url", "location_url"},
	Scan:        scan,
	Values:      values,
}

func NewPostgresRepository(db dbx.DBTX) Repository {
	return resources.NewPostgresRepository(db, Kind)
}

func scan(s resources.Scanner) (*models.Destination, error) {
	d := &models.Destination{}
	if err := s.Scan(&d.ID, &d.Name, &d.Description, &d.ImageURL, &d.LocationURL, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	return d, nil
}

func values(p *models.DestinationInput) []any {
	return []any{p.Name, p.Description, p.ImageURL, p.LocationURL}
}
