// Package blogs stores blog posts in the "blogs" table through the generic
// resources repository.
package blogs

import (
	"github.com/dmitrijs2005/desawisata/internal/dbx"
	"github.com/dmitrijs2005/desawisata/internal/server/models"
	"github.com/dmitrijs2005/desawisata/internal/server/repositories/resources"
)

type Repository = resources.Repository[models.Blog, models.BlogInput]

var Kind = &resources.Kind[models.Blog, models.BlogInput]{
	Name:        "blog",
	Table:       "blogs",
	IDColumn:    "id_blog",
	LabelColumn: "title",
	Columns:     []string{"title", "content", "image_url", "post_url"},
	Scan:        scan,
	Values:      values,
}

func NewPostgresRepository(db dbx.DBTX) Repository {
	return resources.NewPostgresRepository(db, Kind)
}

func scan(s resources.Scanner) (*models.Blog, error) {
	b := &models.Blog{}
	if err := s.Scan(&b.ID, &b.Title, &b.Content, &b.ImageURL, &b.PostURL, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return b, nil
}

func values(p *models.BlogInput) []any {
	return []any{p.Title, p.Content, p.ImageURL, p.PostURL}
}
