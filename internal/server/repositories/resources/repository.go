// Package resources implements the soft-delete, coalesce-update CRUD
// protocol shared by every public resource (destinations, packages, blogs).
// A single generic repository is parameterised by a Kind describing the
// table and how its rows map to Go values.
package resources

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/desawisata/internal/server/models"
)

// Repository is the storage contract of one resource kind. T is the stored
// record, P the partial payload used by Create and Update.
type Repository[T any, P any] interface {
	// ListActive returns active rows, newest first. Never nil.
	ListActive(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, p *P) (*T, error)
	// Update overwrites only the non-nil fields of p and always bumps updated_at.
	Update(ctx context.Context, id int64, p *P) (*T, error)
	SoftDelete(ctx context.Context, id int64) (*models.Deleted, error)
}

// Scanner is satisfied by *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// Kind describes one resource table.
//
// Scan reads a row selected as IDColumn, Columns..., created_at, updated_at.
// Values returns the payload in Columns order with nil for absent fields.
type Kind[T any, P any] struct {
	Name        string
	Table       string
	IDColumn    string
	LabelColumn string
	Columns     []string

	Scan   func(s Scanner) (*T, error)
	Values func(p *P) []any

	once sync.Once
	q    queries
}

type queries struct {
	list       string
	get        string
	insert     string
	update     string
	softDelete string
}

func (k *Kind[T, P]) queries() queries {
	k.once.Do(func() {
		k.q = buildQueries(k.Table, k.IDColumn, k.LabelColumn, k.Columns)
	})
	return k.q
}

func buildQueries(table, idCol, labelCol string, cols []string) queries {
	selected := strings.Join(append(append([]string{idCol}, cols...), "created_at", "updated_at"), ", ")

	placeholders := make([]string, len(cols))
	sets := make([]string, len(cols))
	for i, c := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		sets[i] = fmt.Sprintf("%s = COALESCE($%d, %s)", c, i+1, c)
	}

	return queries{
		list: fmt.Sprintf(
			`SELECT %s FROM %s WHERE status = 1 ORDER BY created_at DESC`,
			selected, table),
		get: fmt.Sprintf(
			`SELECT %s FROM %s WHERE %s = $1 AND status = 1 LIMIT 1`,
			selected, table, idCol),
		insert: fmt.Sprintf(
			`INSERT INTO %s (%s, status, created_at, updated_at) VALUES (%s, 1, NOW(), NOW()) RETURNING %s`,
			table, strings.Join(cols, ", "), strings.Join(placeholders, ", "), selected),
		update: fmt.Sprintf(
			`UPDATE %s SET %s, updated_at = NOW() WHERE %s = $%d AND status = 1 RETURNING %s`,
			table, strings.Join(sets, ", "), idCol, len(cols)+1, selected),
		softDelete: fmt.Sprintf(
			`UPDATE %s SET status = 0, updated_at = NOW() WHERE %s = $1 AND status = 1 RETURNING %s, %s`,
			table, idCol, idCol, labelCol),
	}
}
