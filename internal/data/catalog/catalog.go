package catalog

import (
	"context"
	"strings"

	"movie-reservation/internal/data/entity"
)

// Source produces the full record set the catalog is built from. Loading
// happens once at startup; the catalog is read-only afterwards.
type Source interface {
	Load(ctx context.Context) ([]entity.Movie, error)
}

// Catalog is an insertion-ordered, immutable collection of movie records.
// One code may map to several records (different showtimes or dates).
type Catalog struct {
	records []entity.Movie
}

func New(records []entity.Movie) *Catalog {
	owned := make([]entity.Movie, len(records))
	copy(owned, records)
	return &Catalog{records: owned}
}

// FindByCode returns every record whose code matches, case-insensitively,
// in load order. An empty result means the code is unknown; this layer
// never errors.
func (c *Catalog) FindByCode(code string) []entity.Movie {
	var matches []entity.Movie
	for _, m := range c.records {
		if strings.EqualFold(m.Code, code) {
			matches = append(matches, m)
		}
	}
	return matches
}

func (c *Catalog) Len() int {
	return len(c.records)
}

// Records returns a copy of the full record set in load order.
func (c *Catalog) Records() []entity.Movie {
	out := make([]entity.Movie, len(c.records))
	copy(out, c.records)
	return out
}
