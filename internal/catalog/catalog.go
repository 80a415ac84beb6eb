// Package catalog holds the read-only template catalog loaded once at startup.
package catalog

import (
	"context"
	"fmt"

	apperrors "design-missions/internal/common/errors"
	"design-missions/internal/models"
)

// Source loads the raw template list. Implementations are only called at startup.
type Source interface {
	Name() string
	Load(ctx context.Context) ([]models.Template, error)
}

// Catalog is immutable after construction and safe for concurrent reads.
type Catalog struct {
	templates []models.Template
	byID      map[string]int
	bySector  map[models.Sector][]int
}

// New validates the templates and indexes them, keeping their order.
func New(templates []models.Template) (*Catalog, error) {
	c := &Catalog{
		templates: make([]models.Template, 0, len(templates)),
		byID:      make(map[string]int, len(templates)),
		bySector:  make(map[models.Sector][]int),
	}

	for i, tpl := range templates {
		if tpl.ID == "" {
			return nil, fmt.Errorf("template at position %d has no id", i)
		}
		if _, dup := c.byID[tpl.ID]; dup {
			return nil, fmt.Errorf("duplicate template id %q", tpl.ID)
		}
		if !tpl.Sector.Valid() {
			return nil, fmt.Errorf("template %q has unknown sector %q", tpl.ID, tpl.Sector)
		}
		if !tpl.Style.Valid() {
			return nil, fmt.Errorf("template %q has unknown style %q", tpl.ID, tpl.Style)
		}

		tpl = tpl.Clone()
		c.byID[tpl.ID] = len(c.templates)
		c.bySector[tpl.Sector] = append(c.bySector[tpl.Sector], len(c.templates))
		c.templates = append(c.templates, tpl)
	}

	return c, nil
}

// Load builds a catalog from a source, mapping failures to CATALOG_LOAD_FAILED.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	templates, err := src.Load(ctx)
	if err != nil {
		return nil, apperrors.NewCatalogLoadError(src.Name(), err)
	}
	c, err := New(templates)
	if err != nil {
		return nil, apperrors.NewCatalogLoadError(src.Name(), err)
	}
	return c, nil
}

// All returns a deep copy of every template in catalog order.
func (c *Catalog) All() []models.Template {
	out := make([]models.Template, len(c.templates))
	for i, tpl := range c.templates {
		out[i] = tpl.Clone()
	}
	return out
}

// BySector returns the templates of one sector in catalog order.
func (c *Catalog) BySector(sector models.Sector) []models.Template {
	idx := c.bySector[sector]
	out := make([]models.Template, 0, len(idx))
	for _, i := range idx {
		out = append(out, c.templates[i].Clone())
	}
	return out
}

func (c *Catalog) Get(id string) (models.Template, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Template{}, false
	}
	return c.templates[i].Clone(), true
}

// Sectors lists the sectors that have at least one template, in models.Sectors order.
func (c *Catalog) Sectors() []models.Sector {
	var out []models.Sector
	for _, s := range models.Sectors {
		if len(c.bySector[s]) > 0 {
			out = append(out, s)
		}
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.templates)
}
