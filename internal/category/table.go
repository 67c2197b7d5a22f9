package category

import (
	"fmt"
	"strings"

	"keyword-soup/internal/model"
)

// Table is the immutable, ordered category configuration. It is built once
// at startup and shared by every request without locking.
type Table struct {
	categories []model.Category
	// lowered[i] holds the keywords of categories[i], lower-cased.
	lowered [][]string
}

// NewTable validates categories and returns a Table that owns a private copy
// of them. Declared order is preserved. An empty keyword is kept and
// matches every non-empty suggestion.
func NewTable(categories []model.Category) (Table, error) {
	if len(categories) == 0 {
		return Table{}, ErrEmptyTable
	}

	seen := make(map[string]struct{}, len(categories))
	t := Table{
		categories: make([]model.Category, 0, len(categories)),
		lowered:    make([][]string, 0, len(categories)),
	}

	for _, c := range categories {
		if c.Name == "" {
			return Table{}, ErrEmptyCategoryName
		}
		if _, ok := seen[c.Name]; ok {
			return Table{}, fmt.Errorf("%w: %s", ErrDuplicateCategory, c.Name)
		}
		seen[c.Name] = struct{}{}

		keywords := append([]string{}, c.Keywords...)
		lowered := make([]string, len(c.Keywords))
		for i, kw := range c.Keywords {
			lowered[i] = strings.ToLower(kw)
		}

		t.categories = append(t.categories, model.Category{
			Name:     c.Name,
			Keywords: keywords,
			Icon:     c.Icon,
			Color:    c.Color,
		})
		t.lowered = append(t.lowered, lowered)
	}

	return t, nil
}

// Len returns the number of categories.
func (t Table) Len() int {
	return len(t.categories)
}

// Names returns category names in declared order.
func (t Table) Names() []string {
	names := make([]string, len(t.categories))
	for i, c := range t.categories {
		names[i] = c.Name
	}
	return names
}

// Categories returns a copy of the configured categories in declared order.
func (t Table) Categories() []model.Category {
	out := make([]model.Category, len(t.categories))
	for i, c := range t.categories {
		out[i] = c
		out[i].Keywords = append([]string(nil), c.Keywords...)
	}
	return out
}
