package category_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keyword-soup/internal/category"
	"keyword-soup/internal/model"
)

func TestNewTable(t *testing.T) {
	tests := []struct {
		name       string
		categories []model.Category
		wantErr    error
	}{
		{name: "empty", categories: nil, wantErr: category.ErrEmptyTable},
		{name: "missing name", categories: []model.Category{{Keywords: []string{"x"}}}, wantErr: category.ErrEmptyCategoryName},
		{
			name:       "duplicate name",
			categories: []model.Category{{Name: "A"}, {Name: "A"}},
			wantErr:    category.ErrDuplicateCategory,
		},
		{name: "defaults", categories: category.DefaultCategories()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := category.NewTable(tt.categories)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTable_IsImmutable(t *testing.T) {
	src := []model.Category{{Name: "Tools", Keywords: []string{"tools", ""}}}
	table, err := category.NewTable(src)
	require.NoError(t, err)

	src[0].Keywords[0] = "changed"
	got := table.Categories()
	assert.Equal(t, []string{"tools", ""}, got[0].Keywords, "source edits not visible")

	got[0].Keywords[0] = "mutated"
	assert.Equal(t, []string{"tools", ""}, table.Categories()[0].Keywords)
}

func TestTable_DefaultOrder(t *testing.T) {
	table, err := category.NewTable(category.DefaultCategories())
	require.NoError(t, err)
	assert.Equal(t, 11, table.Len())
	assert.Equal(t, "Questions", table.Names()[0])
	assert.Equal(t, "Trend_Based", table.Names()[10])
}
