package category_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keyword-soup/internal/category"
	"keyword-soup/internal/model"
)

func newService(t *testing.T, categories []model.Category) category.Service {
	t.Helper()
	table, err := category.NewTable(categories)
	require.NoError(t, err)
	return category.New(table)
}

func TestCategorize(t *testing.T) {
	svc := newService(t, []model.Category{
		{Name: "Questions", Keywords: []string{"how", "what"}},
		{Name: "Cost_Related", Keywords: []string{"PRICE", "cheap"}},
		{Name: "Trend_Based", Keywords: []string{"trends"}},
	})

	t.Run("multi category membership", func(t *testing.T) {
		res := svc.Categorize([]string{"How much is the price"})
		q, _ := res.Get("Questions")
		c, _ := res.Get("Cost_Related")
		assert.Equal(t, []string{"How much is the price"}, q)
		assert.Equal(t, []string{"How much is the price"}, c)
	})

	t.Run("unmatched suggestion is in no list", func(t *testing.T) {
		res := svc.Categorize([]string{"seo audit"})
		for _, g := range res.Groups {
			assert.NotNil(t, g.Suggestions)
			assert.Empty(t, g.Suggestions, g.Name)
		}
	})

	t.Run("first match order and no duplicates per category", func(t *testing.T) {
		res := svc.Categorize([]string{"cheap seo", "what is seo", "cheap seo", "seo price"})
		c, _ := res.Get("Cost_Related")
		assert.Equal(t, []string{"cheap seo", "seo price"}, c)
		q, _ := res.Get("Questions")
		assert.Equal(t, []string{"what is seo"}, q)
	})

	t.Run("empty input keeps every category", func(t *testing.T) {
		res := svc.Categorize(nil)
		require.Len(t, res.Groups, 3)
		assert.Equal(t, "Questions", res.Groups[0].Name)
		assert.Equal(t, "Cost_Related", res.Groups[1].Name)
		assert.Equal(t, "Trend_Based", res.Groups[2].Name)
		for _, g := range res.Groups {
			assert.Equal(t, []string{}, g.Suggestions)
		}
	})

	t.Run("empty suggestion matches nothing", func(t *testing.T) {
		assert.Empty(t, svc.MatchCategories(""))
	})

	t.Run("original casing preserved", func(t *testing.T) {
		res := svc.Categorize([]string{"SEO TRENDS 2024"})
		tr, _ := res.Get("Trend_Based")
		assert.Equal(t, []string{"SEO TRENDS 2024"}, tr)
	})
}

func TestMatchCategories(t *testing.T) {
	svc := newService(t, category.DefaultCategories())

	assert.Equal(t, []string{"Questions", "Intent_Based"}, svc.MatchCategories("how to do seo"))
	assert.Equal(t, []string{"Feature_Specific"}, svc.MatchCategories("seo tools"))
	assert.Empty(t, svc.MatchCategories("seo xyz"))
}

func TestMatchCategories_EmptyKeywordMatchesAll(t *testing.T) {
	svc := newService(t, []model.Category{
		{Name: "Tools", Keywords: []string{"tools"}},
		{Name: "Catch_All", Keywords: []string{""}},
	})

	assert.Equal(t, []string{"Catch_All"}, svc.MatchCategories("seo xyz"))
	assert.Equal(t, []string{"Tools", "Catch_All"}, svc.MatchCategories("seo tools"))
	assert.Empty(t, svc.MatchCategories(""))

	res := svc.Categorize([]string{"a", "b"})
	all, _ := res.Get("Catch_All")
	assert.Equal(t, []string{"a", "b"}, all)
}

func TestMetrics(t *testing.T) {
	t.Run("alphabet soup example", func(t *testing.T) {
		svc := newService(t, []model.Category{
			{Name: "Feature_Specific", Keywords: []string{"tools"}},
			{Name: "Problem_Solving", Keywords: []string{}},
		})
		suggestions := []string{"seo tools", "seo audit"}
		res := svc.Categorize(suggestions)
		m := svc.Metrics(res, len(suggestions))

		assert.Equal(t, 2, m.Total)
		fs, ok := m.Get("Feature_Specific")
		require.True(t, ok)
		assert.Equal(t, 1, fs.Count)
		assert.Equal(t, 50.0, fs.Percentage)
		ps, _ := m.Get("Problem_Solving")
		assert.Equal(t, 0, ps.Count)
		assert.Equal(t, 0.0, ps.Percentage)
	})

	t.Run("zero total", func(t *testing.T) {
		svc := newService(t, category.DefaultCategories())
		m := svc.Metrics(svc.Categorize(nil), 0)
		assert.Equal(t, 0, m.Total)
		require.Len(t, m.Categories, 11)
		for _, c := range m.Categories {
			assert.Equal(t, 0.0, c.Percentage)
		}
	})

	t.Run("counts may exceed total", func(t *testing.T) {
		svc := newService(t, []model.Category{
			{Name: "A", Keywords: []string{"x"}},
			{Name: "B", Keywords: []string{"x"}},
		})
		m := svc.Metrics(svc.Categorize([]string{"x"}), 1)
		sum := 0
		for _, c := range m.Categories {
			sum += c.Count
			assert.Equal(t, 100.0, c.Percentage)
		}
		assert.Equal(t, 2, sum)
	})

	t.Run("rounding", func(t *testing.T) {
		svc := newService(t, []model.Category{{Name: "A", Keywords: []string{"x"}}})
		res := category.Result{Groups: []category.Group{{Name: "A", Suggestions: []string{"x"}}}}
		tests := []struct {
			total int
			want  float64
		}{
			{total: 3, want: 33.3},
			{total: 6, want: 16.7},
			{total: 7, want: 14.3},
			{total: 8, want: 12.5},
			{total: 1, want: 100.0},
		}
		for _, tt := range tests {
			m := svc.Metrics(res, tt.total)
			assert.Equal(t, tt.want, m.Categories[0].Percentage, "total=%d", tt.total)
		}
	})
}

func TestResultAndMetricsJSON(t *testing.T) {
	svc := newService(t, []model.Category{
		{Name: "Zeta", Keywords: []string{"z"}},
		{Name: "Alpha", Keywords: []string{"q"}},
	})
	res := svc.Categorize([]string{"zebra", "xyz"})

	raw, err := json.Marshal(res)
	require.NoError(t, err)
	assert.Equal(t, `{"Zeta":["zebra","xyz"],"Alpha":[]}`, string(raw))

	raw, err = json.Marshal(svc.Metrics(res, 2))
	require.NoError(t, err)
	assert.Equal(t, `{"total":2,"Zeta":{"count":2,"percentage":100},"Alpha":{"count":0,"percentage":0}}`, string(raw))
}
