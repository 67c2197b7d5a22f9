package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keyword-soup/internal/category"
	"keyword-soup/internal/keyword"
	"keyword-soup/internal/keyword/usecase"
	"keyword-soup/internal/model"
)

func TestGetSuggestions(t *testing.T) {
	catSvc := newCategoryService(t, category.DefaultCategories())

	t.Run("Empty Keyword Error", func(t *testing.T) {
		for _, kw := range []string{"", "   ", "\t\n"} {
			f := &fakeFetcher{}
			uc := usecase.New(&mockLogger{}, f, catSvc, nil, 1)
			_, err := uc.GetSuggestions(context.Background(), keyword.GetSuggestionsInput{Keyword: kw})
			assert.ErrorIs(t, err, keyword.ErrEmptyKeyword)
			assert.Empty(t, f.Calls(), "no fetch for %q", kw)
		}
	})

	t.Run("All Queries Fail", func(t *testing.T) {
		f := &failAll{}
		uc := usecase.New(&mockLogger{}, f, catSvc, nil, 1)
		_, err := uc.GetSuggestions(context.Background(), keyword.GetSuggestionsInput{Keyword: "seo"})
		assert.ErrorIs(t, err, keyword.ErrNoSuggestionsFound)
		assert.Equal(t, 27, f.count)
	})

	t.Run("Nothing Returned", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &fakeFetcher{}, catSvc, nil, 4)
		_, err := uc.GetSuggestions(context.Background(), keyword.GetSuggestionsInput{Keyword: "seo"})
		assert.ErrorIs(t, err, keyword.ErrNoSuggestionsFound)
	})

	t.Run("Caller Cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		uc := usecase.New(&mockLogger{}, &fakeFetcher{}, catSvc, nil, 1)
		_, err := uc.GetSuggestions(ctx, keyword.GetSuggestionsInput{Keyword: "seo"})
		assert.ErrorIs(t, err, keyword.ErrFetchFailure)
		assert.True(t, errors.Is(err, keyword.ErrFetchFailure))
	})

	t.Run("Successful Flow", func(t *testing.T) {
		f := &fakeFetcher{
			responses: map[string][]string{
				"seo":   {"seo tools"},
				"seo a": {"seo audit"},
				"seo b": {},
			},
		}
		uc := usecase.New(&mockLogger{}, f, catSvc, nil, 1)
		out, err := uc.GetSuggestions(context.Background(), keyword.GetSuggestionsInput{Keyword: " seo "})
		require.NoError(t, err)
		assert.Equal(t, "seo", out.Keyword)
		assert.Equal(t, []string{"seo tools", "seo audit"}, out.Suggestions)
	})
}

func TestAnalyze(t *testing.T) {
	f := &fakeFetcher{
		responses: map[string][]string{
			"seo":   {"seo tools"},
			"seo a": {"seo audit"},
		},
	}
	catSvc := newCategoryService(t, []model.Category{
		{Name: "Feature_Specific", Keywords: []string{"tools"}},
		{Name: "Problem_Solving", Keywords: []string{}},
	})
	uc := usecase.New(&mockLogger{}, f, catSvc, nil, 1)

	out, err := uc.Analyze(context.Background(), keyword.AnalyzeInput{Keyword: "seo"})
	require.NoError(t, err)
	assert.Equal(t, []string{"seo tools", "seo audit"}, out.Suggestions)

	fs, _ := out.Categories.Get("Feature_Specific")
	assert.Equal(t, []string{"seo tools"}, fs)
	ps, ok := out.Categories.Get("Problem_Solving")
	assert.True(t, ok)
	assert.Empty(t, ps)

	assert.Equal(t, 2, out.Metrics.Total)
	m, _ := out.Metrics.Get("Feature_Specific")
	assert.Equal(t, 1, m.Count)
	assert.Equal(t, 50.0, m.Percentage)

	_, err = uc.Analyze(context.Background(), keyword.AnalyzeInput{Keyword: ""})
	assert.ErrorIs(t, err, keyword.ErrEmptyKeyword)
}

func TestCategorize(t *testing.T) {
	uc := usecase.New(&mockLogger{}, &fakeFetcher{}, newCategoryService(t, category.DefaultCategories()), nil, 1)

	t.Run("Empty List", func(t *testing.T) {
		out, err := uc.Categorize(context.Background(), keyword.CategorizeInput{})
		require.NoError(t, err)
		assert.Len(t, out.Categories.Groups, 11)
		assert.Equal(t, 0, out.Metrics.Total)
	})

	t.Run("Unmatched Counts Toward Total", func(t *testing.T) {
		out, err := uc.Categorize(context.Background(), keyword.CategorizeInput{
			Suggestions: []string{"seo tools", "seo xyz"},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, out.Metrics.Total)
		m, _ := out.Metrics.Get("Feature_Specific")
		assert.Equal(t, 50.0, m.Percentage)
	})

	t.Run("Categories Metadata", func(t *testing.T) {
		out := uc.Categories(context.Background())
		require.Len(t, out.Categories, 11)
		assert.Equal(t, "Questions", out.Categories[0].Name)
		assert.Equal(t, "#667eea", out.Categories[0].Color)
	})
}
