package usecase

import (
	"context"
	"fmt"
	"strings"

	"keyword-soup/internal/keyword"
)

// GetSuggestions trims the keyword, rejects blanks before any query is sent,
// and runs the alphabet soup.
func (uc *implUseCase) GetSuggestions(ctx context.Context, input keyword.GetSuggestionsInput) (keyword.GetSuggestionsOutput, error) {
	kw := strings.TrimSpace(input.Keyword)
	if kw == "" {
		return keyword.GetSuggestionsOutput{}, keyword.ErrEmptyKeyword
	}

	suggestions := uc.soup(ctx, kw)

	// The caller went away mid-run; the empty result says nothing about the keyword.
	if err := ctx.Err(); err != nil {
		return keyword.GetSuggestionsOutput{}, fmt.Errorf("%w: %v", keyword.ErrFetchFailure, err)
	}

	if len(suggestions) == 0 {
		return keyword.GetSuggestionsOutput{}, keyword.ErrNoSuggestionsFound
	}

	return keyword.GetSuggestionsOutput{
		Keyword:     kw,
		Suggestions: suggestions,
	}, nil
}

// Analyze runs GetSuggestions and categorizes the deduplicated list.
func (uc *implUseCase) Analyze(ctx context.Context, input keyword.AnalyzeInput) (keyword.AnalyzeOutput, error) {
	out, err := uc.GetSuggestions(ctx, keyword.GetSuggestionsInput{Keyword: input.Keyword})
	if err != nil {
		return keyword.AnalyzeOutput{}, err
	}

	result := uc.category.Categorize(out.Suggestions)
	return keyword.AnalyzeOutput{
		Keyword:     out.Keyword,
		Suggestions: out.Suggestions,
		Categories:  result,
		Metrics:     uc.category.Metrics(result, len(out.Suggestions)),
	}, nil
}
