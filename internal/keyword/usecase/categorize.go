package usecase

import (
	"context"

	"keyword-soup/internal/keyword"
)

// Categorize groups input.Suggestions; an empty list yields every category empty.
func (uc *implUseCase) Categorize(ctx context.Context, input keyword.CategorizeInput) (keyword.CategorizeOutput, error) {
	result := uc.category.Categorize(input.Suggestions)
	return keyword.CategorizeOutput{
		Categories: result,
		Metrics:    uc.category.Metrics(result, len(input.Suggestions)),
	}, nil
}

func (uc *implUseCase) Categories(ctx context.Context) keyword.CategoriesOutput {
	return keyword.CategoriesOutput{Categories: uc.category.Categories()}
}
