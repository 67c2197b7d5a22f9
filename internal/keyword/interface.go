package keyword

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// GetSuggestions runs the alphabet soup for a keyword and returns the
	// deduplicated suggestions in first-seen order.
	GetSuggestions(ctx context.Context, input GetSuggestionsInput) (GetSuggestionsOutput, error)

	// Analyze runs GetSuggestions then categorizes the result and computes metrics.
	Analyze(ctx context.Context, input AnalyzeInput) (AnalyzeOutput, error)

	// Categorize groups an arbitrary suggestion list and computes metrics.
	Categorize(ctx context.Context, input CategorizeInput) (CategorizeOutput, error)

	// Categories returns the configured category table with display metadata.
	Categories(ctx context.Context) CategoriesOutput

	// ExportCSV renders a non-empty suggestion list as a CSV download.
	ExportCSV(ctx context.Context, input ExportCSVInput) (ExportCSVOutput, error)
}
