package keyword

import (
	"keyword-soup/internal/category"
	"keyword-soup/internal/model"
)

// --- UseCase Inputs ---

type GetSuggestionsInput struct {
	Keyword string // raw user input, trimmed by the use case
}

type AnalyzeInput struct {
	Keyword string
}

type CategorizeInput struct {
	Suggestions []string
}

type ExportCSVInput struct {
	Suggestions []string
}

// --- UseCase Outputs ---

type GetSuggestionsOutput struct {
	Keyword     string // trimmed keyword the soup ran for
	Suggestions []string
}

type AnalyzeOutput struct {
	Keyword     string
	Suggestions []string
	Categories  category.Result
	Metrics     category.Metrics
}

type CategorizeOutput struct {
	Categories category.Result
	Metrics    category.Metrics
}

type CategoriesOutput struct {
	Categories []model.Category
}

type ExportCSVOutput struct {
	Filename    string
	ContentType string
	Content     []byte
}
