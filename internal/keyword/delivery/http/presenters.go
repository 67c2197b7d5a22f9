package http

import (
	"keyword-soup/internal/category"
	"keyword-soup/internal/keyword"
)

// --- Request DTOs ---

// keywordReq is {"keyword": ...}. A null keyword counts as present and empty.
type keywordReq struct {
	Keyword *string `json:"keyword"`
	present bool
}

func (r keywordReq) validate() error {
	if !r.present {
		return errNoKeywordProvided
	}
	return nil
}

func (r keywordReq) keyword() string {
	if r.Keyword == nil {
		return ""
	}
	return *r.Keyword
}

func (r keywordReq) toInput() keyword.GetSuggestionsInput {
	return keyword.GetSuggestionsInput{Keyword: r.keyword()}
}

func (r keywordReq) toAnalyzeInput() keyword.AnalyzeInput {
	return keyword.AnalyzeInput{Keyword: r.keyword()}
}

// ---

// suggestionsReq is {"suggestions": [...]}. A null list counts as present and empty.
type suggestionsReq struct {
	Suggestions []string `json:"suggestions"`
	present     bool
}

func (r suggestionsReq) validate() error {
	if !r.present {
		return errNoSuggestionsProvided
	}
	return nil
}

func (r suggestionsReq) toCategorizeInput() keyword.CategorizeInput {
	return keyword.CategorizeInput{Suggestions: r.Suggestions}
}

func (r suggestionsReq) toExportInput() keyword.ExportCSVInput {
	return keyword.ExportCSVInput{Suggestions: r.Suggestions}
}

// --- Response DTOs ---

type suggestionsResp struct {
	Keyword     string   `json:"keyword"`
	Suggestions []string `json:"suggestions"`
	Count       int      `json:"count"`
}

func (h *handler) newSuggestionsResp(out keyword.GetSuggestionsOutput) suggestionsResp {
	return suggestionsResp{
		Keyword:     out.Keyword,
		Suggestions: out.Suggestions,
		Count:       len(out.Suggestions),
	}
}

type analyzeResp struct {
	Keyword     string           `json:"keyword"`
	Suggestions []string         `json:"suggestions"`
	Categories  category.Result  `json:"categories"`
	Metrics     category.Metrics `json:"metrics"`
}

func (h *handler) newAnalyzeResp(out keyword.AnalyzeOutput) analyzeResp {
	return analyzeResp{
		Keyword:     out.Keyword,
		Suggestions: out.Suggestions,
		Categories:  out.Categories,
		Metrics:     out.Metrics,
	}
}

type categorizeResp struct {
	Categories category.Result  `json:"categories"`
	Metrics    category.Metrics `json:"metrics"`
}

func (h *handler) newCategorizeResp(out keyword.CategorizeOutput) categorizeResp {
	return categorizeResp{
		Categories: out.Categories,
		Metrics:    out.Metrics,
	}
}

type categoryResp struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
	Icon     string   `json:"icon"`
	Color    string   `json:"color"`
}

type categoriesResp struct {
	Categories []categoryResp `json:"categories"`
}

func (h *handler) newCategoriesResp(out keyword.CategoriesOutput) categoriesResp {
	items := make([]categoryResp, len(out.Categories))
	for i, c := range out.Categories {
		items[i] = categoryResp{
			Name:     c.Name,
			Keywords: c.Keywords,
			Icon:     c.Icon,
			Color:    c.Color,
		}
	}
	return categoriesResp{Categories: items}
}
