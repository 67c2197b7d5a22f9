package http

import (
	"github.com/gin-gonic/gin"

	"keyword-soup/pkg/response"
)

// GetSuggestions godoc
// @Summary     Get keyword suggestions
// @Description Runs the alphabet soup (keyword, then keyword + a..z) and returns the deduplicated suggestions.
// @Tags        Keywords
// @Accept      json
// @Produce     json
// @Param       body body keywordReq true "Keyword"
// @Success     200  {object} suggestionsResp
// @Failure     400  {object} response.Resp "Empty keyword or no suggestions found"
// @Failure     502  {object} response.Resp "Suggestion service unreachable"
// @Router      /api/keywords [POST]
func (h *handler) GetSuggestions(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processKeywordReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.GetSuggestions(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.GetSuggestions: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newSuggestionsResp(output))
}

// Analyze godoc
// @Summary     Get categorized keyword suggestions
// @Description Runs the alphabet soup, then groups the suggestions by category and computes the distribution.
// @Tags        Keywords
// @Accept      json
// @Produce     json
// @Param       body body keywordReq true "Keyword"
// @Success     200  {object} analyzeResp
// @Failure     400  {object} response.Resp "Empty keyword or no suggestions found"
// @Router      /api/keywords/analyze [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processKeywordReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Analyze(ctx, req.toAnalyzeInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Analyze: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newAnalyzeResp(output))
}

// Categorize godoc
// @Summary     Categorize suggestions
// @Description Groups the given suggestions by category and computes per-category counts and percentages.
// @Tags        Categories
// @Accept      json
// @Produce     json
// @Param       body body suggestionsReq true "Suggestions"
// @Success     200  {object} categorizeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/categorize [POST]
func (h *handler) Categorize(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSuggestionsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Categorize(ctx, req.toCategorizeInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Categorize: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newCategorizeResp(output))
}

// Categories godoc
// @Summary     List categories
// @Description Returns the configured categories with their trigger keywords and display metadata.
// @Tags        Categories
// @Produce     json
// @Success     200 {object} categoriesResp
// @Router      /api/categories [GET]
func (h *handler) Categories(c *gin.Context) {
	response.OK(c, h.newCategoriesResp(h.uc.Categories(c.Request.Context())))
}

// ExportCSV godoc
// @Summary     Export suggestions as CSV
// @Description Returns the suggestions as a keyword_suggestions.csv attachment.
// @Tags        Keywords
// @Accept      json
// @Produce     text/csv
// @Param       body body suggestionsReq true "Suggestions"
// @Success     200  {file} file
// @Failure     400  {object} response.Resp "No suggestions provided or empty list"
// @Router      /api/export-csv [POST]
func (h *handler) ExportCSV(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSuggestionsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ExportCSV(ctx, req.toExportInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.ExportCSV: %v", err)
		h.respondError(c, err)
		return
	}

	response.Attachment(c, output.Filename, output.ContentType, output.Content)
}
