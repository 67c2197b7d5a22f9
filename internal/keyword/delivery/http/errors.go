package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"keyword-soup/internal/keyword"
	pkgErrors "keyword-soup/pkg/errors"
	"keyword-soup/pkg/response"
)

var (
	errNoKeywordProvided     = pkgErrors.NewHTTPError(http.StatusBadRequest, "No keyword provided")
	errNoSuggestionsProvided = pkgErrors.NewHTTPError(http.StatusBadRequest, "No suggestions provided")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors map to nil.
func (h *handler) mapError(err error) *pkgErrors.HTTPError {
	switch {
	case errors.Is(err, keyword.ErrEmptyKeyword):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Please enter a keyword")
	case errors.Is(err, keyword.ErrNoSuggestionsFound):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "No suggestions found for this keyword")
	case errors.Is(err, keyword.ErrNoSuggestionsToExport):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "No suggestions to export")
	case errors.Is(err, keyword.ErrFetchFailure):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, err.Error())
	default:
		return nil
	}
}

func (h *handler) respondError(c *gin.Context, err error) {
	if httpErr := h.mapError(err); httpErr != nil {
		response.Error(c, httpErr, nil)
		return
	}
	h.l.Errorf(c.Request.Context(), "unhandled error: %v", err)
	response.InternalError(c, err)
}
