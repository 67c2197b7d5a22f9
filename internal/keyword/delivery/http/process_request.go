package http

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
)

// bindFields decodes a JSON object body keeping each value raw, so a key
// that is present with a null value can be told apart from a missing key.
func (h *handler) bindFields(c *gin.Context) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := c.ShouldBindJSON(&fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// processKeywordReq binds and validates a {"keyword": ...} body.
func (h *handler) processKeywordReq(c *gin.Context) (keywordReq, error) {
	var req keywordReq

	fields, err := h.bindFields(c)
	if err != nil {
		h.l.Debugf(c.Request.Context(), "bind keyword request: %v", err)
		return req, errNoKeywordProvided
	}

	raw, ok := fields["keyword"]
	req.present = ok
	if ok {
		if err := json.Unmarshal(raw, &req.Keyword); err != nil {
			h.l.Debugf(c.Request.Context(), "decode keyword: %v", err)
			return req, errNoKeywordProvided
		}
	}
	return req, req.validate()
}

// processSuggestionsReq binds and validates a {"suggestions": [...]} body.
func (h *handler) processSuggestionsReq(c *gin.Context) (suggestionsReq, error) {
	var req suggestionsReq

	fields, err := h.bindFields(c)
	if err != nil {
		h.l.Debugf(c.Request.Context(), "bind suggestions request: %v", err)
		return req, errNoSuggestionsProvided
	}

	raw, ok := fields["suggestions"]
	req.present = ok
	if ok {
		if err := json.Unmarshal(raw, &req.Suggestions); err != nil {
			h.l.Debugf(c.Request.Context(), "decode suggestions: %v", err)
			return req, errNoSuggestionsProvided
		}
	}
	return req, req.validate()
}
