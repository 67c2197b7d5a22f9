package http

import (
	"github.com/gin-gonic/gin"

	"keyword-soup/internal/keyword"
	"keyword-soup/pkg/log"
)

// Handler is the public interface for the keyword HTTP delivery layer.
type Handler interface {
	GetSuggestions(c *gin.Context)
	Analyze(c *gin.Context)
	Categorize(c *gin.Context)
	Categories(c *gin.Context)
	ExportCSV(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc keyword.UseCase
}

// New creates a new HTTP handler for the keyword domain.
func New(l log.Logger, uc keyword.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
