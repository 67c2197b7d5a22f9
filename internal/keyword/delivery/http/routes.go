package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	keywords := rg.Group("/keywords")
	{
		keywords.POST("", h.GetSuggestions)
		keywords.POST("/analyze", h.Analyze)
	}

	rg.POST("/categorize", h.Categorize)
	rg.GET("/categories", h.Categories)
	rg.POST("/export-csv", h.ExportCSV)
}
