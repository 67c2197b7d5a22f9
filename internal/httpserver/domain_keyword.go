package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	keywordHTTP "keyword-soup/internal/keyword/delivery/http"
	"keyword-soup/internal/middleware"
)

// setupKeywordDomain registers the keyword routes under /api.
//
// Pattern to follow when adding a new domain:
//  1. Build the UseCase in main and pass it through Config.
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(rg, h)
func (srv HTTPServer) setupKeywordDomain(ctx context.Context, api *gin.RouterGroup, _ middleware.Middleware) error {
	h := keywordHTTP.New(srv.l, srv.keywordUC)
	keywordHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Keyword domain registered")
	return nil
}
