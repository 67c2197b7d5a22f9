package httpserver

import (
	"github.com/gin-gonic/gin"

	"keyword-soup/pkg/response"
)

const (
	ServiceName    = "keyword-soup"
	ServiceVersion = "1.0.0"
)

// statusResp is the body shared by the health, readiness and liveness routes.
type statusResp struct {
	Status      string `json:"status"`
	Service     string `json:"service"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

func (srv HTTPServer) statusHandler(status string) gin.HandlerFunc {
	body := statusResp{
		Status:      status,
		Service:     ServiceName,
		Version:     ServiceVersion,
		Environment: srv.environment,
	}
	return func(c *gin.Context) {
		response.OK(c, body)
	}
}

// healthCheck godoc
// @Summary Health Check
// @Tags    Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router  /health [get]
func (srv HTTPServer) healthCheck() gin.HandlerFunc { return srv.statusHandler("healthy") }

// readyCheck godoc
// @Summary Readiness Check
// @Tags    Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router  /ready [get]
func (srv HTTPServer) readyCheck() gin.HandlerFunc { return srv.statusHandler("ready") }

// liveCheck godoc
// @Summary Liveness Check
// @Tags    Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router  /live [get]
func (srv HTTPServer) liveCheck() gin.HandlerFunc { return srv.statusHandler("alive") }
