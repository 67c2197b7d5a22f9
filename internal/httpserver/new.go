package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"keyword-soup/internal/keyword"
	"keyword-soup/internal/metrics"
	"keyword-soup/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Keyword domain
	keywordUC keyword.UseCase

	// Observability
	metrics *metrics.Metrics
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Keyword domain
	KeywordUseCase keyword.UseCase

	// Metrics is optional; /metrics is only exposed when set.
	Metrics *metrics.Metrics
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		keywordUC:   cfg.KeywordUseCase,
		metrics:     cfg.Metrics,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.keywordUC == nil {
		return errors.New("keyword usecase is required")
	}
	return nil
}
