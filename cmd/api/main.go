package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"keyword-soup/config"
	_ "keyword-soup/docs" // Swagger docs
	"keyword-soup/internal/category"
	"keyword-soup/internal/httpserver"
	"keyword-soup/internal/keyword/usecase"
	"keyword-soup/internal/metrics"
	"keyword-soup/pkg/googlesuggest"
	"keyword-soup/pkg/log"
)

// @title       Keyword Soup API
// @description Alphabet soup keyword research: autocomplete suggestions, categories, distribution metrics and CSV export.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Keyword Soup...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Category table
	table, err := config.BuildCategoryTable(cfg.Categories)
	if err != nil {
		logger.Error(ctx, "Failed to build category table: ", err)
		return
	}
	logger.Infof(ctx, "Loaded %d categories", table.Len())

	// 4. Suggestion client
	fetcher, err := googlesuggest.New(googlesuggest.Config{
		APIURL:    cfg.Suggest.APIURL,
		Format:    cfg.Suggest.ClientFormat,
		Language:  cfg.Suggest.Language,
		UserAgent: cfg.Suggest.UserAgent,
		Timeout:   cfg.Suggest.Timeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize suggestion client: ", err)
		return
	}
	logger.Infof(ctx, "Suggestion API: %s (format=%s, concurrency=%d)", cfg.Suggest.APIURL, fetcher.Format(), cfg.Suggest.Concurrency)

	// 5. Keyword domain
	m := metrics.New()
	keywordUC := usecase.New(logger, fetcher, category.New(table), m, cfg.Suggest.Concurrency)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		KeywordUseCase: keywordUC,
		Metrics:        m,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
