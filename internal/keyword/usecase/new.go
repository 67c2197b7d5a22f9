package usecase

import (
	"keyword-soup/internal/category"
	"keyword-soup/internal/keyword"
	"keyword-soup/internal/metrics"
	"keyword-soup/pkg/googlesuggest"
	pkgLog "keyword-soup/pkg/log"
)

// implUseCase is the private implementation of keyword.UseCase.
type implUseCase struct {
	l           pkgLog.Logger
	fetcher     googlesuggest.IFetcher
	category    category.Service
	metrics     *metrics.Metrics
	concurrency int
}

var _ keyword.UseCase = (*implUseCase)(nil)

// New creates a new keyword UseCase. concurrency <= 1 runs the soup queries
// one after another; larger values fan them out to that many goroutines.
// m may be nil.
func New(
	l pkgLog.Logger,
	fetcher googlesuggest.IFetcher,
	categorySvc category.Service,
	m *metrics.Metrics,
	concurrency int,
) *implUseCase {
	if concurrency < 1 {
		concurrency = 1
	}
	return &implUseCase{
		l:           l,
		fetcher:     fetcher,
		category:    categorySvc,
		metrics:     m,
		concurrency: concurrency,
	}
}
