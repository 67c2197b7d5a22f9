package usecase

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"keyword-soup/internal/metrics"
	"keyword-soup/pkg/googlesuggest"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// BuildQueries returns the bare keyword followed by "<keyword> a" .. "<keyword> z".
func BuildQueries(keyword string) []string {
	queries := make([]string, 0, len(alphabet)+1)
	queries = append(queries, keyword)
	for _, letter := range alphabet {
		queries = append(queries, keyword+" "+string(letter))
	}
	return queries
}

// fetchResult is the outcome of one soup query: suggestions or the reason
// there are none.
type fetchResult struct {
	query       string
	suggestions []string
	err         error
}

func (uc *implUseCase) fetch(ctx context.Context, query string) fetchResult {
	suggestions, err := uc.fetcher.Fetch(ctx, query)
	switch {
	case err == nil:
		uc.metrics.ObserveFetch(metrics.OutcomeSuccess)
	case googlesuggest.IsTimeout(err):
		uc.metrics.ObserveFetch(metrics.OutcomeTimeout)
	default:
		uc.metrics.ObserveFetch(metrics.OutcomeError)
	}
	return fetchResult{query: query, suggestions: suggestions, err: err}
}

// soup runs every query for keyword and merges the results in query order.
// A failed query contributes nothing; it never aborts the run.
func (uc *implUseCase) soup(ctx context.Context, keyword string) []string {
	start := time.Now()
	queries := BuildQueries(keyword)
	results := make([]fetchResult, len(queries))

	if uc.concurrency <= 1 {
		for i, q := range queries {
			results[i] = uc.fetch(ctx, q)
		}
	} else {
		g := new(errgroup.Group)
		g.SetLimit(uc.concurrency)
		for i, q := range queries {
			g.Go(func() error {
				results[i] = uc.fetch(ctx, q)
				return nil
			})
		}
		_ = g.Wait()
	}

	var (
		all    []string
		failed int
	)
	for _, r := range results {
		if r.err != nil {
			failed++
			uc.l.Warnf(ctx, "soup: query %q failed: %v", r.query, r.err)
			continue
		}
		all = append(all, r.suggestions...)
	}

	unique := dedupe(all)
	elapsed := time.Since(start)
	uc.metrics.ObserveSoup(elapsed, len(unique))
	uc.l.Infof(ctx, "soup: keyword=%q queries=%d failed=%d raw=%d unique=%d took=%s",
		keyword, len(queries), failed, len(all), len(unique), elapsed)

	return unique
}
