package googlesuggest

import "context"

// IFetcher fetches autocomplete suggestions for a single query.
// Implementations are safe for concurrent use.
type IFetcher interface {
	Fetch(ctx context.Context, query string) ([]string, error)
}

var _ IFetcher = (*Client)(nil)
