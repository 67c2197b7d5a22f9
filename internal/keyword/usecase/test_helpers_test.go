package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"keyword-soup/internal/category"
	"keyword-soup/internal/model"
	"keyword-soup/pkg/googlesuggest"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

var errBoom = &googlesuggest.FetchError{Query: "x", Kind: googlesuggest.ErrTransport, Err: errors.New("boom")}

// fakeFetcher answers from a fixed table and records every query it receives.
// Queries missing from the table return no suggestions.
type fakeFetcher struct {
	mu        sync.Mutex
	responses map[string][]string
	failing   map[string]error
	delay     func(query string) time.Duration
	calls     []string
}

func (f *fakeFetcher) Fetch(ctx context.Context, query string) ([]string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, query)
	f.mu.Unlock()

	if f.delay != nil {
		select {
		case <-time.After(f.delay(query)):
		case <-ctx.Done():
			return nil, &googlesuggest.FetchError{Query: query, Kind: googlesuggest.ErrTimeout, Err: ctx.Err()}
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, &googlesuggest.FetchError{Query: query, Kind: googlesuggest.ErrTimeout, Err: err}
	}
	if err, ok := f.failing[query]; ok {
		return nil, err
	}
	return f.responses[query], nil
}

func (f *fakeFetcher) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// failAll makes every soup query for keyword fail.
type failAll struct {
	mu    sync.Mutex
	count int
}

func (f *failAll) Fetch(ctx context.Context, query string) ([]string, error) {
	f.mu.Lock()
	f.count++
	f.mu.Unlock()
	return nil, &googlesuggest.FetchError{Query: query, Kind: googlesuggest.ErrTimeout, Err: context.DeadlineExceeded}
}

func newCategoryService(t *testing.T, categories []model.Category) category.Service {
	t.Helper()
	table, err := category.NewTable(categories)
	require.NoError(t, err)
	return category.New(table)
}
