package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSuggestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/xml")
		switch r.URL.Query().Get("q") {
		case "seo":
			fmt.Fprint(w, `<toplevel><CompleteSuggestion><suggestion data="seo tools"/></CompleteSuggestion></toplevel>`)
		case "seo h":
			fmt.Fprint(w, `<toplevel><CompleteSuggestion><suggestion data="seo how to"/></CompleteSuggestion></toplevel>`)
		default:
			fmt.Fprint(w, `<toplevel></toplevel>`)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testOptions(apiURL, output string) options {
	return options{
		output:       output,
		clientFormat: "toolbar",
		apiURL:       apiURL,
		concurrency:  4,
		timeout:      time.Second,
		logLevel:     "error",
	}
}

func TestRun(t *testing.T) {
	srv := newSuggestServer(t)

	t.Run("csv", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, run(context.Background(), testOptions(srv.URL, outputCSV), " seo ", &out))
		assert.Equal(t, "Keyword Suggestion\r\nseo tools\r\nseo how to\r\n", out.String())
	})

	t.Run("report", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, run(context.Background(), testOptions(srv.URL, outputReport), "seo", &out))
		assert.Contains(t, out.String(), `2 suggestions for "seo"`)
		assert.Contains(t, out.String(), "Questions  1 (50.0%)")
		assert.Contains(t, out.String(), "  - seo how to")
	})

	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, run(context.Background(), testOptions(srv.URL, outputJSON), "seo", &out))
		assert.Contains(t, out.String(), `"total": 2`)
	})

	t.Run("no suggestions", func(t *testing.T) {
		err := run(context.Background(), testOptions(srv.URL, outputCSV), "zzqx", &bytes.Buffer{})
		assert.EqualError(t, err, `no suggestions found for "zzqx"`)
	})

	t.Run("unknown output", func(t *testing.T) {
		err := run(context.Background(), testOptions(srv.URL, "xml"), "seo", &bytes.Buffer{})
		assert.Error(t, err)
	})
}
