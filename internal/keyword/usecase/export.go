package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"keyword-soup/internal/keyword"
)

const (
	csvHeader   = "Keyword Suggestion"
	csvFilename = "keyword_suggestions.csv"
	csvMIME     = "text/csv"
	emptyCSVRow = "\"\"\r\n"
)

// FormatCSV renders a header row followed by one row per suggestion.
// Rows end in CRLF and fields are quoted only when needed. An empty
// suggestion is written as "" so readers do not skip it as a blank line.
func FormatCSV(suggestions []string) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.UseCRLF = true

	if err := w.Write([]string{csvHeader}); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, s := range suggestions {
		if s == "" {
			w.Flush()
			buf.WriteString(emptyCSVRow)
			continue
		}
		if err := w.Write([]string{s}); err != nil {
			return "", fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV: %w", err)
	}

	return buf.String(), nil
}

// ExportCSV renders input.Suggestions as a downloadable CSV file.
func (uc *implUseCase) ExportCSV(ctx context.Context, input keyword.ExportCSVInput) (keyword.ExportCSVOutput, error) {
	if len(input.Suggestions) == 0 {
		return keyword.ExportCSVOutput{}, keyword.ErrNoSuggestionsToExport
	}

	content, err := FormatCSV(input.Suggestions)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ExportCSV FormatCSV: %v", err)
		return keyword.ExportCSVOutput{}, err
	}
	uc.metrics.ObserveExport()

	return keyword.ExportCSVOutput{
		Filename:    csvFilename,
		ContentType: csvMIME,
		Content:     []byte(content),
	}, nil
}
