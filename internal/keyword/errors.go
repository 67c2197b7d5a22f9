package keyword

import "errors"

// Domain-specific errors for the keyword package.
var (
	ErrEmptyKeyword          = errors.New("please enter a keyword")
	ErrNoSuggestionsFound    = errors.New("no suggestions found for this keyword")
	ErrNoSuggestionsToExport = errors.New("no suggestions to export")
	ErrFetchFailure          = errors.New("failed to fetch suggestions")
)
