package googlesuggest

import (
	"errors"
	"fmt"
)

var (
	// ErrFetch matches every failure returned by Fetch.
	ErrFetch = errors.New("suggestion fetch failed")

	ErrTimeout   = errors.New("API request timed out")
	ErrTransport = errors.New("API request failed")
	ErrParse     = errors.New("failed to parse suggestion response")

	ErrInvalidFormat = errors.New("unsupported response format")
)

// FetchError describes a failed suggestion query. It matches ErrFetch and
// its Kind (ErrTimeout, ErrTransport or ErrParse) under errors.Is.
type FetchError struct {
	Query string
	Kind  error
	Err   error
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("query %q: %v", e.Query, e.Kind)
	}
	return fmt.Sprintf("query %q: %v: %v", e.Query, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() []error {
	errs := []error{ErrFetch, e.Kind}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// IsTimeout reports whether err is a timed-out fetch.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}
