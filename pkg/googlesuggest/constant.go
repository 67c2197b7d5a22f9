package googlesuggest

import "time"

const (
	// DefaultAPIURL is the public Google autocomplete endpoint.
	DefaultAPIURL = "https://suggestqueries.google.com/complete/search"

	// DefaultTimeout bounds a single suggestion request.
	DefaultTimeout = 10 * time.Second

	// FormatToolbar asks for the XML (toolbar) response.
	FormatToolbar = "toolbar"
	// FormatFirefox asks for the JSON (firefox) response.
	FormatFirefox = "firefox"

	maxBodyBytes = 1 << 20
)
