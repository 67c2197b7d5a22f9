package googlesuggest

import "time"

// Config configures the suggestion client.
type Config struct {
	APIURL    string
	Format    string // toolbar (XML) or firefox (JSON)
	Language  string // optional hl parameter
	UserAgent string
	Timeout   time.Duration
}

// toolbar response: <toplevel><CompleteSuggestion><suggestion data="..."/></CompleteSuggestion></toplevel>
type xmlDocument struct {
	Items []xmlCompleteSuggestion `xml:"CompleteSuggestion"`
}

type xmlCompleteSuggestion struct {
	Suggestions []xmlSuggestion `xml:"suggestion"`
}

type xmlSuggestion struct {
	Data string `xml:"data,attr"`
}
