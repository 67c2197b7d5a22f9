package category

import (
	"bytes"
	"encoding/json"
)

// Group is one category's matched suggestions, in first-match order.
type Group struct {
	Name        string
	Suggestions []string
}

// Result maps every category of the table to its matched suggestions.
// Groups follow the table's declared order; unmatched categories hold an
// empty, non-nil list.
type Result struct {
	Groups []Group
}

// Get returns the suggestions matched by the named category.
func (r Result) Get(name string) ([]string, bool) {
	for _, g := range r.Groups {
		if g.Name == name {
			return g.Suggestions, true
		}
	}
	return nil, false
}

// MarshalJSON renders {"<category>": [...], ...} keeping table order.
func (r Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, g := range r.Groups {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeKey(&buf, g.Name); err != nil {
			return nil, err
		}
		list := g.Suggestions
		if list == nil {
			list = []string{}
		}
		raw, err := json.Marshal(list)
		if err != nil {
			return nil, err
		}
		buf.Write(raw)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// CategoryMetric is the share of suggestions a category matched.
type CategoryMetric struct {
	Name       string  `json:"-"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Metrics summarises a Result against the number of distinct suggestions.
// Counts may sum to more than Total since a suggestion can sit in several
// categories.
type Metrics struct {
	Total      int
	Categories []CategoryMetric
}

// Get returns the metric for the named category.
func (m Metrics) Get(name string) (CategoryMetric, bool) {
	for _, c := range m.Categories {
		if c.Name == name {
			return c, true
		}
	}
	return CategoryMetric{}, false
}

// MarshalJSON renders {"total": N, "<category>": {"count", "percentage"}, ...}.
func (m Metrics) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"total":`)
	raw, err := json.Marshal(m.Total)
	if err != nil {
		return nil, err
	}
	buf.Write(raw)
	for _, c := range m.Categories {
		buf.WriteByte(',')
		if err := writeKey(&buf, c.Name); err != nil {
			return nil, err
		}
		raw, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		buf.Write(raw)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeKey(buf *bytes.Buffer, key string) error {
	raw, err := json.Marshal(key)
	if err != nil {
		return err
	}
	buf.Write(raw)
	buf.WriteByte(':')
	return nil
}
