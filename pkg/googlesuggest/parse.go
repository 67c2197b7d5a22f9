package googlesuggest

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/tidwall/gjson"
	"golang.org/x/net/html/charset"
)

// ParseXML extracts the data attribute of every CompleteSuggestion/suggestion
// element in document order. Elements without a data value are skipped.
func ParseXML(body []byte) ([]string, error) {
	dec := xml.NewDecoder(bytes.NewReader(body))
	dec.CharsetReader = charset.NewReaderLabel

	var doc xmlDocument
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse XML response: %w", err)
	}
	if err := expectEOF(dec); err != nil {
		return nil, fmt.Errorf("failed to parse XML response: %w", err)
	}

	suggestions := make([]string, 0, len(doc.Items))
	for _, item := range doc.Items {
		if len(item.Suggestions) == 0 {
			continue
		}
		if data := item.Suggestions[0].Data; data != "" {
			suggestions = append(suggestions, data)
		}
	}
	return suggestions, nil
}

// expectEOF accepts only whitespace, comments and processing instructions
// after the root element.
func expectEOF(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.Comment, xml.ProcInst:
		case xml.CharData:
			if len(bytes.TrimSpace(t)) != 0 {
				return fmt.Errorf("junk after document element")
			}
		default:
			return fmt.Errorf("junk after document element")
		}
	}
}

// ParseJSON extracts suggestions from a ["query", ["s1", "s2", ...]] document.
func ParseJSON(body []byte) ([]string, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("failed to parse JSON response: invalid document")
	}

	root := gjson.ParseBytes(body)
	if !root.IsArray() {
		return nil, fmt.Errorf("failed to parse JSON response: expected array, got %s", root.Type)
	}

	list := root.Get("1")
	if !list.Exists() {
		return []string{}, nil
	}
	if !list.IsArray() {
		return nil, fmt.Errorf("failed to parse JSON response: suggestions are not a list")
	}

	suggestions := make([]string, 0, len(list.Array()))
	for _, item := range list.Array() {
		if s := item.String(); s != "" {
			suggestions = append(suggestions, s)
		}
	}
	return suggestions, nil
}
