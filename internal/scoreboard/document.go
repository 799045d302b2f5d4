package scoreboard

import (
	"encoding/json"
	"fmt"
	"io"
)

// Document is a raw scoreboard payload as decoded from JSON: nested maps and lists.
type Document map[string]any

// Events returns the raw event records, or nil when the document has no usable events list.
func (d Document) Events() []any {
	events, _ := d["events"].([]any)
	return events
}

// Day returns the slate date the feed reports under day.date, or "" when absent.
func (d Document) Day() string {
	day, _ := d["day"].(map[string]any)
	date, _ := day["date"].(string)
	return date
}

// Decode reads a JSON scoreboard document.
func Decode(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding scoreboard: %w", err)
	}
	if doc == nil {
		return Document{}, nil
	}
	return doc, nil
}
