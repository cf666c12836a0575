package render

import (
	"encoding/json"
	"io"

	"mediatable/internal/inventory"
)

// WriteJSON encodes records as an indented JSON array. An empty inventory is
// written as [] and filenames are not HTML-escaped.
func WriteJSON(w io.Writer, records []inventory.MediaRecord) error {
	if records == nil {
		records = []inventory.MediaRecord{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(records)
}
