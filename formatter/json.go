package formatter

import (
	"encoding/json"
	"io"
)

type responseBuilder struct {
	indent bool
}

// NewResponseBuilder creates a builder; indent selects two-space indentation.
func NewResponseBuilder(indent bool) *responseBuilder {
	return &responseBuilder{indent: indent}
}

// BuildJSON serializes any result (value.Value, records, summaries) to JSON.
func (rb *responseBuilder) BuildJSON(res any) ([]byte, error) {
	if rb.indent {
		return json.MarshalIndent(res, "", "  ")
	}
	return json.Marshal(res)
}

// WriteJSON writes BuildJSON output followed by a newline.
func (rb *responseBuilder) WriteJSON(w io.Writer, res any) error {
	b, err := rb.BuildJSON(res)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
