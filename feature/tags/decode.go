package tags

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DecodeTags validates that raw is a JSON array of strings and returns it.
// A missing field, null, or any other shape is a ValidationError.
func DecodeTags(raw json.RawMessage) ([]string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, &ValidationError{Field: "tags", Message: "'tags' must be an array of strings"}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, &ValidationError{Field: "tags", Message: "'tags' must be an array of strings"}
	}

	out := make([]string, 0, len(items))
	for i, item := range items {
		var text string
		if err := json.Unmarshal(item, &text); err != nil || bytes.Equal(bytes.TrimSpace(item), []byte("null")) {
			return nil, &ValidationError{Field: "tags", Message: fmt.Sprintf("element %d is not a string", i)}
		}
		out = append(out, text)
	}
	return out, nil
}
