package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Text is a JSON value read as an opaque string. Explorer payloads are not
// consistent about typing (a block height may be a number in one version and a
// string in another), so Text accepts both and keeps the literal text of
// numbers untouched. A JSON null leaves the value empty.
type Text string

// UnmarshalJSON accepts a JSON string, number, boolean or null.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		*t = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid text value: %w", err)
		}
		*t = Text(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*t = Text(n)
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err != nil {
		return fmt.Errorf("invalid text value: %s", data)
	}
	*t = Text(fmt.Sprint(b))
	return nil
}

// MarshalJSON encodes the Text as a JSON string.
func (t Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

// Or returns the text, or fallback when it is empty.
func (t Text) Or(fallback string) string {
	if t == "" {
		return fallback
	}
	return string(t)
}
