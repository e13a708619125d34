package provider

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
)

// wireText decodes row fields that some providers emit as bare numbers for
// nominally-string columns (license numbers, report numbers).
type wireText string

func (t *wireText) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		*t = ""
		return nil
	}
	if s[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*t = wireText(v)
		return nil
	}
	*t = wireText(s)
	return nil
}

// decodeRows decodes raw provider rows into a typed slice. One bad row
// fails the whole call; partial payloads are not worth serving.
func decodeRows[T any](rows []json.RawMessage) ([]T, error) {
	out := make([]T, 0, len(rows))
	for _, raw := range rows {
		var row T
		if err := json.Unmarshal(raw, &row); err != nil {
			return nil, eris.Wrap(err, "provider: decode row")
		}
		out = append(out, row)
	}
	return out, nil
}

// parseFloat parses numeric wire values permissively: non-numeric
// characters are stripped before conversion, and an empty or all-junk
// value is absent, never zero.
func parseFloat(s string) *float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return nil
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &f
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
