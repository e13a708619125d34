package model

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeText trims whitespace and applies NFC so that decomposed Hangul
// from mixed upstream encodings compares equal to its precomposed form.
func NormalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
