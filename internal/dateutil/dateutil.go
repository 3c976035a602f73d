// Package dateutil resolves "auto" date values in frontmatter.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxFormatLength limits format string length to prevent abuse.
const MaxFormatLength = 50

// DefaultFormat is used when "auto" is specified without a format.
const DefaultFormat = "YYYY-MM-DD"

// dateTokens maps user-friendly tokens to Go time format components.
// Ordered by length descending for greedy matching.
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// Presets provides named shortcuts for common date formats.
var Presets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// ParseFormat converts a user-friendly format string (YYYY, MM, DD tokens,
// longest token wins) to Go's reference-time layout. Non-token characters
// pass through as literals.
func ParseFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxFormatLength)
	}

	var layout strings.Builder
	layout.Grow(len(format) + 8)

	for i := 0; i < len(format); {
		matched := false
		for _, tok := range dateTokens {
			if strings.HasPrefix(format[i:], tok.token) {
				layout.WriteString(tok.goFmt)
				i += len(tok.token)
				matched = true
				break
			}
		}
		if !matched {
			layout.WriteByte(format[i])
			i++
		}
	}

	return layout.String(), nil
}

// ResolveAuto handles "auto" and "auto:FORMAT" syntax for date values.
//   - "auto" resolves to t in YYYY-MM-DD
//   - "auto:FORMAT" resolves to t in a custom format (e.g. "auto:DD/MM/YYYY")
//   - "auto:preset" resolves using a named preset (iso, european, us, long)
//   - anything else passes through unchanged
//
// The time parameter allows injecting a fixed time for testing.
func ResolveAuto(value string, t time.Time) (string, error) {
	lower := strings.ToLower(value)

	if !strings.HasPrefix(lower, "auto") {
		return value, nil
	}

	if lower == "auto" {
		layout, err := ParseFormat(DefaultFormat)
		if err != nil {
			return "", err
		}
		return t.Format(layout), nil
	}

	if !strings.HasPrefix(lower, "auto:") {
		// Not auto syntax after all (e.g. "autumn notes") - passthrough.
		return value, nil
	}

	formatPart := value[len("auto:"):]
	if formatPart == "" {
		return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
	}

	if preset, ok := Presets[strings.ToLower(formatPart)]; ok {
		formatPart = preset
	}

	layout, err := ParseFormat(formatPart)
	if err != nil {
		return "", err
	}

	return t.Format(layout), nil
}
