// Package frontmatter splits Markdown documents into a YAML frontmatter
// block and body, and parses the block into a flat field map.
//
// Parsing is two-tiered: the primary parser is a real YAML library
// (via yamlutil); when the block is not valid YAML, a line-oriented
// fallback parser recovers flat scalars and single-level lists, which is
// all vault documents ever use.
package frontmatter

import (
	"bytes"
	"errors"

	"github.com/ozzgio/portfolio-data/internal/yamlutil"
)

// ErrMissingClosingDelimiter indicates the document started with a
// frontmatter delimiter but never closed it.
var ErrMissingClosingDelimiter = errors.New("frontmatter: opening --- delimiter without closing delimiter")

// Split separates `---` delimited frontmatter from the Markdown body.
//
// If the document does not start with a delimiter line, had is false and
// body is the full input. Delimiter lines tolerate trailing whitespace
// (including the \r of CRLF files).
func Split(content []byte) (fm, body []byte, had bool, err error) {
	nl := bytes.IndexByte(content, '\n')
	if nl < 0 || !isDelimiter(content[:nl]) {
		return nil, content, false, nil
	}

	rest := content[nl+1:]
	start := 0
	for {
		end := bytes.IndexByte(rest[start:], '\n')
		atEOF := end < 0

		var line []byte
		if atEOF {
			line = rest[start:]
		} else {
			line = rest[start : start+end]
		}

		if isDelimiter(line) {
			fmEnd := start
			if fmEnd > 0 {
				fmEnd-- // drop the newline that ended the block
			}
			if !atEOF {
				body = rest[start+end+1:]
			}
			return rest[:fmEnd], body, true, nil
		}

		if atEOF {
			return nil, nil, false, ErrMissingClosingDelimiter
		}
		start += end + 1
	}
}

// Parse converts raw frontmatter (without --- delimiters) into a flat map.
// Values are strings or []string (from the fallback parser) or whatever the
// YAML library produced. Parse never fails: invalid YAML drops to the
// fallback parser, and empty input yields an empty map.
func Parse(fm []byte) map[string]any {
	if len(bytes.TrimSpace(fm)) == 0 {
		return map[string]any{}
	}

	var fields map[string]any
	if err := yamlutil.Unmarshal(fm, &fields); err == nil {
		if fields == nil {
			fields = map[string]any{}
		}
		return fields
	}

	return parseFallback(string(fm))
}

// isDelimiter reports whether line is `---` with optional trailing whitespace.
func isDelimiter(line []byte) bool {
	trimmed := bytes.TrimRight(line, " \t\r")
	return bytes.Equal(trimmed, []byte("---"))
}
