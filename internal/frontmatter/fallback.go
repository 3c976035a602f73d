package frontmatter

import "strings"

// parseFallback parses a small YAML subset without any library support:
// flat `key: value` scalars, inline `[a, b]` lists, dash lists under a
// bare key, and multiline scalars folded with single spaces. No nesting,
// no multi-document support.
func parseFallback(src string) map[string]any {
	data := map[string]any{}

	var pendingKey string
	var pendingValue []string

	// A bare `key:` stays pending until its value arrives: dash list items
	// accumulate under it, continuation lines fold into one scalar flushed
	// at the next key or EOF.
	flush := func() {
		if pendingKey != "" && len(pendingValue) > 0 {
			data[pendingKey] = stripQuotes(strings.TrimSpace(strings.Join(pendingValue, " ")))
			pendingValue = nil
		}
	}

	for _, raw := range strings.Split(src, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if item, ok := strings.CutPrefix(line, "- "); ok {
			if pendingKey != "" {
				list, _ := data[pendingKey].([]string)
				data[pendingKey] = append(list, stripQuotes(strings.TrimSpace(item)))
			}
			continue
		}

		if key, value, found := strings.Cut(line, ":"); found {
			flush()
			pendingKey = strings.TrimSpace(key)
			value = strings.TrimSpace(value)

			if value == "" {
				continue
			}

			if strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]") {
				data[pendingKey] = splitInlineList(value)
			} else {
				data[pendingKey] = stripQuotes(value)
			}
			pendingKey = ""
			continue
		}

		if pendingKey != "" {
			pendingValue = append(pendingValue, line)
		}
	}

	flush()
	return data
}

// splitInlineList parses `[a, 'b', "c"]` into its elements.
// Empty elements are dropped; a degenerate `[]` yields an empty list.
func splitInlineList(value string) []string {
	items := []string{}
	for _, part := range strings.Split(strings.Trim(value, "[]"), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		items = append(items, stripQuotes(part))
	}
	return items
}

// stripQuotes removes surrounding single or double quotes.
func stripQuotes(s string) string {
	return strings.Trim(s, `'"`)
}
