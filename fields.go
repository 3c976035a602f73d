package portfoliodata

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// stringField returns the named frontmatter value as a string.
// Missing keys yield "". YAML libraries may hand back typed values
// (numbers, timestamps) for unquoted scalars; those are formatted sanely.
func stringField(fields map[string]any, key string) string {
	switch v := fields[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		return v.Format("2006-01-02")
	default:
		return fmt.Sprint(v)
	}
}

// stringList coerces a frontmatter value into a list of strings.
// Anything that is not a sequence yields an empty list, never nil, so the
// JSON output stays `[]`.
func stringList(v any) []string {
	out := []string{}
	switch list := v.(type) {
	case []string:
		out = append(out, list...)
	case []any:
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			} else {
				out = append(out, fmt.Sprint(item))
			}
		}
	}
	return out
}

// ratingValue coerces a frontmatter rating into a float64, defaulting to 0
// for anything unparsable.
func ratingValue(v any) float64 {
	switch x := v.(type) {
	case nil:
		return 0
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case uint64:
		return float64(x)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// hasRating reports whether a rating field is present and non-empty.
// Zero and empty string do not count: a zero rating alone is not enough
// to include an unread book.
func hasRating(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	default:
		return ratingValue(v) != 0
	}
}
