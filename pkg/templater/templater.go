package templater

import (
	"fmt"
	"regexp"
)

// Values maps placeholder names to their replacement values.
type Values map[string]any

// Placeholders are word-character identifiers wrapped in braces, e.g. {attribute}.
var tokenRegex = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// Render substitutes {name} tokens in template with the matching entries
// from replacements. Substitution is a single pass; replacement values are
// never re-scanned for tokens.
//
// A token whose name has no usable replacement is left untouched when
// unwrapUnmatched is false, or emitted as the bare name without braces when
// unwrapUnmatched is true. A replacement value that stringifies to nothing
// (nil, empty string, numeric zero, false) counts as absent, so partial
// rendering can leave tokens like {attribute} in place for a later pass.
func Render(template string, replacements Values, unwrapUnmatched bool) string {
	return tokenRegex.ReplaceAllStringFunc(template, func(match string) string {
		name := match[1 : len(match)-1]
		if val, ok := stringify(replacements[name]); ok {
			return val
		}
		if unwrapUnmatched {
			return name
		}
		return match
	})
}

// stringify converts a replacement value to its display string. The second
// return is false for values that should fall back to the unmatched-token
// policy.
func stringify(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, val != ""
	case bool:
		return fmt.Sprintf("%t", val), val
	case int:
		return fmt.Sprintf("%d", val), val != 0
	case int8:
		return fmt.Sprintf("%d", val), val != 0
	case int16:
		return fmt.Sprintf("%d", val), val != 0
	case int32:
		return fmt.Sprintf("%d", val), val != 0
	case int64:
		return fmt.Sprintf("%d", val), val != 0
	case uint:
		return fmt.Sprintf("%d", val), val != 0
	case uint8:
		return fmt.Sprintf("%d", val), val != 0
	case uint16:
		return fmt.Sprintf("%d", val), val != 0
	case uint32:
		return fmt.Sprintf("%d", val), val != 0
	case uint64:
		return fmt.Sprintf("%d", val), val != 0
	case float32:
		return fmt.Sprintf("%v", val), val != 0
	case float64:
		return fmt.Sprintf("%v", val), val != 0
	default:
		s := fmt.Sprint(val)
		return s, s != ""
	}
}
