package record

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Label turns a snake_case field key into "Title Case".
func Label(key string) string {
	return cases.Title(language.Und).String(strings.ReplaceAll(key, "_", " "))
}

// Render writes every field as "**Label**: value" in insertion order.
// Lists and nested records become a labeled group of "  - " lines.
func Render(r Record) string {
	lines := make([]string, 0, len(r))
	for _, f := range r {
		label := Label(f.Key)
		switch v := f.Value.(type) {
		case Record:
			lines = append(lines, fmt.Sprintf("**%s**:", label))
			for _, nested := range v {
				lines = append(lines, fmt.Sprintf("  - %s: %s", nested.Key, FormatValue(nested.Value)))
			}
		case []any:
			lines = append(lines, fmt.Sprintf("**%s**:", label))
			for _, item := range v {
				lines = append(lines, "  - "+FormatValue(item))
			}
		default:
			lines = append(lines, fmt.Sprintf("**%s**: %s", label, FormatValue(v)))
		}
	}
	return strings.Join(lines, "\n")
}

// FormatValue renders a scalar the way the fixtures were authored:
// nil is "None", booleans are "True"/"False", integral floats keep ".0".
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "None"
	case string:
		return val
	case bool:
		if val {
			return "True"
		}
		return "False"
	case float64:
		return formatFloat(val, 64)
	case float32:
		return formatFloat(float64(val), 32)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(val)
	case Record:
		parts := make([]string, len(val))
		for i, f := range val {
			parts[i] = f.Key + ": " + FormatValue(f.Value)
		}
		return strings.Join(parts, ", ")
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = FormatValue(item)
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(val)
	}
}

func formatFloat(f float64, bits int) string {
	s := strconv.FormatFloat(f, 'f', -1, bits)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
