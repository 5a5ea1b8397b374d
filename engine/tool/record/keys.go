package record

import "strings"

// KeyFunc normalizes user input into a table key.
type KeyFunc func(string) string

func UpperKey(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func LowerKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SnakeKey lowercases and joins words with underscores: "Active Directory" → "active_directory".
func SnakeKey(s string) string {
	return strings.ReplaceAll(LowerKey(s), " ", "_")
}

// WithAliases applies base, strips the given characters, then maps aliases.
func WithAliases(base KeyFunc, strip string, aliases map[string]string) KeyFunc {
	return func(s string) string {
		key := base(s)
		if strip != "" {
			key = strings.Map(func(r rune) rune {
				if strings.ContainsRune(strip, r) {
					return -1
				}
				return r
			}, key)
		}
		if alias, ok := aliases[key]; ok {
			return alias
		}
		return key
	}
}
