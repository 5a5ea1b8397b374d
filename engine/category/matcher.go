package category

import "strings"

// Matcher reports whether already-lowercased text satisfies a rule.
type Matcher func(text string) bool

// Contains matches when text contains the literal substring.
func Contains(needle string) Matcher {
	needle = strings.ToLower(needle)
	return func(text string) bool {
		return strings.Contains(text, needle)
	}
}

// AnyOf matches when any of the substrings occurs in text.
func AnyOf(needles ...string) Matcher {
	lowered := lowerAll(needles)
	return func(text string) bool {
		for _, n := range lowered {
			if strings.Contains(text, n) {
				return true
			}
		}
		return false
	}
}

// AllOf matches when every substring occurs in text.
func AllOf(needles ...string) Matcher {
	lowered := lowerAll(needles)
	return func(text string) bool {
		for _, n := range lowered {
			if !strings.Contains(text, n) {
				return false
			}
		}
		return len(lowered) > 0
	}
}

// Either matches when any of the matchers does.
func Either(matchers ...Matcher) Matcher {
	return func(text string) bool {
		for _, m := range matchers {
			if m(text) {
				return true
			}
		}
		return false
	}
}

// Both matches when all of the matchers do.
func Both(matchers ...Matcher) Matcher {
	return func(text string) bool {
		for _, m := range matchers {
			if !m(text) {
				return false
			}
		}
		return len(matchers) > 0
	}
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}
