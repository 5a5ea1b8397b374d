package category

import (
	"fmt"
	"strings"
)

// Rule maps a matcher to the category it selects.
type Rule struct {
	Category Category
	Match    Matcher
}

// KeywordSet lists the fallback keywords for one category.
type KeywordSet struct {
	Category Category
	Keywords []string
}

// Normalizer resolves arbitrary text to exactly one category of its set.
// Rules are evaluated in order and the first match wins; when nothing
// matches the default is returned.
type Normalizer struct {
	set      Set
	rules    []Rule
	fallback Category
}

// NewNormalizer panics when the default or any rule category is outside set.
func NewNormalizer(set Set, fallback Category, rules ...Rule) *Normalizer {
	if !set.Contains(fallback) {
		panic(fmt.Sprintf("category: default %q not in set [%s]", fallback, set))
	}
	for _, r := range rules {
		if !set.Contains(r.Category) {
			panic(fmt.Sprintf("category: rule category %q not in set [%s]", r.Category, set))
		}
		if r.Match == nil {
			panic(fmt.Sprintf("category: rule for %q has no matcher", r.Category))
		}
	}
	return &Normalizer{set: set, rules: rules, fallback: fallback}
}

// TwoStage builds the common shape: canonical tokens in set order, then
// keyword fallback in table order, then the default.
func TwoStage(set Set, fallback Category, keywords []KeywordSet) *Normalizer {
	rules := make([]Rule, 0, len(set)+len(keywords))
	for _, c := range set {
		rules = append(rules, Rule{Category: c, Match: Contains(string(c))})
	}
	for _, ks := range keywords {
		rules = append(rules, Rule{Category: ks.Category, Match: AnyOf(ks.Keywords...)})
	}
	return NewNormalizer(set, fallback, rules...)
}

func (n *Normalizer) Normalize(raw string) Category {
	text := strings.ToLower(strings.TrimSpace(raw))
	if text == "" {
		return n.fallback
	}
	for _, r := range n.rules {
		if r.Match(text) {
			return r.Category
		}
	}
	return n.fallback
}

func (n *Normalizer) Set() Set {
	return n.set
}

func (n *Normalizer) Default() Category {
	return n.fallback
}
