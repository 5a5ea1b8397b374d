// Package category maps free-form classifier output onto a closed set of
// routing categories.
package category

import (
	"fmt"
	"strings"
)

// Category is a canonical routing token such as "password_reset".
type Category string

func (c Category) String() string {
	return string(c)
}

// Set is the ordered, closed list of categories a template accepts.
// Declaration order is significant: it is the direct-match precedence.
type Set []Category

func NewSet(categories ...Category) Set {
	seen := make(map[Category]struct{}, len(categories))
	for _, c := range categories {
		if c == "" {
			panic("category: empty category in set")
		}
		if _, dup := seen[c]; dup {
			panic(fmt.Sprintf("category: duplicate category %q", c))
		}
		seen[c] = struct{}{}
	}
	out := make(Set, len(categories))
	copy(out, categories)
	return out
}

func (s Set) Contains(c Category) bool {
	for _, member := range s {
		if member == c {
			return true
		}
	}
	return false
}

func (s Set) Strings() []string {
	out := make([]string, len(s))
	for i, c := range s {
		out[i] = string(c)
	}
	return out
}

func (s Set) String() string {
	return strings.Join(s.Strings(), ", ")
}
