// Package knowledge implements linear substring search over the markdown
// documents bundled with a template.
package knowledge

import (
	"fmt"
	"path"
	"sort"
	"strings"
	"unicode"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// Document is one knowledge file.
type Document struct {
	Name    string
	Stem    string
	Content string
}

// Corpus reads documents matching a glob under a directory.
type Corpus struct {
	fs      afero.Fs
	dir     string
	pattern string
}

func NewCorpus(fsys afero.Fs, dir string) *Corpus {
	return &Corpus{fs: fsys, dir: dir, pattern: "*.md"}
}

// WithPattern returns a copy matching a different glob, e.g. "**/*.md".
func (c *Corpus) WithPattern(pattern string) *Corpus {
	clone := *c
	clone.pattern = pattern
	return &clone
}

// Documents loads every matching file sorted by path. A missing directory yields none.
func (c *Corpus) Documents() ([]Document, error) {
	exists, err := afero.DirExists(c.fs, c.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to stat knowledge dir %s: %w", c.dir, err)
	}
	if !exists {
		return nil, nil
	}
	matches, err := doublestar.Glob(afero.NewIOFS(c.fs), path.Join(c.dir, c.pattern))
	if err != nil {
		return nil, fmt.Errorf("failed to glob knowledge files: %w", err)
	}
	sort.Strings(matches)
	docs := make([]Document, 0, len(matches))
	for _, m := range matches {
		data, err := afero.ReadFile(c.fs, m)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", m, err)
		}
		name := path.Base(m)
		docs = append(docs, Document{
			Name:    name,
			Stem:    strings.TrimSuffix(name, path.Ext(name)),
			Content: string(data),
		})
	}
	return docs, nil
}

// indexFold returns the rune offset of needle in hay, ignoring case, or -1.
func indexFold(hay, needle []rune) int {
	if len(needle) == 0 {
		return 0
	}
	for i := 0; i+len(needle) <= len(hay); i++ {
		match := true
		for j, r := range needle {
			if unicode.ToLower(hay[i+j]) != unicode.ToLower(r) {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
