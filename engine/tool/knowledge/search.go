package knowledge

import (
	"context"
	"fmt"
	"strings"

	"github.com/agentdesk/agentdesk/engine/tool"
	"github.com/agentdesk/agentdesk/pkg/logger"
)

const (
	ResultSeparator = "\n\n---\n\n"
	snippetBefore   = 200
	snippetAfter    = 600
)

// SearchConfig describes one section search tool.
type SearchConfig struct {
	Name        string
	Description string
	Argument    string
	// Marker splits documents into sections, e.g. "\n### ".
	Marker     string
	MaxResults int
	MaxRunes   int
	// Snippet keeps a window around the first hit instead of the whole section.
	Snippet bool
	// Label prefixes each hit with "[file-stem] ".
	Label bool
	// NotFound is a format string receiving the query.
	NotFound string
}

// Search scans every section of every document for a case-insensitive hit.
func Search(corpus *Corpus, cfg *SearchConfig, query string) (string, error) {
	docs, err := corpus.Documents()
	if err != nil {
		return "", err
	}
	needle := []rune(query)
	var results []string
	for _, doc := range docs {
		for _, section := range strings.Split(doc.Content, cfg.Marker) {
			hay := []rune(section)
			idx := indexFold(hay, needle)
			if idx < 0 {
				continue
			}
			entry := section
			if cfg.Snippet {
				start := max(0, idx-snippetBefore)
				end := min(len(hay), idx+snippetAfter)
				entry = string(hay[start:end])
			}
			entry = truncateRunes(strings.TrimSpace(entry), cfg.MaxRunes)
			if cfg.Label {
				entry = fmt.Sprintf("[%s] %s", doc.Stem, entry)
			}
			results = append(results, entry)
		}
	}
	if len(results) == 0 {
		return fmt.Sprintf(cfg.NotFound, query), nil
	}
	if cfg.MaxResults > 0 && len(results) > cfg.MaxResults {
		results = results[:cfg.MaxResults]
	}
	return strings.Join(results, ResultSeparator), nil
}

func NewSearchTool(cfg SearchConfig, corpus *Corpus) tool.Tool {
	return tool.New(cfg.Name, cfg.Description, cfg.Argument, func(ctx context.Context, input string) (string, error) {
		logger.FromContext(ctx).Debug("knowledge search", "tool", cfg.Name, "query", input)
		return Search(corpus, &cfg, input)
	})
}
