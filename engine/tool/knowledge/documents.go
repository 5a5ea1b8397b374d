package knowledge

import (
	"context"
	"fmt"
	"strings"

	"github.com/agentdesk/agentdesk/engine/tool"
)

const compareBudget = 1000

// Headings lists the markdown heading lines of the first document whose
// stem contains name, ignoring case.
func Headings(corpus *Corpus, name string) (string, error) {
	docs, err := corpus.Documents()
	if err != nil {
		return "", err
	}
	needle := strings.ToLower(name)
	for _, doc := range docs {
		if !strings.Contains(strings.ToLower(doc.Stem), needle) {
			continue
		}
		var headings []string
		for _, line := range strings.Split(doc.Content, "\n") {
			if strings.HasPrefix(line, "#") {
				headings = append(headings, strings.TrimSpace(line))
			}
		}
		if len(headings) == 0 {
			return fmt.Sprintf("No section headings found in %s", doc.Stem), nil
		}
		return fmt.Sprintf("Document: %s\n\n%s", doc.Stem, strings.Join(headings, "\n")), nil
	}
	stems := make([]string, len(docs))
	for i, doc := range docs {
		stems[i] = doc.Stem
	}
	available := "none"
	if len(stems) > 0 {
		available = strings.Join(stems, ", ")
	}
	return fmt.Sprintf("Document not found: %s. Available documents: %s", name, available), nil
}

// CompareSections collects, across all documents, every section whose
// heading line contains title.
func CompareSections(corpus *Corpus, marker, title string) (string, error) {
	docs, err := corpus.Documents()
	if err != nil {
		return "", err
	}
	needle := strings.ToLower(title)
	var results []string
	for _, doc := range docs {
		for _, section := range strings.Split(doc.Content, marker) {
			firstLine, _, _ := strings.Cut(section, "\n")
			if !strings.Contains(strings.ToLower(strings.TrimSpace(firstLine)), needle) {
				continue
			}
			entry := truncateRunes(strings.TrimSpace(section), compareBudget)
			results = append(results, fmt.Sprintf("### [%s]\n%s", doc.Stem, entry))
		}
	}
	if len(results) == 0 {
		return fmt.Sprintf("No sections titled '%s' found across documents.", title), nil
	}
	return strings.Join(results, ResultSeparator), nil
}

func NewHeadingsTool(name, description string, corpus *Corpus) tool.Tool {
	return tool.New(name, description, "document_name", func(_ context.Context, input string) (string, error) {
		return Headings(corpus, input)
	})
}

func NewCompareTool(name, description, marker string, corpus *Corpus) tool.Tool {
	return tool.New(name, description, "section_title", func(_ context.Context, input string) (string, error) {
		return CompareSections(corpus, marker, input)
	})
}
