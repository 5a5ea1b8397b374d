// Package subsidy matches companies to public subsidies and drafts, scores,
// and summarizes grant applications.
package subsidy

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/agentdesk/agentdesk/engine/core"
	"github.com/agentdesk/agentdesk/engine/tool"
)

const (
	CatalogFile = "subsidies.yaml"
	maxResults  = 5
	missing     = "N/A"
	separator   = "\n---\n"
)

// Subsidy is one entry of the subsidy knowledge base.
type Subsidy struct {
	Name            string   `yaml:"name"             validate:"required"`
	ShortName       string   `yaml:"short_name"`
	MaxAmount       string   `yaml:"max_amount"       validate:"required"`
	SubsidyRate     string   `yaml:"subsidy_rate"     validate:"required"`
	AcceptanceRate  string   `yaml:"acceptance_rate"`
	Target          string   `yaml:"target"           validate:"required"`
	Purpose         string   `yaml:"purpose"          validate:"required"`
	Requirements    []string `yaml:"requirements"     validate:"required,min=1"`
	ScoringCriteria []string `yaml:"scoring_criteria"`
	Tips            []string `yaml:"tips"`
}

// DisplayName prefers the short name.
func (s *Subsidy) DisplayName() string {
	if s.ShortName != "" {
		return s.ShortName
	}
	return s.Name
}

func (s *Subsidy) searchable() string {
	return strings.ToLower(strings.Join([]string{
		s.Name,
		s.Purpose,
		s.Target,
		strings.Join(s.Requirements, " "),
		strings.Join(s.Tips, " "),
	}, " "))
}

// Catalog reads the subsidy knowledge base. The file is re-read on every call.
type Catalog struct {
	fs   afero.Fs
	path string
}

func NewCatalog(fsys afero.Fs, path string) *Catalog {
	return &Catalog{fs: fsys, path: path}
}

func (c *Catalog) Subsidies() ([]Subsidy, error) {
	data, err := afero.ReadFile(c.fs, c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, core.NewError(
			fmt.Errorf("subsidy catalog %s not found: %w", c.path, err),
			core.CodeConfigNotFound,
			map[string]any{"path": c.path},
		)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", c.path, err)
	}
	var doc struct {
		Subsidies []Subsidy `yaml:"subsidies"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, core.NewError(fmt.Errorf("failed to decode %s: %w", c.path, err), core.CodeInvalidConfig, nil)
	}
	v := validator.New()
	seen := make(map[string]struct{}, len(doc.Subsidies))
	for i := range doc.Subsidies {
		s := &doc.Subsidies[i]
		if err := v.Struct(s); err != nil {
			return nil, core.NewError(fmt.Errorf("subsidy %d (%s): %w", i, s.Name, err), core.CodeInvalidConfig, nil)
		}
		if _, dup := seen[s.Name]; dup {
			return nil, core.Errorf(core.CodeInvalidConfig, "duplicate subsidy %q", s.Name)
		}
		seen[s.Name] = struct{}{}
	}
	return doc.Subsidies, nil
}

// Search returns up to five subsidies whose text contains any
// whitespace-separated word of query.
func Search(subsidies []Subsidy, query string) string {
	words := strings.Fields(strings.ToLower(query))
	var results []string
	for i := range subsidies {
		s := &subsidies[i]
		text := s.searchable()
		for _, w := range words {
			if strings.Contains(text, w) {
				results = append(results, formatEntry(s))
				break
			}
		}
	}
	if len(results) == 0 {
		return fmt.Sprintf("該当する補助金が見つかりませんでした: %s", query)
	}
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return strings.Join(results, separator)
}

// List renders every subsidy as a markdown table row.
func List(subsidies []Subsidy) string {
	lines := []string{
		"| 補助金名 | 補助上限額 | 補助率 | 採択率 |",
		"|---------|----------|-------|--------|",
	}
	for i := range subsidies {
		s := &subsidies[i]
		lines = append(lines, fmt.Sprintf("| %s | %s | %s | %s |",
			s.DisplayName(), orMissing(s.MaxAmount), orMissing(s.SubsidyRate), orMissing(s.AcceptanceRate)))
	}
	return strings.Join(lines, "\n")
}

func formatEntry(s *Subsidy) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n", s.Name)
	fmt.Fprintf(&b, "- 補助上限: %s\n", orMissing(s.MaxAmount))
	fmt.Fprintf(&b, "- 補助率: %s\n", orMissing(s.SubsidyRate))
	fmt.Fprintf(&b, "- 採択率: %s\n", orMissing(s.AcceptanceRate))
	fmt.Fprintf(&b, "- 対象: %s\n", orMissing(s.Target))
	fmt.Fprintf(&b, "- 目的: %s\n", orMissing(s.Purpose))
	fmt.Fprintf(&b, "- 要件: %s\n", strings.Join(s.Requirements, ", "))
	if len(s.ScoringCriteria) > 0 {
		fmt.Fprintf(&b, "- 審査基準: %s\n", strings.Join(s.ScoringCriteria, ", "))
	}
	if len(s.Tips) > 0 {
		fmt.Fprintf(&b, "- Tips: %s\n", strings.Join(s.Tips, ", "))
	}
	return b.String()
}

func orMissing(v string) string {
	if v == "" {
		return missing
	}
	return v
}

func NewSearchTool(c *Catalog) tool.Tool {
	return tool.New(
		"search_subsidies",
		"Search the subsidy knowledge base by industry, company size, challenge, or investment plan.",
		"query",
		func(_ context.Context, input string) (string, error) {
			subsidies, err := c.Subsidies()
			if err != nil {
				return "", err
			}
			return Search(subsidies, input), nil
		},
	)
}

func NewListTool(c *Catalog) tool.Tool {
	return tool.New(
		"list_all_subsidies",
		"List every subsidy with its maximum amount, subsidy rate, and acceptance rate.",
		"",
		func(context.Context, string) (string, error) {
			subsidies, err := c.Subsidies()
			if err != nil {
				return "", err
			}
			return List(subsidies), nil
		},
	)
}
