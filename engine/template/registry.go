package template

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agentdesk/agentdesk/engine/core"
)

var builtins = []*Template{
	ContentMarketing(),
	CustomerSupport(),
	DataPipeline(),
	Ecommerce(),
	HROnboarding(),
	ITHelpdesk(),
	Legal(),
	Sales(),
}

// Registry indexes templates by name.
type Registry struct {
	templates map[string]*Template
}

// NewRegistry returns a registry of the given templates, or of every
// built-in template when none are given.
func NewRegistry(templates ...*Template) *Registry {
	if len(templates) == 0 {
		templates = builtins
	}
	r := &Registry{templates: make(map[string]*Template, len(templates))}
	for _, t := range templates {
		r.templates[t.Name] = t
	}
	return r
}

func (r *Registry) Get(name string) (*Template, error) {
	t, ok := r.templates[name]
	if !ok {
		err := fmt.Errorf("unknown template %q; available: %s", name, strings.Join(r.Names(), ", "))
		return nil, core.NewError(err, core.CodeUnknownTemplate, map[string]any{"template": name})
	}
	return t, nil
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.templates))
	for n := range r.templates {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// All returns the templates sorted by name.
func (r *Registry) All() []*Template {
	out := make([]*Template, 0, len(r.templates))
	for _, n := range r.Names() {
		out = append(out, r.templates[n])
	}
	return out
}
