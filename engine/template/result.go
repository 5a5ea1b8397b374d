package template

import (
	"fmt"

	"github.com/agentdesk/agentdesk/engine/category"
	"github.com/agentdesk/agentdesk/engine/core"
)

// Result is the outcome of one routed request. Its category always
// belongs to the template that produced it.
type Result struct {
	query    string
	category category.Category
	response string
}

// NewResult rejects categories outside set.
func NewResult(set category.Set, query string, c category.Category, response string) (*Result, error) {
	if !set.Contains(c) {
		err := fmt.Errorf("category %q is not one of [%s]", c, set)
		return nil, core.NewError(err, core.CodeInvalidCategory, map[string]any{"category": string(c)})
	}
	return &Result{query: query, category: c, response: response}, nil
}

func (r *Result) Query() string {
	return r.query
}

func (r *Result) Category() category.Category {
	return r.category
}

func (r *Result) Response() string {
	return r.response
}
