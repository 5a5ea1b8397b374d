// Package onboarding reports the new-hire funnel per department.
package onboarding

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentdesk/agentdesk/engine/tool"
	"github.com/agentdesk/agentdesk/engine/tool/record"
)

// AllDepartments selects the company-wide aggregate.
const AllDepartments = "all"

// Funnel is one department's onboarding pipeline.
type Funnel struct {
	PreBoarding  int
	Week1        int
	Week2To4     int
	Month2To3    int
	Completed    int
	OverdueItems []string
}

func (f *Funnel) add(other *Funnel) {
	f.PreBoarding += other.PreBoarding
	f.Week1 += other.Week1
	f.Week2To4 += other.Week2To4
	f.Month2To3 += other.Month2To3
	f.Completed += other.Completed
	f.OverdueItems = append(f.OverdueItems, other.OverdueItems...)
}

// Department pairs a lowercase department key with its funnel.
type Department struct {
	Key    string
	Funnel Funnel
}

// Departments decodes department records, keeping their order.
func Departments(entries []record.Entry) ([]Department, error) {
	out := make([]Department, 0, len(entries))
	for _, e := range entries {
		f, err := funnelFrom(e.Record)
		if err != nil {
			return nil, fmt.Errorf("department %s: %w", e.Key, err)
		}
		out = append(out, Department{Key: strings.ToLower(e.Key), Funnel: f})
	}
	return out, nil
}

// Status renders the funnel for department, or the aggregate for "all".
func Status(departments []Department, department string) string {
	key := strings.ToLower(strings.TrimSpace(department))
	if key == AllDepartments {
		var total Funnel
		for i := range departments {
			total.add(&departments[i].Funnel)
		}
		return render("=== Company-Wide Onboarding Status ===", &total)
	}
	for i := range departments {
		if departments[i].Key == key {
			title := cases.Title(language.Und).String(strings.TrimSpace(department))
			return render(fmt.Sprintf("=== %s Onboarding Status ===", title), &departments[i].Funnel)
		}
	}
	available := make([]string, 0, len(departments)+1)
	for _, d := range departments {
		available = append(available, d.Key)
	}
	available = append(available, AllDepartments)
	return fmt.Sprintf("Department not found: %s. Available: %s", department, strings.Join(available, ", "))
}

func NewStatusTool(name, description string, departments []Department) tool.Tool {
	return tool.New(name, description, "department", func(_ context.Context, input string) (string, error) {
		return Status(departments, input), nil
	})
}

func render(header string, f *Funnel) string {
	lines := []string{
		header,
		"",
		fmt.Sprintf("Pre-boarding: %d", f.PreBoarding),
		fmt.Sprintf("Week 1 (Orientation): %d", f.Week1),
		fmt.Sprintf("Week 2-4 (Ramp-up): %d", f.Week2To4),
		fmt.Sprintf("Month 2-3 (Integration): %d", f.Month2To3),
		fmt.Sprintf("Completed: %d", f.Completed),
		"",
	}
	if len(f.OverdueItems) == 0 {
		lines = append(lines, "✓ No overdue items")
		return strings.Join(lines, "\n")
	}
	lines = append(lines, "⚠ Overdue Items:")
	for _, item := range f.OverdueItems {
		lines = append(lines, "  - "+item)
	}
	return strings.Join(lines, "\n")
}

func funnelFrom(r record.Record) (Funnel, error) {
	var f Funnel
	counts := map[string]*int{
		"pre_boarding": &f.PreBoarding,
		"week_1":       &f.Week1,
		"week_2_4":     &f.Week2To4,
		"month_2_3":    &f.Month2To3,
		"completed":    &f.Completed,
	}
	for key, dst := range counts {
		v, ok := r.Get(key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(record.FormatValue(v))
		if err != nil {
			return Funnel{}, fmt.Errorf("field %s: %w", key, err)
		}
		*dst = n
	}
	if items, ok := r.Get("overdue_items"); ok {
		list, isList := items.([]any)
		if !isList && items != nil {
			return Funnel{}, fmt.Errorf("field overdue_items is not a list")
		}
		for _, item := range list {
			f.OverdueItems = append(f.OverdueItems, record.FormatValue(item))
		}
	}
	return f, nil
}
