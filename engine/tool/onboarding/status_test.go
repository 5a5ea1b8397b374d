package onboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentdesk/agentdesk/engine/tool/record"
)

const fixture = `
engineering:
  pre_boarding: 3
  week_1: 1
  week_2_4: 2
  month_2_3: 1
  completed: 15
  overdue_items:
    - "EMP-001: tax forms due in 5 days"
marketing:
  pre_boarding: 1
  week_1: 2
  week_2_4: 0
  month_2_3: 1
  completed: 8
  overdue_items: []
human resources:
  pre_boarding: 1
  week_1: 0
  week_2_4: 0
  month_2_3: 0
  completed: 4
  overdue_items:
    - "EMP-005: ID verification due in 3 days"
`

func departments(t *testing.T) []Department {
	t.Helper()
	entries, err := record.ParseTable([]byte(fixture))
	require.NoError(t, err)
	deps, err := Departments(entries)
	require.NoError(t, err)
	return deps
}

func TestStatus(t *testing.T) {
	deps := departments(t)

	t.Run("Should render a single department", func(t *testing.T) {
		want := "=== Marketing Onboarding Status ===\n\n" +
			"Pre-boarding: 1\nWeek 1 (Orientation): 2\nWeek 2-4 (Ramp-up): 0\n" +
			"Month 2-3 (Integration): 1\nCompleted: 8\n\n✓ No overdue items"
		assert.Equal(t, want, Status(deps, "Marketing"))
	})

	t.Run("Should list overdue items", func(t *testing.T) {
		out := Status(deps, "human resources")
		assert.Contains(t, out, "=== Human Resources Onboarding Status ===")
		assert.Contains(t, out, "⚠ Overdue Items:\n  - EMP-005: ID verification due in 3 days")
	})

	t.Run("Should aggregate every department", func(t *testing.T) {
		out := Status(deps, " ALL ")
		assert.Contains(t, out, "=== Company-Wide Onboarding Status ===")
		assert.Contains(t, out, "Pre-boarding: 5\n")
		assert.Contains(t, out, "Completed: 27\n")
		assert.Contains(t, out, "  - EMP-001: tax forms due in 5 days\n  - EMP-005: ID verification due in 3 days")
	})

	t.Run("Should list departments in declared order when unknown", func(t *testing.T) {
		assert.Equal(t,
			"Department not found: legal. Available: engineering, marketing, human resources, all",
			Status(deps, "legal"))
	})
}
