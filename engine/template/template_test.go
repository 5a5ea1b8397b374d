package template

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentdesk/agentdesk/engine/category"
	"github.com/agentdesk/agentdesk/engine/core"
)

func TestNewResult(t *testing.T) {
	set := ITHelpdesk().Categories()

	t.Run("Should accept a category of the set", func(t *testing.T) {
		res, err := NewResult(set, "q", NetworkIssue, "answer")
		require.NoError(t, err)
		assert.Equal(t, NetworkIssue, res.Category())
	})

	t.Run("Should reject a category outside the set", func(t *testing.T) {
		_, err := NewResult(set, "q", category.Category("invalid_category"), "answer")
		require.Error(t, err)
		assert.True(t, core.HasCode(err, core.CodeInvalidCategory))
	})
}

func TestRegistry(t *testing.T) {
	t.Run("Should list built-in templates sorted by name", func(t *testing.T) {
		names := NewRegistry().Names()
		assert.Equal(t, []string{
			"content-marketing", "customer-support", "data-pipeline", "ecommerce",
			"hr-onboarding", "it-helpdesk", "legal", "sales",
		}, names)
	})

	t.Run("Should reject unknown templates", func(t *testing.T) {
		_, err := NewRegistry().Get("payroll")
		require.Error(t, err)
		assert.True(t, core.HasCode(err, core.CodeUnknownTemplate))
		assert.Contains(t, err.Error(), "it-helpdesk")
	})
}

func TestTemplate_Validate(t *testing.T) {
	t.Run("Should reject a category without a route", func(t *testing.T) {
		tpl := Legal()
		delete(tpl.Routes, Comparison)
		assert.ErrorContains(t, tpl.Validate(nil), "comparison has no route")
	})
}

func TestLoader(t *testing.T) {
	t.Run("Should report a missing agents file as config not found", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fsys, "demo/tasks.yaml", []byte("t:\n  description: d\n  expected_output: o\n"), 0o644))
		loader := NewLoader(fsys, ".")

		_, err := loader.Agents("demo")
		require.Error(t, err)
		assert.True(t, core.HasCode(err, core.CodeConfigNotFound))

		tasks, err := loader.Tasks("demo")
		require.NoError(t, err)
		assert.Contains(t, tasks, "t")
	})

	t.Run("Should list record tables", func(t *testing.T) {
		tables, err := testLoader().Tables("hr-onboarding")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"departments", "employees"}, tables)
	})
}

func TestSeed(t *testing.T) {
	t.Run("Should serve lookups from redis after seeding", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = client.Close() })
		loader := testLoader()

		n, err := Seed(t.Context(), loader, client, "test:", "ecommerce")
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.True(t, mr.Exists("test:records:ecommerce:orders"))

		p := NewPipeline(Ecommerce(), nil, &fakeRunner{}, loader, WithRecords(NewRedisSource(client, "test:")))
		registry, err := p.Tools(t.Context())
		require.NoError(t, err)
		lookup, err := registry.Get("lookup_order")
		require.NoError(t, err)
		out, err := lookup.Call(t.Context(), "ORD-12345")
		require.NoError(t, err)
		assert.Contains(t, out, "FedEx")
	})
}
