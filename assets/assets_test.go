package assets

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates(t *testing.T) {
	t.Run("Should expose every template directory at the root", func(t *testing.T) {
		fsys := Templates()
		for _, name := range []string{
			"content-marketing", "customer-support", "data-pipeline", "ecommerce",
			"hr-onboarding", "it-helpdesk", "legal", "sales", "subsidy",
		} {
			for _, file := range []string{"agents.yaml", "tasks.yaml"} {
				ok, err := afero.Exists(fsys, name+"/"+file)
				require.NoError(t, err)
				assert.True(t, ok, "%s/%s", name, file)
			}
		}
	})
}
