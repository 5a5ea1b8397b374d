package helpers

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentdesk/agentdesk/engine/category"
	"github.com/agentdesk/agentdesk/engine/template"
)

type echoHandler struct {
	queries []string
	err     error
}

var echoSet = category.NewSet("general")

func (h *echoHandler) Handle(_ context.Context, query string) (*template.Result, error) {
	h.queries = append(h.queries, query)
	if h.err != nil {
		return nil, h.err
	}
	return template.NewResult(echoSet, query, "general", "answer to "+query)
}

func (h *echoHandler) Classify(_ context.Context, query string) (category.Category, error) {
	h.queries = append(h.queries, query)
	return "general", h.err
}

func TestSession_Process(t *testing.T) {
	t.Run("Should print category and response", func(t *testing.T) {
		var out bytes.Buffer
		s := NewSession(&echoHandler{}, &out, false)
		require.NoError(t, s.Process(t.Context(), "hello"))
		text := out.String()
		assert.Contains(t, text, "\nProcessing: hello\n"+strings.Repeat("-", 40)+"\n")
		assert.Contains(t, text, "Category: general\n")
		assert.Contains(t, text, "\nResponse:\nanswer to hello\n")
	})

	t.Run("Should print only the category in classify-only mode", func(t *testing.T) {
		var out bytes.Buffer
		s := NewSession(&echoHandler{}, &out, true)
		require.NoError(t, s.Process(t.Context(), "hello"))
		assert.Contains(t, out.String(), "Category: general\n")
		assert.NotContains(t, out.String(), "Response:")
	})

	t.Run("Should propagate handler errors", func(t *testing.T) {
		boom := errors.New("model unavailable")
		s := NewSession(&echoHandler{err: boom}, &bytes.Buffer{}, false)
		assert.ErrorIs(t, s.Process(t.Context(), "hello"), boom)
	})
}

func TestSession_Batch(t *testing.T) {
	t.Run("Should skip blank and comment lines but keep their numbering", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fsys, "requests.txt", []byte("first\n\n# note\nsecond\n"), 0o644))
		h := &echoHandler{}
		var out bytes.Buffer
		require.NoError(t, NewSession(h, &out, false).Batch(t.Context(), fsys, "requests.txt"))
		assert.Equal(t, []string{"first", "second"}, h.queries)
		assert.Contains(t, out.String(), "Request 1/4\n")
		assert.Contains(t, out.String(), "Request 4/4\n")
		assert.NotContains(t, out.String(), "Request 2/4")
	})

	t.Run("Should report a missing file", func(t *testing.T) {
		err := NewSession(&echoHandler{}, &bytes.Buffer{}, false).Batch(t.Context(), afero.NewMemMapFs(), "missing.txt")
		require.Error(t, err)
		assert.True(t, IsCode(err, CodeFileNotFound))
		assert.Equal(t, "File not found: missing.txt", err.Error())
	})
}

func TestSession_REPL(t *testing.T) {
	t.Run("Should process lines until a quit word", func(t *testing.T) {
		h := &echoHandler{}
		var out bytes.Buffer
		in := strings.NewReader("first\n\nsecond\nQUIT\nignored\n")
		require.NoError(t, NewSession(h, &out, false).REPL(t.Context(), in, "AI IT Helpdesk", "Employee"))
		assert.Equal(t, []string{"first", "second"}, h.queries)
		text := out.String()
		assert.True(t, strings.HasPrefix(text, strings.Repeat("=", 60)+"\n  AI IT Helpdesk\n"))
		assert.Contains(t, text, "Employee > ")
		assert.True(t, strings.HasSuffix(text, "Goodbye!\n"))
	})

	t.Run("Should stop at end of input", func(t *testing.T) {
		h := &echoHandler{}
		var out bytes.Buffer
		require.NoError(t, NewSession(h, &out, false).REPL(t.Context(), strings.NewReader("only"), "T", "P"))
		assert.Equal(t, []string{"only"}, h.queries)
		assert.Contains(t, out.String(), "Goodbye!")
	})
}
