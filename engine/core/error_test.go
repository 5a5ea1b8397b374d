package core

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	t.Run("Should unwrap to the cause", func(t *testing.T) {
		err := NewError(fs.ErrNotExist, CodeConfigNotFound, map[string]any{"path": "agents.yaml"})
		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.Equal(t, fs.ErrNotExist.Error(), err.Error())
	})

	t.Run("Should match by code through wrapping", func(t *testing.T) {
		err := fmt.Errorf("loading: %w", Errorf(CodeUnknownAgent, "agent %q not defined", "ghost"))
		assert.True(t, HasCode(err, CodeUnknownAgent))
		assert.False(t, HasCode(err, CodeUnknownTask))
		assert.ErrorIs(t, err, &Error{Code: CodeUnknownAgent})
		assert.Contains(t, err.Error(), `agent "ghost" not defined`)
	})

	t.Run("Should report code when message is empty", func(t *testing.T) {
		err := NewError(nil, CodeInternalTest, nil)
		assert.Equal(t, CodeInternalTest, err.Error())
		assert.False(t, HasCode(errors.New("plain"), CodeInternalTest))
	})
}

const CodeInternalTest = "InternalTest"
