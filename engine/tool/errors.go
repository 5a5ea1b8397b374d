package tool

import (
	"fmt"

	"github.com/agentdesk/agentdesk/engine/core"
)

// InvalidArgument wraps validation failures with the canonical error code.
func InvalidArgument(err error, details map[string]any) *core.Error {
	return core.NewError(err, core.CodeInvalidArgument, details)
}

// NotFound reports a tool name missing from a registry.
func NotFound(name string) *core.Error {
	return core.NewError(fmt.Errorf("tool %q is not registered", name), core.CodeToolNotFound, map[string]any{
		"tool": name,
	})
}
