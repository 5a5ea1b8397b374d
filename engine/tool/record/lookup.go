package record

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/agentdesk/agentdesk/engine/tool"
	"github.com/agentdesk/agentdesk/pkg/logger"
)

// LookupConfig describes one keyed lookup tool.
type LookupConfig struct {
	Name        string
	Description string
	Argument    string
	// Entity and Plural appear in the not-found message, e.g. "Order" and "orders".
	Entity string
	Plural string
	Key    KeyFunc
}

// NewLookupTool returns a tool rendering the record stored under the normalized input.
func NewLookupTool(cfg LookupConfig, repo Repository) tool.Tool {
	keyFn := cfg.Key
	if keyFn == nil {
		keyFn = UpperKey
	}
	return tool.New(cfg.Name, cfg.Description, cfg.Argument, func(ctx context.Context, input string) (string, error) {
		key := keyFn(input)
		if key != "" {
			rec, err := repo.Lookup(ctx, key)
			if err == nil {
				return Render(rec), nil
			}
			if !errors.Is(err, ErrNotFound) {
				return "", err
			}
		}
		logger.FromContext(ctx).Debug("record lookup miss", "tool", cfg.Name, "key", key)
		keys, err := repo.Keys(ctx)
		if err != nil {
			return "", err
		}
		return NotFoundMessage(cfg.Entity, cfg.Plural, input, keys), nil
	})
}

// NotFoundMessage lists every valid key in sorted order.
func NotFoundMessage(entity, plural, input string, keys []string) string {
	sorted := make([]string, len(keys))
	copy(sorted, keys)
	sort.Strings(sorted)
	return fmt.Sprintf("%s not found: %s. Available %s: %s", entity, strings.TrimSpace(input), plural, strings.Join(sorted, ", "))
}
