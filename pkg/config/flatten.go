package config

import (
	"fmt"

	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Flatten returns every configuration key with its value. Sensitive values
// are masked.
func (c *Config) Flatten() (map[string]any, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(c, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to flatten config: %w", err)
	}
	out := k.All()
	for _, m := range GenerateEnvMappings() {
		if v, ok := out[m.ConfigPath]; ok && m.Sensitive {
			out[m.ConfigPath] = SensitiveString(fmt.Sprint(v)).String()
		}
	}
	return out, nil
}
