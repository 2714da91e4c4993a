package config

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// WithOverrides returns a copy of h with the named fields replaced. Keys are
// the YAML field names (max_health, destroy_option, ...) and values are plain
// scalars as written in an arena file; unknown keys are ignored.
func (h HealthConfig) WithOverrides(props map[string]string) (HealthConfig, error) {
	if len(props) == 0 {
		return h, nil
	}

	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range keys {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Value: props[k]},
		)
	}

	out := h
	if err := node.Decode(&out); err != nil {
		return h, fmt.Errorf("health overrides: %w", err)
	}
	if out.MaxHealth < out.MinHealth {
		return h, fmt.Errorf("health overrides: max_health %v is below min_health %v", out.MaxHealth, out.MinHealth)
	}
	return out, nil
}
