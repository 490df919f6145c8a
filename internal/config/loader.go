package config

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed roster.yaml
var defaultRoster []byte

// Default returns the fixed line-up every battle starts from.
func Default() (*RosterConfig, error) {
	return Parse(defaultRoster)
}

// Parse decodes and validates a roster document.
func Parse(b []byte) (*RosterConfig, error) {
	var rc RosterConfig
	if err := yaml.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse roster: %w", err)
	}
	if err := rc.validate(); err != nil {
		return nil, err
	}
	return &rc, nil
}

func (rc *RosterConfig) validate() error {
	if strings.TrimSpace(rc.Boss.Name) == "" {
		return fmt.Errorf("roster: boss is missing 'name'")
	}
	if rc.Boss.Health <= 0 {
		return fmt.Errorf("roster: boss '%s' needs positive health, got %d", rc.Boss.Name, rc.Boss.Health)
	}
	if len(rc.Heroes) == 0 {
		return fmt.Errorf("roster: heroes list is empty")
	}
	seen := make(map[string]struct{}, len(rc.Heroes))
	for i, h := range rc.Heroes {
		if strings.TrimSpace(h.Name) == "" {
			return fmt.Errorf("roster: hero #%d is missing 'name'", i+1)
		}
		if !knownClasses[h.Class] {
			return fmt.Errorf("roster: hero '%s' has unknown class '%s'", h.Name, h.Class)
		}
		key := strings.ToLower(h.Name)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("roster: duplicate hero name '%s'", h.Name)
		}
		seen[key] = struct{}{}
	}
	return nil
}
