package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseConfigYAML parses a Config from YAML bytes and validates it.
// Missing keys keep their defaults.
func ParseConfigYAML(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config yaml: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// ParseSpecYAML parses an experiment Spec from YAML bytes and validates it.
// Missing keys keep the scheduling-instance defaults, so an empty document yields the
// default experiment. This is used for APIs where the spec is provided as
// payload (not via filesystem).
func ParseSpecYAML(data []byte) (*Spec, error) {
	spec := DefaultSpec()
	if err := yaml.Unmarshal(data, spec); err != nil {
		return nil, fmt.Errorf("failed to parse spec yaml: %w", err)
	}

	if err := validateSpec(spec); err != nil {
		return nil, fmt.Errorf("invalid spec: %w", err)
	}

	return spec, nil
}

// ParseSpecYAMLString parses a Spec from a YAML string and validates it.
func ParseSpecYAMLString(yamlText string) (*Spec, error) {
	return ParseSpecYAML([]byte(yamlText))
}

// MarshalSpecYAML serializes a Spec back to YAML
func MarshalSpecYAML(spec *Spec) (string, error) {
	data, err := yaml.Marshal(spec)
	if err != nil {
		return "", fmt.Errorf("failed to marshal spec: %w", err)
	}
	return string(data), nil
}
