package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Validation error kinds. Callers match with errors.Is.
var (
	ErrNotFound      = errors.New("config file not found")
	ErrInvalidFormat = errors.New("config file is empty or not a YAML mapping")
	ErrMissingField  = errors.New("missing required config field")
	ErrTypeMismatch  = errors.New("config field has wrong type")
	ErrInvalidValue  = errors.New("invalid config value")
)

// Config holds the validated pipeline configuration.
type Config struct {
	Seed    int64
	Window  int
	Version string
}

// Load reads a YAML config file and validates the required fields.
// Unknown keys are ignored.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, ErrInvalidFormat
	}

	fields := map[string]*yaml.Node{}
	mapping := doc.Content[0]
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		fields[mapping.Content[i].Value] = mapping.Content[i+1]
	}

	cfg := &Config{}
	if err := decodeInt(fields, "seed", &cfg.Seed); err != nil {
		return nil, err
	}
	var window int64
	if err := decodeInt(fields, "window", &window); err != nil {
		return nil, err
	}
	cfg.Window = int(window)
	if err := decodeString(fields, "version", &cfg.Version); err != nil {
		return nil, err
	}

	if cfg.Window < 1 {
		return nil, fmt.Errorf("%w: 'window' must be >= 1", ErrInvalidValue)
	}
	return cfg, nil
}

func decodeInt(fields map[string]*yaml.Node, name string, dst *int64) error {
	node, ok := fields[name]
	if !ok {
		return fmt.Errorf("%w: '%s'", ErrMissingField, name)
	}
	if node.Kind != yaml.ScalarNode || node.Tag != "!!int" {
		return fmt.Errorf("%w: '%s' must be an integer", ErrTypeMismatch, name)
	}
	return node.Decode(dst)
}

func decodeString(fields map[string]*yaml.Node, name string, dst *string) error {
	node, ok := fields[name]
	if !ok {
		return fmt.Errorf("%w: '%s'", ErrMissingField, name)
	}
	if node.Kind != yaml.ScalarNode || node.Tag != "!!str" {
		return fmt.Errorf("%w: '%s' must be a string", ErrTypeMismatch, name)
	}
	return node.Decode(dst)
}
