package rlayout

import (
	"crypto/sha256"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config specifies the layout engine's configurable knobs. It supports YAML
// parsing and validation, the way the teacher's dungeon Config does.
type Config struct {
	// TextMetrics selects the font-metrics oracle. Only "stub" is built in;
	// an embedding application supplies a real oracle programmatically as
	// Compute's tm argument rather than through this field, so the field exists
	// to make the choice explicit and reproducible in a saved config.
	TextMetrics string `yaml:"textMetrics" json:"textMetrics"`
}

// DefaultConfig returns the engine's default configuration.
func DefaultConfig() Config {
	return Config{TextMetrics: "stub"}
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses and validates YAML configuration from bytes.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration's constraints.
func (c *Config) Validate() error {
	if c.TextMetrics != "stub" {
		return fmt.Errorf("textMetrics: unsupported oracle %q, only \"stub\" is built in", c.TextMetrics)
	}
	return nil
}

// ToYAML serializes the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Hash computes a deterministic hash of the configuration, so two
// identically configured runs can be confirmed to have used the same
// parameters.
func (c *Config) Hash() []byte {
	data, err := c.ToYAML()
	if err != nil {
		h := sha256.New()
		h.Write([]byte(c.TextMetrics))
		return h.Sum(nil)
	}
	h := sha256.New()
	h.Write(data)
	return h.Sum(nil)
}
