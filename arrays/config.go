// File: arrays/config.go
// Author: momentics <momentics@gmail.com>
//
// Facade configuration. All fields are immutable per run; runtime
// introspection goes through the control registry instead.

package arrays

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config holds parameters immutable per run.
type Config struct {
	// UsePool routes buffer storage through the size-classed pool.
	UsePool bool `yaml:"use_pool"`

	// MmapThresholdBytes maps buffers of at least this size anonymously
	// on platforms that support it. <= 0 disables mapping.
	MmapThresholdBytes int `yaml:"mmap_threshold_bytes"`

	// EnableMetrics registers allocator and pool probes on the control
	// registry.
	EnableMetrics bool `yaml:"enable_metrics"`

	// Debug enables development logging.
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() *Config {
	return &Config{
		UsePool:            true,
		MmapThresholdBytes: 4 * 1024 * 1024, // map buffers of 4 MiB and up
		EnableMetrics:      true,
		Debug:              false,
	}
}

// LoadConfig reads a YAML config file, applying defaults for absent
// fields.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(raw)
}

// ParseConfig decodes YAML config bytes over the defaults.
func ParseConfig(raw []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.MmapThresholdBytes < 0 {
		c.MmapThresholdBytes = 0
	}
	return nil
}
