package shell

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls console presentation. It never affects verdicts: the
// step budget of the machine simulator is fixed and not configurable.
type Config struct {
	// TraceSteps is how many simulation steps the console prints per
	// test before eliding the rest.
	TraceSteps int `yaml:"trace_steps"`
	// Color toggles ANSI styling of verdict lines.
	Color bool `yaml:"color"`
}

func DefaultConfig() Config {
	return Config{TraceSteps: 10, Color: true}
}

// LoadConfig reads a YAML config from path. A missing file is not an
// error: the defaults come back unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.TraceSteps < 0 {
		return fmt.Errorf("trace_steps must not be negative, got %d", c.TraceSteps)
	}
	return nil
}
