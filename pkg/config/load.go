package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/comply-toolkit/integration-runner/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the project-local configuration file.
const DefaultFileName = ".integrations.yaml"

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("reading %s", path), err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("parsing %s", path), err)
	}

	applyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault looks for the project config in the working directory, then
// for the global config under the home directory.
func LoadDefault() (*Config, error) {
	if _, err := os.Stat(DefaultFileName); err == nil {
		return Load(DefaultFileName)
	}

	home, err := os.UserHomeDir()
	if err == nil {
		global := filepath.Join(home, ".integration-runner", "config.yaml")
		if _, err := os.Stat(global); err == nil {
			return Load(global)
		}
	}

	return nil, errors.ConfigError("no configuration file found", nil)
}

func applyDefaults(cfg *Config) {
	if cfg.Global.LogLevel == "" {
		cfg.Global.LogLevel = "info"
	}
	if cfg.Global.MaxConcurrentSyncs <= 0 {
		cfg.Global.MaxConcurrentSyncs = 4
	}
}
