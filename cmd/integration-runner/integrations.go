// Package main provides the integration-runner CLI application.
package main

import (
	"fmt"

	"github.com/comply-toolkit/integration-runner/pkg/config"
	"github.com/comply-toolkit/integration-runner/pkg/runner"
)

// loadConfig reads the config file named by --config, falling back to the
// default search order.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	return config.LoadDefault()
}

// selectIntegrations resolves the configured integrations into runner
// inputs, optionally narrowed to a single name.
func selectIntegrations(cfg *config.Config, name string) ([]runner.Integration, error) {
	var selected []runner.Integration
	for _, ic := range cfg.Integrations {
		if name != "" && ic.Name != name {
			continue
		}
		selected = append(selected, runner.Integration{
			Name:   ic.Name,
			Type:   ic.Type,
			Config: ic.Resolve(),
		})
	}
	if len(selected) == 0 {
		if name != "" {
			return nil, fmt.Errorf("no integration named %q in config", name)
		}
		return nil, fmt.Errorf("no integrations configured")
	}
	return selected, nil
}
