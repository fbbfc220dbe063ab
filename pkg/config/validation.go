package config

import (
	"fmt"

	"github.com/comply-toolkit/integration-runner/pkg/connector"
	"github.com/comply-toolkit/integration-runner/pkg/errors"
	"github.com/comply-toolkit/integration-runner/pkg/ssrf"
)

// Validate checks the configuration for structural problems. Base URLs go
// through the SSRF gatekeeper here so a bad integration fails at load time
// instead of on its first sync; the gateway re-validates on every client
// anyway.
func (c *Config) Validate() error {
	seen := make(map[string]struct{}, len(c.Integrations))

	for i, ic := range c.Integrations {
		if ic.Name == "" {
			return errors.ValidationError(fmt.Sprintf("integration %d has no name", i), nil)
		}
		if _, dup := seen[ic.Name]; dup {
			return errors.ValidationError(fmt.Sprintf("duplicate integration name %q", ic.Name), nil)
		}
		seen[ic.Name] = struct{}{}

		if ic.Type == "" {
			return errors.ValidationError(fmt.Sprintf("integration %q has no type", ic.Name), nil)
		}
		if _, ok := connector.Get(ic.Type); !ok {
			return errors.ValidationError(
				fmt.Sprintf("integration %q has unknown type %q (known: %v)", ic.Name, ic.Type, connector.List()), nil)
		}

		if ic.BaseURL == "" {
			return errors.ValidationError(fmt.Sprintf("integration %q has no base_url", ic.Name), nil)
		}
		if err := ssrf.ValidateBaseURL(ic.BaseURL); err != nil {
			return errors.ValidationError(fmt.Sprintf("integration %q base_url rejected", ic.Name), err)
		}

		if ic.TimeoutMS < 0 {
			return errors.ValidationError(fmt.Sprintf("integration %q has negative timeout_ms", ic.Name), nil)
		}
	}

	switch c.Global.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.ValidationError(fmt.Sprintf("invalid log_level %q", c.Global.LogLevel), nil)
	}

	return nil
}
