// Package config provides configuration management for the integration runner.
//
// Configuration Loading Order (later overrides earlier):
// 1. Defaults (hardcoded)
// 2. Global Config: $HOME/.integration-runner/config.yaml
// 3. Project Config: ./.integrations.yaml
//
// Credentials are never stored in the file; every secret field is an
// environment variable name resolved at use time (token_env pattern).
package config

import (
	"os"

	"github.com/comply-toolkit/integration-runner/pkg/connector"
)

// Config represents the complete runner configuration.
type Config struct {
	Global       GlobalConfig        `yaml:"global"`
	Integrations []IntegrationConfig `yaml:"integrations"`
}

// GlobalConfig contains global runner settings.
type GlobalConfig struct {
	LogLevel           string `yaml:"log_level"`            // debug, info, warn, error
	MaxConcurrentSyncs int    `yaml:"max_concurrent_syncs"` // sync fan-out bound
}

// IntegrationConfig describes one configured integration.
type IntegrationConfig struct {
	Name         string `yaml:"name"`          // unique label chosen by the administrator
	Type         string `yaml:"type"`          // connector type (snipeit, jamf, okta, vaultwarden)
	BaseURL      string `yaml:"base_url"`      // administrator-supplied target; SSRF-validated
	APIKeyEnv    string `yaml:"api_key_env"`   // e.g. "SNIPEIT_API_KEY"
	TokenEnv     string `yaml:"token_env"`     // e.g. "OKTA_API_TOKEN"
	Username     string `yaml:"username"`      // for basic-auth connectors
	PasswordEnv  string `yaml:"password_env"`  // e.g. "JAMF_PASSWORD"
	Organization string `yaml:"organization"`  // tenant/organization identifier
	TimeoutMS    int    `yaml:"timeout_ms"`    // per-call timeout, 0 = gateway default
}

// Resolve materializes the connector config, reading credentials from the
// environment. The returned value is owned by the caller; nothing is shared.
func (ic IntegrationConfig) Resolve() connector.Config {
	return connector.Config{
		BaseURL:      ic.BaseURL,
		APIKey:       os.Getenv(ic.APIKeyEnv),
		APIToken:     os.Getenv(ic.TokenEnv),
		Username:     ic.Username,
		Password:     os.Getenv(ic.PasswordEnv),
		Organization: ic.Organization,
		TimeoutMS:    ic.TimeoutMS,
	}
}
