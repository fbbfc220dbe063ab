// Package main provides the integration-runner CLI application.
package main

import (
	"fmt"

	"github.com/comply-toolkit/integration-runner/pkg/observability"
	"github.com/comply-toolkit/integration-runner/pkg/runner"
	"github.com/spf13/cobra"
)

// testConnCmd verifies connectivity and credentials for integrations.
var testConnCmd = &cobra.Command{
	Use:   "test-connection [integration-name]",
	Short: "Test connectivity of configured integrations",
	Long: `Run each connector's connectivity test. With an integration name only
that integration is tested; otherwise all configured integrations are.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		integrations, err := selectIntegrations(cfg, name)
		if err != nil {
			return err
		}

		log := observability.NewLogger(cfg.Global.LogLevel)
		r := runner.New(nil, log, cfg.Global.MaxConcurrentSyncs)
		report := r.TestAll(cmd.Context(), integrations)

		failed := 0
		for _, integ := range integrations {
			result := report.Tests[integ.Name]
			if result.Success {
				fmt.Printf("ok   %-20s %s\n", integ.Name, result.Message)
			} else {
				failed++
				fmt.Printf("FAIL %-20s %s\n", integ.Name, result.Message)
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d integrations failed", failed, len(integrations))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(testConnCmd)
}
