// Package main provides the integration-runner CLI application.
package main

import (
	"fmt"

	"github.com/comply-toolkit/integration-runner/pkg/ssrf"
	"github.com/spf13/cobra"
)

// checkURLCmd validates a candidate base URL without issuing any request.
var checkURLCmd = &cobra.Command{
	Use:   "check-url <url>",
	Short: "Validate a base URL against the SSRF gatekeeper",
	Long: `Run the static SSRF checks against a candidate base URL: scheme
whitelist, blocked hostnames, and IP-literal classification. DNS names are
not resolved here; resolved addresses are checked at connection time.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := ssrf.ValidateBaseURL(args[0]); err != nil {
			fmt.Printf("blocked: %v\n", err)
			return err
		}
		fmt.Printf("ok: %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkURLCmd)
}
