// Package main provides the integration-runner CLI application.
package main

import (
	"github.com/comply-toolkit/integration-runner/pkg/version"
	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "integration-runner",
	Short: "Compliance integration runner",
	Long: `Compliance integration runner - outbound integration gateway CLI.

Runs connectivity tests and inventory syncs against configured third-party
integrations. Every outbound call goes through the SSRF-guarded gateway:
base URLs are validated statically and re-validated at DNS resolution time
on every connection.`,
	Version: version.FullString(),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is ./.integrations.yaml)")
}
