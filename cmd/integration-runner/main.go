// Package main is the entry point for the integration-runner CLI.
package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Credentials come from the environment (token_env indirection); a
	// local .env is honored when present.
	_ = godotenv.Load()

	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
