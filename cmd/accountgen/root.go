package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd is the entrypoint for the accountgen CLI.
var rootCmd = &cobra.Command{
	Use:   "accountgen",
	Short: "Generate mock Solana accounts for testing",
	Long: `accountgen builds synthetic Solana account records for use in
program tests and fixtures, and renders them as JSON or base64.`,

	SilenceUsage:  true,
	SilenceErrors: true,
}

// initConfig binds flag defaults to ACCOUNTGEN_* env vars, e.g.
// ACCOUNTGEN_FORMAT=base64. Called before any flag registration that
// reads a viper default.
func initConfig() {
	viper.SetEnvPrefix("accountgen")
	viper.AutomaticEnv()
	viper.SetDefault("format", "json")
}
