// Package cmd provides the askdb command-line interface: an interactive
// loop that translates natural-language questions into read-only SQL,
// executes them, and phrases the results as answers.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	configPath     string
	composePath    string
	composeService string
	logLevel       string
)

// rootCmd runs the interactive question/answer loop.
var rootCmd = &cobra.Command{
	Use:           "askdb",
	Short:         "Ask a PostgreSQL database questions in natural language",
	Long: `askdb loads the database schema, asks a remote language model to translate
each question into a read-only SQL query, executes it, and phrases the
result as a natural-language answer.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runChat,
}

// Execute runs the CLI application.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "config.yaml", "Path to the configuration file")
	rootCmd.Flags().StringVar(&composePath, "compose", "", "Derive database settings from a docker-compose file")
	rootCmd.Flags().StringVar(&composeService, "service", "postgres", "Compose service to read database settings from")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override the configured log level")
	rootCmd.AddCommand(versionCmd)
}
