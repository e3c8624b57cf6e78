// Paramedit edits a list of string parameters from the terminal.
//
// Usage:
//
//	paramedit edit --params product.yaml [--model values.yaml] [--mode tui|prompt]
//	paramedit render --params product.yaml [--values "param-2=Red"]
//	paramedit version
//
// Definitions may also come from an OpenAPI component schema via
// --openapi FILE --schema NAME.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-paramedit/internal/logging"
	"github.com/goliatone/go-paramedit/internal/version"
)

var (
	logLevel string
	logger   = zap.NewNop()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "paramedit",
	Short:         "Edit parameter values from the terminal",
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(logLevel, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); defaults to $"+logging.LogLevelEnvVar)

	rootCmd.AddCommand(newEditCmd(), newRenderCmd(), versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "paramedit %s (commit: %s)\n", version.Version, version.Commit)
	},
}
