// Smscode is a terminal widget for entering 4-digit SMS verification codes.
//
// It shows four single-character slots that advance as digits are typed or
// pasted, and a "resend code" action gated by a countdown.
//
// Usage:
//
//	smscode [command] [flags]
//
// Running without arguments launches the interactive widget.
// See 'smscode --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/smscode/internal/logging"
	"github.com/muurk/smscode/internal/version"
)

var logLevel string

func main() {
	err := rootCmd.Execute()
	if syncErr := logging.Sync(); syncErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", syncErr)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "smscode",
	Short: "SMS verification code entry widget",
	Long: `A terminal widget for entering 4-digit SMS verification codes.

Type or paste the code into four slots. Focus moves to the next slot as you
type and backspace on an empty slot edits the previous one. The "resend
code" action stays disabled until its countdown has run out.

If no command is specified, the interactive widget will launch automatically.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Silent unless --log-level or SMSCODE_LOG_LEVEL is set
		return logging.Initialize(logLevel)
	},
	RunE: runWidget,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Log level (debug, info, warn, error); logs go to "+logging.LogFileEnvVar+" or stderr")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()
		fmt.Fprintf(cmd.OutOrStdout(), "smscode %s (commit: %s, %s, %s)\n",
			info.Version, info.Commit, info.GoVersion, info.Platform)
	},
}
