// Package cli defines the Cobra command tree for the nmcleanup CLI.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/kstenerud/nmcleanup/internal/cleanup"
	"github.com/spf13/cobra"
)

// Execute runs the root command and returns the exit code.
func Execute(ctx context.Context, version, commit, date string) int {
	rootCmd := newRootCmd(version, commit, date)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	if jsonEnabled(rootCmd) {
		writeJSONError(os.Stderr, err)
	} else {
		fmt.Fprintf(os.Stderr, "nmcleanup: %s\n", err) //nolint:errcheck // best-effort stderr write
	}

	return exitCode(err)
}

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}

	var usageErr *cleanup.UsageError
	if errors.As(err, &usageErr) {
		return 2
	}

	var configErr *cleanup.ConfigError
	if errors.As(err, &configErr) {
		return 3
	}

	return 1
}

// newRootCmd creates the root command. The root command itself performs the
// cleanup; subcommands are auxiliary.
func newRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nmcleanup [rootDir]",
		Short: "Remove dependency folders from projects you haven't touched in a while",
		Long: `Scan rootDir (default: the current directory) for projects, identified by
an indicator file such as package.json. Projects with no modification newer
than the time threshold are stale; matching target folders inside stale
projects (node_modules by default) are removed after confirmation.

Deletion is permanent. Use --dry-run to see what would be removed.

Options are read, lowest precedence first, from built-in defaults, the
config file, NMCLEANUP_* environment variables and command-line flags.`,
		Args:          usageArgs(cobra.MaximumNArgs(1)),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogging(cmd)
		},
		RunE: runClean,
	}

	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (-v for debug)")
	rootCmd.PersistentFlags().CountP("quiet", "q", "Suppress non-essential output (-q for warn, -qq for error only)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")

	registerCleanFlags(rootCmd)

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &cleanup.UsageError{Err: err}
	})

	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	return rootCmd
}

// usageArgs marks positional argument errors as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return &cleanup.UsageError{Err: err}
		}
		return nil
	}
}

func newVersionCmd(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if jsonEnabled(cmd) {
				return writeJSON(cmd.OutOrStdout(), map[string]string{
					"version": version,
					"commit":  commit,
					"date":    date,
				})
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "nmcleanup version %s (commit: %s, built: %s)\n", version, commit, date)
			return err
		},
	}
}
