package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// logLevel maps the -v/-q counts to a slog level.
func logLevel(verbose, quiet int) slog.Level {
	switch {
	case verbose > 0:
		return slog.LevelDebug
	case quiet == 1:
		return slog.LevelWarn
	case quiet > 1:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// setupLogging installs the default logger, writing text records to the
// command's stderr.
func setupLogging(cmd *cobra.Command) {
	verbose, _ := cmd.Flags().GetCount("verbose")
	quiet, _ := cmd.Flags().GetCount("quiet")

	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: logLevel(verbose, quiet)})
	slog.SetDefault(slog.New(handler))
}
