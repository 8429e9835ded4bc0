package cli

// ABOUTME: Builds cleanup.Options from defaults, config file, environment
// ABOUTME: and the flags the user actually set, in that order.

import (
	"log/slog"

	"github.com/kstenerud/nmcleanup/internal/cleanup"
	"github.com/spf13/cobra"
)

// registerCleanFlags adds the cleanup flags to cmd.
func registerCleanFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("name", "n", cleanup.DefaultTargetPattern, "Regex matching target directory names")
	f.IntP("time", "t", cleanup.DefaultThresholdDays, "Days without modification before a project is stale")
	f.StringP("exclude", "x", cleanup.DefaultExcludePattern, "Regex for directory names to skip during the scan (empty disables)")
	f.StringSliceP("project", "p", cleanup.DefaultIndicatorFiles(), "Project indicator filenames (repeatable or comma separated)")
	f.StringSliceP("ignore", "i", nil, "Path substrings to ignore (repeatable or comma separated)")
	f.BoolP("separate-nested", "s", false, "Treat nested projects as separate projects")
	f.BoolP("yes", "y", false, "Skip confirmation prompt")
	f.Bool("dry-run", false, "Report only, don't remove anything")
	f.String("config", "", "Config file path (default: nmcleanup/config.yaml in the XDG config home)")
}

// loadOptions merges every option source for a run rooted at args[0].
func loadOptions(cmd *cobra.Command, args []string) (cleanup.Options, error) {
	opts := cleanup.DefaultOptions()
	if len(args) > 0 {
		opts.RootDir = args[0]
	}

	env, err := cleanup.LoadEnv()
	if err != nil {
		return opts, err
	}

	path, required := configPath(cmd, env)
	file, err := cleanup.LoadConfigFile(path, required)
	if err != nil {
		return opts, err
	}
	slog.Debug("options loaded", "config", path)

	file.Apply(&opts)
	env.Apply(&opts)
	applyFlags(cmd, &opts)

	return opts, nil
}

// configPath returns the config file to read and whether it must exist.
// An explicitly named file must exist; the default location is optional.
func configPath(cmd *cobra.Command, env *cleanup.EnvConfig) (string, bool) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path, true
	}
	if env.Config != "" {
		return env.Config, true
	}
	return cleanup.DefaultConfigPath(), false
}

// applyFlags copies the explicitly set flags onto opts.
func applyFlags(cmd *cobra.Command, opts *cleanup.Options) {
	f := cmd.Flags()
	if f.Changed("name") {
		opts.TargetPattern, _ = f.GetString("name")
	}
	if f.Changed("time") {
		opts.ThresholdDays, _ = f.GetInt("time")
	}
	if f.Changed("exclude") {
		opts.ExcludePattern, _ = f.GetString("exclude")
	}
	if f.Changed("project") {
		opts.IndicatorFiles, _ = f.GetStringSlice("project")
	}
	if f.Changed("ignore") {
		opts.IgnorePaths, _ = f.GetStringSlice("ignore")
	}
	if f.Changed("separate-nested") {
		opts.SeparateNested, _ = f.GetBool("separate-nested")
	}
	if f.Changed("yes") {
		opts.AutoConfirm, _ = f.GetBool("yes")
	}
	if f.Changed("dry-run") {
		opts.DryRun, _ = f.GetBool("dry-run")
	}
}
