package cli

// ABOUTME: --json support: the machine-readable cleanup report plus the
// ABOUTME: shared encoding helpers.

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/kstenerud/nmcleanup/internal/cleanup"
	"github.com/spf13/cobra"
)

// jsonEnabled checks if the --json persistent flag is set on the command.
func jsonEnabled(cmd *cobra.Command) bool {
	// Check persistent flags first (where --json is registered)
	if f := cmd.PersistentFlags().Lookup("json"); f != nil {
		v, _ := cmd.PersistentFlags().GetBool("json")
		return v
	}
	// Fallback to checking inherited flags (for subcommands)
	v, _ := cmd.Flags().GetBool("json")
	return v
}

// writeJSON marshals v as indented JSON and writes it to w with a trailing newline.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

// writeJSONError writes a JSON error object to w. Used for stderr error output
// when --json is active.
func writeJSONError(w io.Writer, err error) {
	data, _ := json.Marshal(map[string]string{"error": err.Error()})
	fmt.Fprintf(w, "%s\n", data) //nolint:errcheck // best-effort stderr write
}

// requireYesForJSON returns a usage error if --json is set and the run would
// need to prompt: a confirmation can't be answered in a machine-readable
// pipeline. Dry runs never prompt.
func requireYesForJSON(cmd *cobra.Command, opts cleanup.Options) error {
	if !jsonEnabled(cmd) || opts.AutoConfirm || opts.DryRun {
		return nil
	}
	return cleanup.NewUsageError("--json requires --yes (or --dry-run) to skip the confirmation prompt")
}

type projectJSON struct {
	Path     string    `json:"path"`
	ModTime  time.Time `json:"mtime"`
	Stale    bool      `json:"stale"`
	Targets  []string  `json:"targets"`
	Ignored  []string  `json:"ignored"`
	Excluded []string  `json:"excluded"`
}

type failureJSON struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

type reportJSON struct {
	Root     string        `json:"root"`
	DryRun   bool          `json:"dry_run"`
	Projects []projectJSON `json:"projects"`
	Targets  []string      `json:"targets"`
	Removed  []string      `json:"removed"`
	Failures []failureJSON `json:"failures"`
}

// writeReportJSON outputs the run result. Lists are always arrays, never null.
func writeReportJSON(w io.Writer, opts cleanup.Options, projects []*cleanup.Project, res cleanup.Resolution, elim cleanup.Elimination) error {
	report := reportJSON{
		Root:     opts.RootDir,
		DryRun:   opts.DryRun,
		Projects: make([]projectJSON, 0, len(projects)),
		Targets:  orEmpty(res.Targets),
		Removed:  orEmpty(elim.Removed),
		Failures: make([]failureJSON, 0, len(elim.Failures)),
	}

	for _, p := range projects {
		report.Projects = append(report.Projects, projectJSON{
			Path:     p.Path,
			ModTime:  p.ModTime,
			Stale:    !p.IsFresh(res.Cutoff),
			Targets:  orEmpty(p.Targets),
			Ignored:  orEmpty(p.Ignored),
			Excluded: orEmpty(p.Excluded),
		})
	}
	for _, f := range elim.Failures {
		report.Failures = append(report.Failures, failureJSON{Path: f.Path, Error: f.Err.Error()})
	}

	return writeJSON(w, report)
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
