package cli

// ABOUTME: The cleanup run: scan, resolve stale projects, confirm, eliminate.

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/kstenerud/nmcleanup/internal/cleanup"
	"github.com/spf13/cobra"
)

func runClean(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	opts, err := loadOptions(cmd, args)
	if err != nil {
		return err
	}
	scanCfg, err := opts.Compile()
	if err != nil {
		return err
	}
	if err := requireYesForJSON(cmd, opts); err != nil {
		return err
	}

	isJSON := jsonEnabled(cmd)
	output := cmd.OutOrStdout()
	human := output
	if isJSON {
		human = io.Discard
	}
	r := newReporter(human, opts.RootDir, newStyles(human, colorEnabled(cmd, human)), terminalWidth(human))

	r.header(opts)
	r.line()

	// 1. Discover projects.
	r.section("Scanning projects...")
	projects, err := cleanup.NewScanner(scanCfg, slog.Default()).Scan(ctx, opts.RootDir)
	if err != nil {
		return fmt.Errorf("scan %s: %w", opts.RootDir, err)
	}
	r.projects(projects)
	r.line()

	// 2. Select the targets of stale projects.
	r.section("Locking on targets in old projects...")
	res := cleanup.Resolve(projects, opts.Threshold(), time.Now())
	r.freshProjects(res.Fresh)
	r.line()

	slog.Debug("resolve complete", "projects", len(projects), "stale", len(res.Stale), "targets", len(res.Targets))

	var elim cleanup.Elimination
	report := func() error {
		if isJSON {
			return writeReportJSON(output, opts, projects, res, elim)
		}
		r.message("Done.")
		return nil
	}

	if len(res.Targets) == 0 {
		r.message("Nothing to clear - no targets found in old projects.")
		return report()
	}

	r.targets(res.Targets)

	// 3. Dry run stops before anything is touched.
	if opts.DryRun {
		r.message("Dry run.")
		return report()
	}

	// 4. Confirm unless --yes.
	if !opts.AutoConfirm {
		prompt := fmt.Sprintf("Eliminate %d target(s)? [y/N]: ", len(res.Targets))
		confirmed, err := cleanup.Confirm(ctx, prompt, cmd.InOrStdin(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		if !confirmed {
			r.message("Elimination cancelled by user.")
			return report()
		}
	}

	// 5. Remove, continuing past individual failures.
	r.line()
	r.section("Eliminating targets...")
	eliminator := cleanup.NewEliminator(opts.RootDir, slog.Default(), cleanup.WithProgress(r.deleted))
	elim, err = eliminator.Eliminate(ctx, res.Targets)
	r.failures(elim.Failures)

	if reportErr := report(); reportErr != nil && err == nil {
		err = reportErr
	}
	return err
}
