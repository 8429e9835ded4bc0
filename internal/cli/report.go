package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/kstenerud/nmcleanup/internal/cleanup"
)

// reporter prints the human-readable progress of a cleanup run.
type reporter struct {
	out   io.Writer
	root  string
	style styles
	width int
}

func newReporter(out io.Writer, root string, style styles, width int) *reporter {
	return &reporter{out: out, root: root, style: style, width: width}
}

// rel shows path relative to the scan root.
func (r *reporter) rel(path string) string {
	rel, err := filepath.Rel(r.root, path)
	if err != nil {
		return path
	}
	return rel
}

func (r *reporter) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...) //nolint:errcheck // best-effort output
}

func (r *reporter) line() {
	r.printf("%s\n", r.style.dim.Render(strings.Repeat("-", r.width)))
}

func (r *reporter) section(title string) {
	r.printf("%s\n", r.style.section.Render(title))
}

// entry prints "<label> <path>" with a dimmed label.
func (r *reporter) entry(label string, path string) {
	r.printf("%s %s\n", r.style.dim.Render(label), r.rel(path))
}

func (r *reporter) header(opts cleanup.Options) {
	r.printf("%s\n", r.style.title.Render("NM CLEANUP"))
	r.section("Starting the cleanup process...")
	r.printf("Dry run: %t\n", opts.DryRun)
	r.printf("Auto confirm: %t\n", opts.AutoConfirm)
	r.printf("Root dir: %s\n", opts.RootDir)
	r.printf("Target name: %s\n", opts.TargetPattern)
	r.printf("Ignore paths: [%s]\n", strings.Join(opts.IgnorePaths, ", "))
	r.printf("Exclude dirs: %s\n", opts.ExcludePattern)
	r.printf("Time threshold (days): %d\n", opts.ThresholdDays)
	r.printf("Project indicator files: [%s]\n", strings.Join(opts.IndicatorFiles, ", "))
	r.printf("Separate nested projects: %t\n", opts.SeparateNested)
}

func (r *reporter) projects(projects []*cleanup.Project) {
	for _, p := range projects {
		r.entry("Project found", p.Path)
		for _, path := range p.Ignored {
			r.entry("Skip (ignored)", path)
		}
	}
}

func (r *reporter) freshProjects(projects []*cleanup.Project) {
	for _, p := range projects {
		r.printf("%s %s\n", r.style.dim.Render("Skip (fresh project)"), r.style.fresh.Render(r.rel(p.Path)))
	}
}

func (r *reporter) targets(targets []string) {
	r.section("Locked on targets")
	for _, target := range targets {
		r.printf("%s\n", r.style.target.Render(r.rel(target)))
	}
}

func (r *reporter) deleted(path string) {
	r.entry("Deleted", path)
}

func (r *reporter) failures(failures []cleanup.RemovalFailure) {
	for _, f := range failures {
		r.printf("%s %s: %v\n", r.style.warn.Render("Failed"), r.rel(f.Path), f.Err)
	}
}

func (r *reporter) message(msg string) {
	r.printf("%s\n", msg)
}
