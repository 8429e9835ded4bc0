package cli

// ABOUTME: Terminal styling for the human-readable report. Color is only
// ABOUTME: used when writing to a terminal and not disabled by flag or NO_COLOR.

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// defaultWidth is the separator width when the output is not a terminal.
const defaultWidth = 80

type styles struct {
	title   lipgloss.Style
	section lipgloss.Style
	dim     lipgloss.Style
	target  lipgloss.Style
	fresh   lipgloss.Style
	warn    lipgloss.Style
}

// newStyles returns the report styles for w. Without color every style
// renders text unchanged.
func newStyles(w io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(w)
	s := styles{
		title:   r.NewStyle(),
		section: r.NewStyle(),
		dim:     r.NewStyle(),
		target:  r.NewStyle(),
		fresh:   r.NewStyle(),
		warn:    r.NewStyle(),
	}
	if !color {
		return s
	}

	s.title = s.title.Bold(true).Foreground(lipgloss.Color("6"))
	s.section = s.section.Bold(true).Foreground(lipgloss.Color("6"))
	s.dim = s.dim.Faint(true)
	s.target = s.target.Foreground(lipgloss.Color("1"))
	s.fresh = s.fresh.Foreground(lipgloss.Color("2"))
	s.warn = s.warn.Bold(true).Foreground(lipgloss.Color("3"))
	return s
}

// terminalFd returns the file descriptor of w if it is a terminal.
func terminalFd(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd()) //nolint:gosec // fd conversion is safe on all supported platforms
	return fd, term.IsTerminal(fd)
}

// colorEnabled reports whether output to w should be colored.
func colorEnabled(cmd *cobra.Command, w io.Writer) bool {
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	_, isTTY := terminalFd(w)
	return isTTY
}

// terminalWidth returns the column count of w, or defaultWidth.
func terminalWidth(w io.Writer) int {
	fd, isTTY := terminalFd(w)
	if !isTTY {
		return defaultWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}
