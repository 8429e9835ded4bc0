package cleanup

// ABOUTME: Context-aware y/N confirmation read before targets are removed.

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// readLine reads a single line from input, returning early if ctx is
// cancelled. EOF yields ("", nil) so callers treat it as the default answer.
// The reading goroutine may outlive the call on cancellation, which is fine
// for a process that is about to exit.
func readLine(ctx context.Context, input io.Reader) (string, error) {
	type result struct {
		line string
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		scanner := bufio.NewScanner(input)
		if scanner.Scan() {
			ch <- result{line: scanner.Text()}
			return
		}
		ch <- result{err: scanner.Err()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		return r.line, r.err
	}
}

// Confirm writes prompt to output and reads the answer from input.
// Only "y" or "yes" (case-insensitive) confirm; an empty line or EOF
// declines. A cancelled ctx (Ctrl+C) returns ctx.Err().
func Confirm(ctx context.Context, prompt string, input io.Reader, output io.Writer) (bool, error) {
	fmt.Fprint(output, prompt) //nolint:errcheck // best-effort output
	line, err := readLine(ctx, input)
	if err != nil {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
