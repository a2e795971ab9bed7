// Package report emits the playground run report: a fixed banner, an
// indexed echo of the invocation arguments, and a completion line.
package report

import (
	"fmt"
	"io"
)

// banner is printed first on every run, followed by a blank line.
var banner = []string{
	"=== Playground Test Area for Orca ===",
	"Hello from playground!",
	"This is a test environment for orca integration.",
}

// Write emits the full report for one invocation to w. Arguments are echoed
// verbatim with a 1-based index; an empty argument list is reported as such.
// The first write error is returned as-is.
func Write(w io.Writer, args []string) error {
	for _, line := range banner {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	if len(args) > 0 {
		if _, err := fmt.Fprintln(w, "Arguments received:"); err != nil {
			return err
		}
		for i, a := range args {
			if _, err := fmt.Fprintf(w, "  [%d]: %s\n", i+1, a); err != nil {
				return err
			}
		}
	} else {
		if _, err := fmt.Fprintln(w, "No arguments provided."); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "Playground test completed successfully."); err != nil {
		return err
	}
	return nil
}
