package main

import (
	"os"
	"strings"

	"github.com/flarebyte/orca-playground/cmd/playground/root"
)

func main() {
	if err := root.Execute(os.Args[1:]); err != nil {
		// The only reachable failure is an unwritable stdout stream.
		// Print a short, single-line error to stderr; no usage text.
		msg := strings.Join(strings.Fields(err.Error()), " ")
		if msg == "" {
			msg = "error"
		}
		_, _ = os.Stderr.WriteString(msg + "\n")
		os.Exit(1)
	}
}
