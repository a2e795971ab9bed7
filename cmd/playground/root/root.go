package root

import (
	"github.com/flarebyte/orca-playground/internal/report"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for playground.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "playground [arg ...]",
		Short: "CLI: test area that echoes its arguments for orca integration runs",
		// Every token after the program name is opaque echo data. Flag
		// parsing is disabled so tokens like --help reach the report
		// unchanged, and no subcommands are registered so tokens like
		// "version" are never routed away from the echo.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return report.Write(cmd.OutOrStdout(), args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return execute(cmd, args)
}

// execute dispatches args through cobra unless they contain one of the
// names cobra reserves for its shell-completion handshake. ExecuteC wires
// a hidden completion command from the raw args before command lookup, so
// __complete/__completeNoDesc would be interpreted rather than echoed;
// those invocations go straight to the report, which emits exactly what
// the root RunE would.
func execute(cmd *cobra.Command, args []string) error {
	for _, a := range args {
		if a == cobra.ShellCompRequestCmd || a == cobra.ShellCompNoDescRequestCmd {
			return report.Write(cmd.OutOrStdout(), args)
		}
	}
	return cmd.Execute()
}
