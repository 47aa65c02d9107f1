// Package cliapp builds the acplint command tree. Structured the way the
// pack's amurg-runtime lays out its cobra commands: a NewRootCmd
// constructor in this package, a thin cmd/acplint/main.go that only calls
// it and handles the exit code.
package cliapp

import (
	"github.com/spf13/cobra"
)

var version = "dev"

// NewRootCmd builds the acplint root command and wires every subcommand.
func NewRootCmd(v string) *cobra.Command {
	version = v

	root := &cobra.Command{
		Use:           "acplint",
		Short:         "acplint — inspect, replay, and analyze ACP traces",
		Long:          "acplint decodes recorded Agent Client Protocol traces and folds them through the protocol state machine and validator, without ever spawning or speaking to a live agent.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newInspectCmd())
	root.AddCommand(newReplayCmd())
	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newBenchmarkCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print acplint's version",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println("acplint", version)
			return nil
		},
	}
}
