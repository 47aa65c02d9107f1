package cliapp

import (
	"github.com/spf13/cobra"
)

// newBenchmarkCmd is a documented stub: load-testing a live agent
// connection is out of this library's scope (it only decodes and
// validates recorded traces), but the ambient CLI surface still names the
// command so scripts that expect it don't fail to find it.
func newBenchmarkCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "benchmark",
		Short:  "Reserved for future throughput benchmarking; currently a no-op",
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println("benchmark: not implemented in this build; acplint only replays recorded traces")
			return nil
		},
	}
}
