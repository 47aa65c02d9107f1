package cliapp

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IsraelAraujo70/acpcore/internal/traceio"
)

func newInspectCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "inspect <trace-file>",
		Short: "Decode a trace file and print its message sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open trace file: %w", err)
			}
			defer f.Close()

			read := traceio.ReadLines(f)
			if read.SkippedLines > 0 {
				cmd.Printf("skipped %d unparseable line(s)\n", read.SkippedLines)
			}

			decoded, err := traceio.Decode(read.Lines, strict)
			if err != nil {
				return fmt.Errorf("decode trace: %w", err)
			}

			for i, msg := range decoded.Messages {
				method := msg.Message.Method
				if method == "" && msg.Message.ExtMethod != "" {
					method = msg.Message.ExtMethod
				}
				if method == "" {
					method = "(response)"
				}
				cmd.Printf("%4d  %-11s %-28s kind=%d\n", i, msg.Message.Direction, method, msg.Message.Kind)
			}
			for _, fail := range decoded.Failures {
				cmd.Printf("line %d: decode failed: %v\n", fail.LineIndex, fail.Err)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail on the first undecodable line instead of skipping it")
	return cmd
}
