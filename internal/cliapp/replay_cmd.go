package cliapp

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IsraelAraujo70/acpcore/internal/protocol"
	"github.com/IsraelAraujo70/acpcore/internal/traceio"
	"github.com/IsraelAraujo70/acpcore/internal/validator"
)

func newReplayCmd() *cobra.Command {
	var stopOnError bool

	cmd := &cobra.Command{
		Use:   "replay <trace-file>",
		Short: "Fold a trace through the protocol state machine and validator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := runValidation(args[0], stopOnError)
			if err != nil {
				return err
			}

			for _, f := range result.Findings {
				cmd.Println(f.String())
			}
			cmd.Printf("%d message(s), %d finding(s), final phase %s\n", len(result.Trace), len(result.Findings), result.FinalPhase.Kind)
			return nil
		},
	}

	cmd.Flags().BoolVar(&stopOnError, "stop-on-error", false, "stop folding the trace at the first protocol error")
	return cmd
}

// runValidation is shared by replay and analyze: read the trace file,
// decode it, and fold it through the validator with the default profile.
func runValidation(path string, stopOnError bool) (validator.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return validator.Result{}, fmt.Errorf("open trace file: %w", err)
	}
	defer f.Close()

	read := traceio.ReadLines(f)
	decoded, err := traceio.Decode(read.Lines, false)
	if err != nil {
		return validator.Result{}, fmt.Errorf("decode trace: %w", err)
	}

	connectionID := path
	profile := validator.DefaultProfile()
	result := validator.Run(connectionID, protocol.ACP, decoded.Messages, stopOnError, &profile)
	return result, nil
}
