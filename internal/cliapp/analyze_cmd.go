package cliapp

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/IsraelAraujo70/acpcore/internal/findingstore"
)

func newAnalyzeCmd() *cobra.Command {
	var dbPath string
	var stopOnError bool

	cmd := &cobra.Command{
		Use:   "analyze <trace-file>",
		Short: "Replay a trace and persist its findings for cross-run queries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				return fmt.Errorf("analyze requires --db")
			}

			result, err := runValidation(args[0], stopOnError)
			if err != nil {
				return err
			}

			store, err := findingstore.Open(dbPath)
			if err != nil {
				return fmt.Errorf("open finding store: %w", err)
			}
			defer store.Close()

			runID := uuid.NewString()
			if err := store.PersistRun(runID, args[0], result.Findings); err != nil {
				return fmt.Errorf("persist findings: %w", err)
			}
			cmd.Printf("persisted %d finding(s) under run %s\n\n", len(result.Findings), runID)

			byLane, err := store.CountByLane()
			if err != nil {
				return fmt.Errorf("count by lane: %w", err)
			}
			cmd.Println("findings by lane (all runs):")
			for _, lc := range byLane {
				cmd.Printf("  %-16s %d\n", lc.Lane, lc.Count)
			}

			byCode, err := store.CountByCode()
			if err != nil {
				return fmt.Errorf("count by code: %w", err)
			}
			cmd.Println("findings by code (all runs):")
			for _, cc := range byCode {
				cmd.Printf("  %-32s %d\n", cc.Code, cc.Count)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "path to the findings SQLite database")
	cmd.Flags().BoolVar(&stopOnError, "stop-on-error", false, "stop folding the trace at the first protocol error")
	return cmd
}
