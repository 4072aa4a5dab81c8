package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"docpatch/internal/journal"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	var last int
	var runID string

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Show recorded batch runs from the journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := journal.Open(cfg.Paths.JournalPath)
			if err != nil {
				return fmt.Errorf("open journal: %w", err)
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			if runID != "" {
				docs, err := store.RunDocuments(cmd.Context(), runID)
				if err != nil {
					return fmt.Errorf("load run %s: %w", runID, err)
				}
				if len(docs) == 0 {
					fmt.Fprintf(out, "No documents recorded for run %s\n", runID)
					return nil
				}
				rows := make([][]string, 0, len(docs))
				for _, doc := range docs {
					rows = append(rows, []string{doc.DocumentPath, doc.Outcome, doc.Detail, doc.OutputPath})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Document", "Outcome", "Detail", "Output"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
				))
				return nil
			}

			runs, err := store.ListRuns(cmd.Context(), last)
			if err != nil {
				return fmt.Errorf("list runs: %w", err)
			}
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					run.ID,
					formatRunTime(run.StartedAt),
					strconv.Itoa(run.Succeeded),
					strconv.Itoa(run.Failed),
					strconv.Itoa(run.Unsupported),
					run.OutputDir,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Run", "Started", "OK", "Failed", "Unsupported", "Output"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().IntVar(&last, "last", 20, "Number of recent runs to list")
	cmd.Flags().StringVar(&runID, "id", "", "Show per-document outcomes for one run")
	return cmd
}

func formatRunTime(ts time.Time) string {
	if ts.IsZero() {
		return "-"
	}
	return ts.Local().Format("2006-01-02 15:04:05")
}
