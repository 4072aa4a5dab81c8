package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"docpatch/internal/journal"
	"docpatch/internal/logging"
	"docpatch/internal/order"
	"docpatch/internal/replacer"
)

func newReplaceCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "replace <order.csv>",
		Short: "Run a batch replacement from a CSV replacement order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("initialize logging: %w", err)
			}

			orderPath := args[0]
			instructions, err := order.Load(orderPath)
			if err != nil {
				return fmt.Errorf("load replacement order: %w", err)
			}
			if len(instructions) == 0 {
				return fmt.Errorf("replacement order %s contains no instructions", orderPath)
			}

			var store *journal.Store
			if cfg.Replace.JournalEnabled {
				store, err = journal.Open(cfg.Paths.JournalPath)
				if err != nil {
					logger.Warn("journal unavailable, continuing without it", logging.Error(err))
					store = nil
				} else {
					defer store.Close()
				}
			}

			summary, err := replacer.New(cfg, logger, store).Run(runCtx, orderPath, instructions)
			if err != nil {
				return err
			}

			printSummary(cmd, summary)
			if summary.Failed > 0 {
				return fmt.Errorf("%d of %d documents failed", summary.Failed, len(summary.Results))
			}
			return nil
		},
	}
}

func printSummary(cmd *cobra.Command, summary *replacer.Summary) {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	for _, res := range summary.Results {
		kind := statusError
		message := res.Detail
		switch res.Outcome {
		case replacer.OutcomeSucceeded:
			kind = statusOK
			message = fmt.Sprintf("%d replaced, %d skipped", res.Replaced, res.Skipped)
		case replacer.OutcomeUnsupported:
			kind = statusWarn
		}
		fmt.Fprintln(out, renderStatusLine(res.DocumentPath, kind, message, colorize))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, renderTable(
		[]string{"Succeeded", "Failed", "Unsupported", "Output"},
		[][]string{{
			strconv.Itoa(summary.Succeeded),
			strconv.Itoa(summary.Failed),
			strconv.Itoa(summary.Unsupported),
			summary.OutputDir,
		}},
		[]columnAlignment{alignRight, alignRight, alignRight, alignLeft},
	))
}
