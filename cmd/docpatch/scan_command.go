package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"docpatch/internal/scan"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "scan <root>",
		Short: "List patchable documents under a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			candidates, err := scan.Find(args[0], cfg.Replace.MediaPrefix)
			if err != nil {
				return fmt.Errorf("scan %s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			if len(candidates) == 0 {
				fmt.Fprintln(out, "No documents found")
				return nil
			}

			rows := make([][]string, 0, len(candidates))
			for _, c := range candidates {
				rows = append(rows, []string{c.Path, string(c.Kind), yesNo(c.HasMedia)})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Document", "Kind", "Media"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}
}
