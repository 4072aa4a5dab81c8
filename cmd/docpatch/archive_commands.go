package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"docpatch/internal/archive"
)

func newExtractCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "extract <document.docx> <dir>",
		Short: "Explode a Word package into a directory tree",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := ctx.ensureConfig(); err != nil {
				return err
			}

			container, err := archive.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer container.Close()

			if err := archive.Explode(container, args[1]); err != nil {
				return fmt.Errorf("extract to %s: %w", args[1], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Extracted %s to %s\n", args[0], args[1])
			return nil
		},
	}
}

func newRebuildCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rebuild <dir> <document.docx>",
		Short: "Repack an exploded directory tree into a Word package",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := ctx.ensureConfig(); err != nil {
				return err
			}

			if err := archive.BuildFromDir(args[0], args[1]); err != nil {
				return fmt.Errorf("rebuild from %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rebuilt %s from %s\n", args[1], args[0])
			return nil
		},
	}
}
