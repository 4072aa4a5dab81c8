package main

import (
	"fmt"
	"path"
	"strconv"

	"github.com/spf13/cobra"

	"docpatch/internal/archive"
	"docpatch/internal/catalog"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var showEntries bool

	cmd := &cobra.Command{
		Use:   "inspect <document.docx>",
		Short: "Show the media catalog of a Word package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			container, err := archive.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer container.Close()

			out := cmd.OutOrStdout()

			if showEntries {
				entries := container.Entries()
				rows := make([][]string, 0, len(entries))
				for _, e := range entries {
					kind := "file"
					if e.Dir {
						kind = "dir"
					}
					rows = append(rows, []string{e.Path, kind, strconv.FormatInt(e.Size, 10)})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Entry", "Kind", "Size"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight},
				))
				fmt.Fprintln(out)
			}

			cat := catalog.Build(container, cfg.Replace.MediaPrefix)
			if cat.Len() == 0 {
				fmt.Fprintf(out, "No media entries under %s\n", cfg.Replace.MediaPrefix)
				return nil
			}

			rows := make([][]string, 0, cat.Len())
			for i, e := range cat.Entries() {
				rows = append(rows, []string{
					fmt.Sprintf("image%d", i+1),
					path.Base(e.Path),
					e.Path,
					strconv.FormatInt(e.Size, 10),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Ordinal", "Filename", "Entry", "Size"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight},
			))
			fmt.Fprintf(out, "Catalog fingerprint: %s\n", cat.Snapshot().Fingerprint)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showEntries, "entries", false, "Also list every package entry")
	return cmd
}
