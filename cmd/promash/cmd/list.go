package cmd

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List archived recipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := runtimeFrom(cmd)
			if err != nil {
				return err
			}

			archive, err := rt.openArchive()
			if err != nil {
				return err
			}
			defer archive.Close()

			entries, err := archive.List()
			if err != nil {
				return err
			}

			if rt.cfg.Format == formatJSON {
				return printJSON(cmd.OutOrStdout(), entries)
			}

			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{e.ID.String(), e.Name, e.Created.Format(time.RFC3339), strconv.Itoa(e.Size)})
			}
			printTable(cmd.OutOrStdout(), []string{"ID", "Name", "Created", "Size"}, rows)
			return nil
		},
	}
}
