package cmd

import (
	"fmt"
	"os"

	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show an archived recipe",
		Long: `Decode and print an archived recipe, or export its original bytes.

Examples:
  promash show 2fZ0r7x0LdE4vG0k2w0K6nR9l1M
  promash show 2fZ0r7x0LdE4vG0k2w0K6nR9l1M --export copy.pro`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := runtimeFrom(cmd)
			if err != nil {
				return err
			}
			export, _ := cmd.Flags().GetString("export")

			id, err := ksuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid recipe id %q: %w", args[0], err)
			}

			archive, err := rt.openArchive()
			if err != nil {
				return err
			}
			defer archive.Close()

			if export != "" {
				data, err := archive.Get(id)
				if err != nil {
					return err
				}
				if err := os.WriteFile(export, data, 0644); err != nil {
					return fmt.Errorf("failed to export recipe: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d bytes to %s\n", len(data), export)
				return nil
			}

			file, err := archive.Load(id)
			if err != nil {
				return err
			}
			if rt.cfg.Format == formatJSON {
				return printJSON(cmd.OutOrStdout(), file)
			}
			renderFile(cmd.OutOrStdout(), file)
			return nil
		},
	}

	cmd.Flags().String("export", "", "Write the original recipe file to this path")
	return cmd
}
