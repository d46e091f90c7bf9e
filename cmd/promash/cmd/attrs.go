package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ssargent/promash/pkg/codec"
)

func newAttrsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attrs <file>",
		Short: "Print every field of a recipe file as path and value",
		Long: `Decode a recipe file and print every field, including undocumented
regions and all 50 mash step slots, as a flat list of paths and values.

Examples:
  promash attrs pale-ale.pro
  promash attrs pale-ale.pro --prefix Hops
  promash attrs pale-ale.pro --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := runtimeFrom(cmd)
			if err != nil {
				return err
			}
			prefix, _ := cmd.Flags().GetString("prefix")

			file, err := rt.codec.DecodeFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to decode %s: %w", args[0], err)
			}

			attrs := filterAttributes(codec.Attributes(file), prefix)
			if rt.cfg.Format == formatJSON {
				return printJSON(cmd.OutOrStdout(), attrs)
			}

			rows := make([][]string, 0, len(attrs))
			for _, a := range attrs {
				rows = append(rows, []string{a.Path, a.Text()})
			}
			printTable(cmd.OutOrStdout(), []string{"Path", "Value"}, rows)
			return nil
		},
	}

	cmd.Flags().String("prefix", "", "Only print attributes whose path starts with this prefix")
	return cmd
}

func filterAttributes(attrs []codec.Attribute, prefix string) []codec.Attribute {
	if prefix == "" {
		return attrs
	}
	out := attrs[:0:0]
	for _, a := range attrs {
		if strings.HasPrefix(a.Path, prefix) {
			out = append(out, a)
		}
	}
	return out
}
