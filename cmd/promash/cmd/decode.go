package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <file>",
		Short: "Decode a recipe file",
		Long: `Decode a ProMash recipe file and print it as a table or as JSON.

Examples:
  promash decode pale-ale.pro
  promash decode pale-ale.pro --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := runtimeFrom(cmd)
			if err != nil {
				return err
			}

			file, err := rt.codec.DecodeFile(args[0])
			if err != nil {
				rt.logger.Debug("decode failed", zap.String("file", args[0]), zap.Error(err))
				return fmt.Errorf("failed to decode %s: %w", args[0], err)
			}

			if rt.cfg.Format == formatJSON {
				return printJSON(cmd.OutOrStdout(), file)
			}
			renderFile(cmd.OutOrStdout(), file)
			return nil
		},
	}
}
