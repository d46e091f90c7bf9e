/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ssargent/promash/pkg/config"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a promash configuration file",
		Long: `Create a configuration file with a generated API key for the REST server.

This command will:
- Write the config file with 0600 permissions
- Generate a random API key for 'promash serve'
- Record the archive directory

Examples:
  promash init
  promash init --config ./promash.yaml --archive-dir ./recipes --print-key`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := runtimeFrom(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			force, _ := cmd.Flags().GetBool("force")
			printKey, _ := cmd.Flags().GetBool("print-key")

			if config.ConfigExists(rt.configPath) && !force {
				fmt.Fprintf(out, "Config already exists at %s. Use --force to overwrite.\n", rt.configPath)
				return nil
			}

			archiveDir := ""
			if cmd.Flags().Changed("archive-dir") {
				archiveDir = rt.cfg.ArchiveDir
			}
			cfg, err := config.BootstrapConfig(rt.configPath, archiveDir)
			if err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}

			fmt.Fprintf(out, "Configuration created at %s\n", rt.configPath)
			fmt.Fprintf(out, "Archive directory: %s\n", cfg.ArchiveDir)
			if printKey {
				fmt.Fprintf(out, "API key: %s\n", cfg.Server.APIKey)
			}
			return nil
		},
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing config file")
	cmd.Flags().Bool("print-key", false, "Print the generated API key")
	return cmd
}
