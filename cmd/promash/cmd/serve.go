/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/ssargent/promash/pkg/api"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long: `Start the promash REST API server.

The server decodes uploaded recipe files and manages the recipe archive. Every
route under /api/v1 requires the X-API-Key header; /metrics is open for scraping.

Examples:
  promash serve
  promash serve --port 9000 --bind 0.0.0.0
  promash serve --api-key mysecretkey --no-archive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := runtimeFrom(cmd)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("port") {
				rt.cfg.Server.Port, _ = cmd.Flags().GetInt("port")
			}
			if cmd.Flags().Changed("bind") {
				rt.cfg.Server.Bind, _ = cmd.Flags().GetString("bind")
			}
			if cmd.Flags().Changed("api-key") {
				rt.cfg.Server.APIKey, _ = cmd.Flags().GetString("api-key")
			}
			noArchive, _ := cmd.Flags().GetBool("no-archive")

			if rt.cfg.Server.APIKey == "" || rt.cfg.Server.APIKey == "auto" {
				return errors.New("no API key configured: run 'promash init' or pass --api-key")
			}

			var archive api.RecipeArchive
			if !noArchive {
				a, err := rt.openArchive()
				if err != nil {
					return err
				}
				defer a.Close()
				archive = a
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			rt.logger.Info("serving",
				zap.String("bind", rt.cfg.Server.Bind),
				zap.Int("port", rt.cfg.Server.Port),
				zap.String("archive_dir", rt.cfg.ArchiveDir),
				zap.Bool("archive", archive != nil),
			)

			starter := container.GetServerFactory().CreateServerStarter()
			return starter.StartServer(ctx, rt.codec, archive, api.ServerConfig{
				Port:   rt.cfg.Server.Port,
				Bind:   rt.cfg.Server.Bind,
				APIKey: rt.cfg.Server.APIKey,
			}, rt.logger)
		},
	}

	cmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	cmd.Flags().String("bind", "127.0.0.1", "Address to bind server to")
	cmd.Flags().String("api-key", "", "API key for client authentication (overrides config)")
	cmd.Flags().Bool("no-archive", false, "Serve only the stateless decode endpoints")
	return cmd
}
