/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ssargent/promash/pkg/codec"
	"github.com/ssargent/promash/pkg/config"
	"github.com/ssargent/promash/pkg/di"
	"github.com/ssargent/promash/pkg/logging"
	"github.com/ssargent/promash/pkg/storage"
	"go.uber.org/zap"
)

var container *di.Container

// SetContainer injects the dependency container used by every command
func SetContainer(c *di.Container) {
	container = c
}

type runtimeKey struct{}

// runtime is the per-invocation state built by the root command
type runtime struct {
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
	codec      *codec.RecipeCodec
}

func runtimeFrom(cmd *cobra.Command) (*runtime, error) {
	rt, ok := cmd.Context().Value(runtimeKey{}).(*runtime)
	if !ok {
		return nil, errors.New("runtime not found in context")
	}
	return rt, nil
}

// openArchive opens the configured archive. The caller must close it.
func (rt *runtime) openArchive() (*storage.Archive, error) {
	if err := os.MkdirAll(rt.cfg.ArchiveDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create archive dir: %w", err)
	}
	archive, err := container.OpenArchive(rt.cfg.ArchiveDir, rt.codec)
	if err != nil {
		return nil, err
	}
	return archive, nil
}

// newRootCmd builds the command tree
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "promash",
		Short: "promash - ProMash recipe file decoder",
		Long: `promash decodes ProMash binary recipe files (.pro) into structured data.

Recipes can be printed as tables, JSON or flattened attribute lists, kept in a
local archive, and served over a small REST API.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if container == nil {
				return errors.New("dependency container not initialized")
			}

			rt, err := loadRuntime(cmd)
			if err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(cmd.Context(), runtimeKey{}, rt))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if rt, err := runtimeFrom(cmd); err == nil {
				_ = rt.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: ~/.config/promash/config.yaml)")
	rootCmd.PersistentFlags().StringP("archive-dir", "a", "", "Recipe archive directory")
	rootCmd.PersistentFlags().StringP("format", "f", "", "Output format (table|json)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug|info|warn|error)")

	rootCmd.AddCommand(
		newDecodeCmd(),
		newAttrsCmd(),
		newInitCmd(),
		newImportCmd(),
		newListCmd(),
		newShowCmd(),
		newDeleteCmd(),
		newServeCmd(),
	)
	return rootCmd
}

// loadRuntime reads the config file, applies flag overrides and builds the logger and codec
func loadRuntime(cmd *cobra.Command) (*runtime, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = config.GetDefaultConfigPath()
	}

	cfg := config.DefaultConfig()
	if config.ConfigExists(configPath) {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("archive-dir") {
		cfg.ArchiveDir, _ = cmd.Flags().GetString("archive-dir")
	}
	if cmd.Flags().Changed("format") {
		cfg.Format, _ = cmd.Flags().GetString("format")
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level, _ = cmd.Flags().GetString("log-level")
	}
	if cfg.Format != formatTable && cfg.Format != formatJSON {
		return nil, fmt.Errorf("unsupported output format %q", cfg.Format)
	}

	logger, err := logging.NewWithWriter(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	rc, err := container.NewCodec(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &runtime{configPath: configPath, cfg: cfg, logger: logger, codec: rc}, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
