// Package cmd implements the griddemo command line.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/xqrs/gridview/internal/config"
	"github.com/xqrs/gridview/internal/observability"
)

// session holds what PersistentPreRunE sets up for the subcommands.
type session struct {
	configFile  string
	cfg         *config.Config
	logger      *zap.Logger
	closeLogger func() error
}

// gridFlags maps command line flags onto config keys.
var gridFlags = map[string]string{
	"items":     "grid.items",
	"direction": "grid.direction",
	"columns":   "grid.columns",
	"overscan":  "grid.overscan",
	"log-file":  "logger.log_file",
	"log-level": "logger.level",
}

// NewRootCmd returns the root command. Without a subcommand it runs the
// interactive demo.
func NewRootCmd() *cobra.Command {
	s := &session{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:           "griddemo",
		Short:         "griddemo shows a windowed grid of generated items in the terminal.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.setup(cmd.Flags())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return s.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd.Context(), s)
		},
	}
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&s.configFile, "config", "c", "", "config file (default is ./griddemo.yaml)")
	flags.Int("items", 0, "number of items")
	flags.String("direction", "", "scroll direction, vertical or horizontal")
	flags.Int("columns", 0, "fixed number of lanes")
	flags.Int("overscan", 0, "cells rendered beyond the viewport")
	flags.String("log-file", "", "write logs to this file")
	flags.String("log-level", "", "log level")

	rootCmd.AddCommand(newSnapshotCmd(s))
	return rootCmd
}

// Execute runs the root command and exits on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (s *session) setup(flags *pflag.FlagSet) error {
	v, err := config.Read(s.configFile)
	if err != nil {
		return err
	}
	if err := bindFlags(v, flags); err != nil {
		return err
	}
	cfg, err := config.FromViper(v)
	if err != nil {
		return err
	}
	logger, closeLogger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		return err
	}
	s.cfg, s.logger, s.closeLogger = cfg, logger, closeLogger
	s.logger.Info("starting griddemo",
		zap.String("version", Version),
		zap.Int("items", cfg.Grid.Items),
		zap.String("direction", cfg.Grid.Direction),
	)
	return nil
}

func (s *session) close() error {
	if s.closeLogger == nil {
		return nil
	}
	err := s.closeLogger()
	s.closeLogger = nil
	return err
}

// bindFlags lets explicitly set flags override the file and environment.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range gridFlags {
		flag := flags.Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("binding flag %s: %w", name, err)
		}
	}
	return nil
}
