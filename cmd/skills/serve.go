package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eliyastein/skills/pkg/config"
	"github.com/eliyastein/skills/pkg/logger"
	"github.com/eliyastein/skills/pkg/presenter"
	"github.com/eliyastein/skills/pkg/server"
	"github.com/eliyastein/skills/pkg/telemetry"
	"github.com/eliyastein/skills/pkg/version"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve skill discovery and installation over MCP on stdio",
	Long: `Run an MCP (Model Context Protocol) server on stdio exposing two tools to the
calling agent: list_skills and install_skill. The server runs until stdin
closes or it is interrupted.`,
	Run: func(cmd *cobra.Command, _ []string) {
		runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().Bool("tracing", false, "Export traces over OTLP for this server run")
	bindServeFlags()
	rootCmd.AddCommand(serveCmd)
}

func bindServeFlags() {
	viper.BindPFlag("tracing.enabled", serveCmd.Flags().Lookup("tracing"))
}

func runServe(cmd *cobra.Command) {
	ctx := cmd.Context()

	// stdout carries the protocol stream; logs must go to stderr.
	logger.SetLogOutput(os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		presenter.Error(err, "Failed to load configuration")
		os.Exit(1)
	}

	shutdown, err := telemetry.InitTracer(ctx, telemetry.Config{
		Enabled:        cfg.Tracing.Enabled,
		ServiceName:    "skills",
		ServiceVersion: version.Version,
		SamplerType:    cfg.Tracing.SamplerType,
		SamplerRatio:   cfg.Tracing.SamplerRatio,
	})
	if err != nil {
		presenter.Error(err, "Failed to initialize tracing")
		os.Exit(1)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			logger.G(ctx).WithError(err).Warn("failed to shut down tracing")
		}
	}()

	s, err := server.New(cfg)
	if err != nil {
		presenter.Error(err, "Failed to create server")
		os.Exit(1)
	}

	logger.G(ctx).WithField("source_root", cfg.SourceRoot).Info("serving skills over MCP stdio")
	if err := s.Serve(ctx, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
		presenter.Error(err, "Server terminated")
		os.Exit(1)
	}
}
