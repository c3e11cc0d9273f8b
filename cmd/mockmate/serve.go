package main

import (
	"fmt"

	"github.com/jonathan/mockmate/internal/server"
	"github.com/jonathan/mockmate/internal/server/ratelimit"
	"github.com/spf13/cobra"
)

var (
	servePort     int
	serveProvider providerFlags
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for résumé upload, question generation, answer evaluation and report export.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, 8080)")
	serveProvider.register(serveCmd)
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if servePort > 0 {
		appConfig.Port = servePort
	}
	if err := serveProvider.apply(appConfig); err != nil {
		return err
	}

	ctx := cmd.Context()
	client, err := newLLMClient(ctx, appConfig)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	interviewer, err := newInterviewer(ctx, appConfig, client)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:             appConfig.Port,
		MaxUploadBytes:   appConfig.MaxUploadBytes(),
		ProfileCacheSize: appConfig.ProfileCacheSize,
		RateLimit:        ratelimit.NewConfig(appConfig.RateLimit, appConfig.RateLimitPerMin),
	}, interviewer)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
