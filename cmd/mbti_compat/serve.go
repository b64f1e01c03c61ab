package main

import (
	"fmt"

	"github.com/jonathan/mbti-compat/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  `Start an HTTP server that exposes the compatibility, score and type endpoints.`,
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on (overrides MBTI_PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	svc, client, err := newService(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer client.Close() //nolint:errcheck

	srv := server.New(server.Config{Port: cfg.Port}, svc, logger)
	if err := srv.Start(cmd.Context()); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
