package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/craigouma/Adaptive-AI-Job-Application/internal/config"
	"github.com/craigouma/Adaptive-AI-Job-Application/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the candidate question flow and the admin dashboard API.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.NewServerConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Addr = fmt.Sprintf(":%d", servePort)
	}

	srv, err := server.New(server.Config{
		Addr:        cfg.Addr,
		DatabaseURL: cfg.DatabaseURL,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
