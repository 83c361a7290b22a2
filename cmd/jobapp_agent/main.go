// Package main provides the entry point for the adaptive job application backend.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobapp_agent",
	Short: "Adaptive job application backend",
	Long:  "Adaptive job application backend: serves an AI-driven question flow for candidates and a review dashboard API for admins.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
