package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/craigouma/Adaptive-AI-Job-Application/internal/apiclient"
	"github.com/craigouma/Adaptive-AI-Job-Application/internal/export"
	"github.com/craigouma/Adaptive-AI-Job-Application/internal/types"
)

var (
	exportServerURL string
	exportFormat    string
	exportRole      string
	exportStatus    string
	exportOutput    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Download applications as CSV, XLSX, or a text report",
	Long: `Download every application matching the filters through the admin API and
write it to a local file.

Admin credentials are read from ADMIN_EMAIL and ADMIN_PASSWORD.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportServerURL, "server", "http://localhost:8080", "Base URL of the API server")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "Export format: csv, xlsx, or report")
	exportCmd.Flags().StringVarP(&exportRole, "role", "r", "", "Only export applications for this role")
	exportCmd.Flags().StringVar(&exportStatus, "status", "", "Only export applications with this status")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (defaults to a dated name)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}

	admin, err := adminLogin(cmd, exportServerURL)
	if err != nil {
		return err
	}

	data, err := admin.Export(cmd.Context(), format, apiclient.ListFilter{
		Role:   types.Role(exportRole),
		Status: types.ApplicationStatus(exportStatus),
	})
	if err != nil {
		return err
	}

	output := exportOutput
	if output == "" {
		output = format.Filename(time.Now())
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	fmt.Printf("Wrote %d bytes to %s\n", len(data), output)
	return nil
}
