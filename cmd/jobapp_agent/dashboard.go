package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/craigouma/Adaptive-AI-Job-Application/internal/apiclient"
	"github.com/craigouma/Adaptive-AI-Job-Application/internal/observability"
	"github.com/craigouma/Adaptive-AI-Job-Application/internal/types"
)

var (
	dashboardServerURL string
	dashboardRole      string
	dashboardStatus    string
	dashboardLimit     int
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the admin dashboard in the terminal",
	Long: `Fetch the application listing, aggregate analytics, and per-question
statistics concurrently and render them.

Admin credentials are read from ADMIN_EMAIL and ADMIN_PASSWORD.`,
	RunE: runDashboard,
}

func init() {
	dashboardCmd.Flags().StringVar(&dashboardServerURL, "server", "http://localhost:8080", "Base URL of the API server")
	dashboardCmd.Flags().StringVarP(&dashboardRole, "role", "r", "", "Only show applications for this role")
	dashboardCmd.Flags().StringVar(&dashboardStatus, "status", "", "Only show applications with this status")
	dashboardCmd.Flags().IntVar(&dashboardLimit, "limit", 20, "Applications to list")
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	admin, err := adminLogin(cmd, dashboardServerURL)
	if err != nil {
		return err
	}

	dash, err := admin.FetchDashboard(cmd.Context(), apiclient.ListFilter{
		Role:   types.Role(dashboardRole),
		Status: types.ApplicationStatus(dashboardStatus),
		Limit:  dashboardLimit,
	})
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintOverview(&dash.Overview)
	printer.PrintApplications(dash.Applications, dash.Total)
	printer.PrintQuestions(dash.Questions)
	return nil
}
