package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/craigouma/Adaptive-AI-Job-Application/internal/apiclient"
	"github.com/craigouma/Adaptive-AI-Job-Application/internal/types"
)

var (
	scoreServerURL string
	scoreRole      string
	scoreStatus    string
	scoreDelay     time.Duration
	scoreAll       bool
)

var scoreCmd = &cobra.Command{
	Use:   "score [application-id...]",
	Short: "Run AI scoring for applications",
	Long: `Score one or more applications through the admin API. With --all, every
unscored application matching the filters is scored sequentially with a fixed
delay between calls.

Admin credentials are read from ADMIN_EMAIL and ADMIN_PASSWORD.`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreServerURL, "server", "http://localhost:8080", "Base URL of the API server")
	scoreCmd.Flags().StringVarP(&scoreRole, "role", "r", "", "Only score applications for this role (with --all)")
	scoreCmd.Flags().StringVar(&scoreStatus, "status", "", "Only score applications with this status (with --all)")
	scoreCmd.Flags().DurationVar(&scoreDelay, "delay", 2*time.Second, "Delay between scoring calls")
	scoreCmd.Flags().BoolVar(&scoreAll, "all", false, "Score every unscored application matching the filters")
	rootCmd.AddCommand(scoreCmd)
}

// adminLogin builds an authenticated admin client from the environment.
func adminLogin(cmd *cobra.Command, serverURL string) (*apiclient.AdminClient, error) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil, fmt.Errorf("ADMIN_EMAIL and ADMIN_PASSWORD environment variables are required")
	}

	admin := apiclient.NewAdmin(serverURL, nil)
	if err := admin.Login(cmd.Context(), email, password); err != nil {
		return nil, fmt.Errorf("admin login failed: %w", err)
	}
	return admin, nil
}

func runScore(cmd *cobra.Command, args []string) error {
	if !scoreAll && len(args) == 0 {
		return fmt.Errorf("provide application IDs or use --all")
	}

	admin, err := adminLogin(cmd, scoreServerURL)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	var ids []uuid.UUID
	if scoreAll {
		result, err := admin.ListApplications(ctx, apiclient.ListFilter{
			Role:   types.Role(scoreRole),
			Status: types.ApplicationStatus(scoreStatus),
			Limit:  100,
		})
		if err != nil {
			return err
		}
		for _, app := range result.Applications {
			if app.Score == nil {
				ids = append(ids, app.ID)
			}
		}
		fmt.Printf("Scoring %d unscored applications (of %d listed)\n", len(ids), len(result.Applications))
	} else {
		for _, arg := range args {
			id, err := uuid.Parse(arg)
			if err != nil {
				return fmt.Errorf("invalid application ID %q: %w", arg, err)
			}
			ids = append(ids, id)
		}
	}

	if len(ids) == 0 {
		fmt.Println("Nothing to score.")
		return nil
	}

	scores, err := admin.ScoreBatch(ctx, ids, scoreDelay)
	if err != nil {
		return err
	}

	for _, score := range scores {
		fmt.Printf("%s  overall=%d  skills=%d  experience=%d  communication=%d  culture=%d\n",
			score.ApplicationID, score.OverallScore, score.SkillsScore,
			score.ExperienceScore, score.CommunicationScore, score.CultureFitScore)
	}
	if failed := len(ids) - len(scores); failed > 0 {
		fmt.Printf("%d applications could not be scored; see the log above.\n", failed)
	}
	return nil
}
