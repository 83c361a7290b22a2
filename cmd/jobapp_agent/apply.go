package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/craigouma/Adaptive-AI-Job-Application/internal/apiclient"
	"github.com/craigouma/Adaptive-AI-Job-Application/internal/flow"
	"github.com/craigouma/Adaptive-AI-Job-Application/internal/types"
)

var (
	applyServerURL string
	applyRole      string
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Walk through a job application interactively",
	Long:  `Answer the adaptive question flow for a role from the terminal and submit the finished application.`,
	RunE:  runApply,
}

func init() {
	applyCmd.Flags().StringVar(&applyServerURL, "server", "http://localhost:8080", "Base URL of the API server")
	applyCmd.Flags().StringVarP(&applyRole, "role", "r", "", "Role to apply for (prompted if omitted)")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	reader := bufio.NewReader(os.Stdin)

	role := types.Role(applyRole)
	if role == "" {
		selected, err := promptRole(reader)
		if err != nil {
			return err
		}
		role = selected
	}
	if !role.IsValid() {
		return fmt.Errorf("unknown role %q; valid roles: %s", role, roleList())
	}

	client := apiclient.New(applyServerURL, nil)
	if err := client.Health(ctx); err != nil {
		return fmt.Errorf("server is not reachable at %s: %w", applyServerURL, err)
	}

	controller := flow.NewController(client, role)
	fmt.Printf("\nApplying for: %s\n\n", role.Title())

	question, err := controller.Start(ctx)
	if err != nil && !recoverable(err) {
		return err
	}

	for question != nil {
		state := controller.State()
		fmt.Printf("[%d/%d] %s\n", state.CurrentStep, state.TotalSteps, question.Label)

		value, err := promptAnswer(reader, question)
		if err != nil {
			return err
		}

		question, err = controller.SubmitAnswer(ctx, value)
		if err != nil && !recoverable(err) {
			var serr *flow.SubmissionError
			if errors.As(err, &serr) {
				fmt.Println("Submission failed, retrying once...")
				if retryErr := controller.RetrySubmit(ctx); retryErr != nil {
					return retryErr
				}
				break
			}
			return err
		}
		st := controller.State()
		fmt.Printf("Progress: %d%%\n\n", st.Progress())
	}

	fmt.Println(controller.State().Message)
	return nil
}

// recoverable reports whether the flow degraded but can continue.
func recoverable(err error) bool {
	if err == nil {
		return true
	}
	var rerr *flow.RecoverableError
	if errors.As(err, &rerr) {
		fmt.Println("(the next question could not be generated; continuing with a standard one)")
		return true
	}
	return false
}

func promptRole(reader *bufio.Reader) (types.Role, error) {
	fmt.Println("Which role are you applying for?")
	for i, role := range types.Roles {
		fmt.Printf("  %d. %s\n", i+1, role.Title())
	}
	fmt.Print("> ")

	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || choice < 1 || choice > len(types.Roles) {
		return "", fmt.Errorf("enter a number between 1 and %d", len(types.Roles))
	}
	return types.Roles[choice-1], nil
}

// promptAnswer reads one answer, re-prompting until it satisfies the question.
func promptAnswer(reader *bufio.Reader, q *types.Question) (any, error) {
	for i, option := range q.Options {
		fmt.Printf("  %d. %s\n", i+1, option)
	}

	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil, err
		}
		input := strings.TrimSpace(line)

		if input == "" {
			if q.Required {
				fmt.Println("An answer is required.")
				continue
			}
			return "", nil
		}

		switch q.Type {
		case types.QuestionSelect:
			choice, err := strconv.Atoi(input)
			if err != nil || choice < 1 || choice > len(q.Options) {
				fmt.Printf("Enter a number between 1 and %d.\n", len(q.Options))
				continue
			}
			return q.Options[choice-1], nil
		case types.QuestionNumber:
			n, err := strconv.ParseFloat(input, 64)
			if err != nil {
				fmt.Println("Enter a number.")
				continue
			}
			return n, nil
		default:
			return input, nil
		}
	}
}

func roleList() string {
	names := make([]string, len(types.Roles))
	for i, role := range types.Roles {
		names[i] = string(role)
	}
	return strings.Join(names, ", ")
}
