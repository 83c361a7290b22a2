// Package observability provides formatted terminal output for the admin
// dashboard CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/craigouma/Adaptive-AI-Job-Application/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted dashboard output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintOverview outputs a human-readable summary of the aggregate analytics.
func (p *Printer) PrintOverview(overview *types.ApplicationAnalytics) {
	if overview == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total applications:  %d\n", overview.TotalApplications))
	sb.WriteString(fmt.Sprintf("Completion rate:     %d%%\n", overview.CompletionRate))
	sb.WriteString(fmt.Sprintf("Avg completion:      %d min\n", overview.AverageCompletionTime))
	sb.WriteString("\nBy role:\n")
	for role, count := range overview.ApplicationsByRole {
		sb.WriteString(fmt.Sprintf("  %-25s %d\n", role, count))
	}

	if len(overview.TopCandidates) > 0 {
		sb.WriteString("\nTop candidates:\n")
		for i, app := range overview.TopCandidates {
			if i >= maxItemsToShow {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(overview.TopCandidates)-maxItemsToShow))
				break
			}
			score := "-"
			if app.Score != nil {
				score = fmt.Sprintf("%d", *app.Score)
			}
			sb.WriteString(fmt.Sprintf("  %s  %-20s score=%s\n", shortID(app.ID.String()), app.Role, score))
		}
	}

	p.printBox("APPLICATION OVERVIEW", strings.TrimRight(sb.String(), "\n"))
}

// PrintQuestions outputs per-question response statistics.
func (p *Printer) PrintQuestions(questions []types.QuestionAnalytics) {
	if len(questions) == 0 {
		return
	}

	var sb strings.Builder
	for _, q := range questions {
		sb.WriteString(fmt.Sprintf("%s\n", q.Label))
		sb.WriteString(fmt.Sprintf("  responses=%d  avg length=%d  drop-off=%.1f%%\n",
			q.ResponseCount, q.AverageResponseLength, q.DropOffRate))
		for i, resp := range q.CommonResponses {
			if i >= maxItemsToShow {
				break
			}
			sb.WriteString(fmt.Sprintf("    %dx %s\n", resp.Count, resp.Value))
		}
	}

	p.printBox("QUESTION ANALYTICS", strings.TrimRight(sb.String(), "\n"))
}

// PrintApplications outputs a compact application listing.
func (p *Printer) PrintApplications(apps []types.StoredApplication, total int) {
	var sb strings.Builder
	if len(apps) == 0 {
		sb.WriteString("No applications found.")
	}
	for _, app := range apps {
		name := ""
		for _, a := range app.Answers {
			if a.Key == "name" {
				name = a.ValueString()
				break
			}
		}
		score := "-"
		if app.Score != nil {
			score = fmt.Sprintf("%d", *app.Score)
		}
		sb.WriteString(fmt.Sprintf("%s  %-18s %-12s score=%-3s %s\n",
			shortID(app.ID.String()), app.Role, app.Status, score, name))
	}
	if total > len(apps) {
		sb.WriteString(fmt.Sprintf("... %d of %d shown\n", len(apps), total))
	}

	p.printBox(fmt.Sprintf("APPLICATIONS (%d)", total), strings.TrimRight(sb.String(), "\n"))
}

// shortID abbreviates a UUID for single-line listings.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
