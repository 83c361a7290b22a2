package export

import (
	"fmt"
	"io"
	"time"

	"github.com/craigouma/Adaptive-AI-Job-Application/internal/types"
)

// WriteReport renders applications as a human-readable text report.
func WriteReport(w io.Writer, apps []types.StoredApplication, generatedAt time.Time) error {
	_, err := fmt.Fprintf(w, "JOB APPLICATIONS REPORT\nGenerated: %s\nTotal Applications: %d\n\n",
		generatedAt.Format("2006-01-02 15:04:05"), len(apps))
	if err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}

	for i := range apps {
		if err := writeReportEntry(w, i+1, &apps[i]); err != nil {
			return err
		}
	}
	return nil
}

func writeReportEntry(w io.Writer, index int, app *types.StoredApplication) error {
	values := rowValues(app)

	score := values[6]
	if score == "" {
		score = "Not scored"
	}

	_, err := fmt.Fprintf(w, `
APPLICATION #%d
=====================================
ID: %s
Name: %s
Email: %s
Role: %s
Experience: %s
Status: %s
Score: %s
Applied: %s

Technologies/Tools: %s

Project Description:
%s

Availability: %s

`,
		index,
		values[0],
		orNA(values[1]),
		orNA(values[2]),
		values[3],
		orNA(values[4]),
		values[5],
		score,
		values[7],
		orNA(values[8]),
		orNA(values[9]),
		orNA(values[10]),
	)
	if err != nil {
		return fmt.Errorf("failed to write report entry: %w", err)
	}
	return nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
