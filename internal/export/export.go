// Package export renders stored applications as downloadable files: CSV,
// XLSX, and a plain-text report.
package export

import (
	"fmt"
	"time"

	"github.com/craigouma/Adaptive-AI-Job-Application/internal/types"
)

// Format selects the export encoding.
type Format string

// Supported export formats.
const (
	FormatCSV    Format = "csv"
	FormatXLSX   Format = "xlsx"
	FormatReport Format = "report"
)

// ParseFormat maps a query-string value to a Format. Empty defaults to CSV.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "csv":
		return FormatCSV, nil
	case "xlsx":
		return FormatXLSX, nil
	case "report", "pdf", "txt":
		return FormatReport, nil
	}
	return "", fmt.Errorf("unsupported export format: %q", s)
}

// ContentType returns the MIME type served for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatReport:
		return "text/plain"
	default:
		return "text/csv"
	}
}

// Filename returns the attachment name for an export generated at t.
func (f Format) Filename(t time.Time) string {
	ext := "csv"
	switch f {
	case FormatXLSX:
		ext = "xlsx"
	case FormatReport:
		ext = "txt"
	}
	return fmt.Sprintf("applications_%s.%s", t.Format("2006-01-02"), ext)
}

// columns is the fixed export column set shared by all formats.
var columns = []string{
	"ID",
	"Name",
	"Email",
	"Role",
	"Experience",
	"Status",
	"Score",
	"Applied Date",
	"Technologies/Tools",
	"Project Description",
	"Availability",
}

// rowValues flattens one application into the export column set. Role
// variants of the same question fall back to each other so designer and
// engineer applications land in the same columns.
func rowValues(app *types.StoredApplication) []string {
	answers := make(map[string]string, len(app.Answers))
	for _, a := range app.Answers {
		answers[a.Key] = a.ValueString()
	}

	score := ""
	if app.Score != nil {
		score = fmt.Sprintf("%d", *app.Score)
	}

	return []string{
		app.ID.String(),
		answers["name"],
		answers["email"],
		string(app.Role),
		answers["experience"],
		string(app.Status),
		score,
		app.CreatedAt.Format("2006-01-02"),
		firstOf(answers, "technologies", "design_tools"),
		firstOf(answers, "project", "design_process", "challenging_project"),
		answers["availability"],
	}
}

func firstOf(answers map[string]string, keys ...string) string {
	for _, key := range keys {
		if answers[key] != "" {
			return answers[key]
		}
	}
	return ""
}
