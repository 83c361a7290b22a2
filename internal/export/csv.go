package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/craigouma/Adaptive-AI-Job-Application/internal/types"
)

// WriteCSV renders applications as CSV with a fixed header row.
func WriteCSV(w io.Writer, apps []types.StoredApplication) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for i := range apps {
		if err := writer.Write(rowValues(&apps[i])); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
