// Package export serializes the calculation history for download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/nbogalheiro/npi-calculator/internal/domain"
)

// CSVFilename is the attachment name for the history download.
const CSVFilename = "history.csv"

var csvHeader = []string{"id", "expression", "result", "created_at"}

// WriteCSV writes the history as CSV: header row first, one record per
// calculation, timestamps in RFC 3339 and results in the shortest exact
// float representation.
func WriteCSV(w io.Writer, calculations []domain.Calculation) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, c := range calculations {
		record := []string{
			c.ID.String(),
			c.Expression,
			strconv.FormatFloat(c.Result, 'f', -1, 64),
			c.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
