package export

import (
	"encoding/csv"
	"io"

	"github.com/humeraxkhan/SENSOR-NAME-EXTRACTOR/internal/domain"
)

// CSVWriter writes records as comma separated values with a header row.
type CSVWriter struct{}

// NewCSVWriter creates a CSV sink.
func NewCSVWriter() *CSVWriter {
	return &CSVWriter{}
}

// Write writes the header row followed by one row per record.
func (c *CSVWriter) Write(w io.Writer, records []domain.Record) error {
	if len(records) == 0 {
		return domain.ErrNoRecords
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(Columns); err != nil {
		return domain.ExportError("write header", err)
	}
	for _, rec := range records {
		if err := writer.Write(row(rec)); err != nil {
			return domain.ExportError("write row", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return domain.ExportError("flush csv", err)
	}
	return nil
}

func (c *CSVWriter) ContentType() string { return "text/csv; charset=utf-8" }

func (c *CSVWriter) Extension() string { return ".csv" }
