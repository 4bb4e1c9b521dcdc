// Package export renders extracted records as spreadsheet, CSV or JSON artifacts.
package export

import (
	"fmt"
	"strings"

	"github.com/humeraxkhan/SENSOR-NAME-EXTRACTOR/internal/domain"
)

// Supported format names.
const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// Columns is the header row shared by every tabular format, in output order.
var Columns = []string{
	"Product Line",
	"Product Name (with Model)",
	"Sensor Type",
	"Extracted Quantity",
	"Date",
}

// ForFormat returns the sink for a format name.
func ForFormat(name string) (domain.Sink, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case FormatXLSX:
		return NewXLSXWriter(""), nil
	case FormatCSV:
		return NewCSVWriter(), nil
	case FormatJSON:
		return NewJSONWriter(), nil
	default:
		return nil, domain.ValidationError(fmt.Sprintf("unsupported export format: %q", name), nil)
	}
}

// row flattens a record into Columns order. Absent fields become empty cells.
func row(rec domain.Record) []string {
	return []string{
		rec.SourceLine,
		rec.ProductName,
		string(rec.SensorType),
		rec.QuantityOrEmpty(),
		rec.DateOrEmpty(),
	}
}
