package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/humeraxkhan/SENSOR-NAME-EXTRACTOR/internal/domain"
	"github.com/humeraxkhan/SENSOR-NAME-EXTRACTOR/internal/export"
)

// maxSourceWidth bounds the Product Line column in the console table.
const maxSourceWidth = 48

// ExtractedBanner heads the record table.
const ExtractedBanner = "✅ Extracted Queries"

// Table writes rows under headers using aligned columns.
func Table(w io.Writer, headers []string, rows [][]string) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, strings.Join(headers, "\t"))

	separator := make([]string, len(headers))
	for i := range separator {
		separator[i] = strings.Repeat("-", len([]rune(headers[i])))
	}
	fmt.Fprintln(tw, strings.Join(separator, "\t"))

	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	_ = tw.Flush()
}

// RecordTable renders records under the export columns, shortening the
// source line so rows stay readable.
func (c *Console) RecordTable(records []domain.Record) {
	if c.quiet {
		return
	}

	c.Section(ExtractedBanner)
	rows := make([][]string, len(records))
	for i, rec := range records {
		rows[i] = []string{
			Truncate(rec.SourceLine, maxSourceWidth),
			rec.ProductName,
			string(rec.SensorType),
			rec.QuantityOrEmpty(),
			rec.DateOrEmpty(),
		}
	}
	Table(c.out, export.Columns, rows)
}

// Stats prints the per-run line tally.
func (c *Console) Stats(stats domain.ProcessingStats) {
	if c.quiet {
		return
	}

	fmt.Fprintln(c.out)
	c.KeyValue("Lines read", strconv.Itoa(stats.TotalLines))
	c.KeyValue("Queries extracted", strconv.Itoa(stats.Accepted))
	c.KeyValue("Blank", strconv.Itoa(stats.BlankLines))
	c.KeyValue("Other senders", strconv.Itoa(stats.MissingMarker))
	c.KeyValue("Chatter", strconv.Itoa(stats.Discarded))
	c.KeyValue("Undated", strconv.Itoa(stats.Undated))
	c.KeyValue("Too short", strconv.Itoa(stats.TooSparse))
}

// Truncate shortens s to at most width runes, marking the cut with "...".
func Truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}
