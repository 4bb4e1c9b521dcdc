package export

import (
	"io"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/humeraxkhan/SENSOR-NAME-EXTRACTOR/internal/domain"
)

// DefaultSheetName names the worksheet when none is configured.
const DefaultSheetName = "Sensor Queries"

const (
	minColWidth = 10
	maxColWidth = 80
)

// XLSXWriter writes records to a single-sheet workbook with a bold, frozen
// header row.
type XLSXWriter struct {
	sheet string
}

// NewXLSXWriter creates a workbook sink. An empty sheet name selects
// DefaultSheetName.
func NewXLSXWriter(sheet string) *XLSXWriter {
	if sheet == "" {
		sheet = DefaultSheetName
	}
	return &XLSXWriter{sheet: sheet}
}

// Sheet returns the worksheet name records are written to.
func (x *XLSXWriter) Sheet() string { return x.sheet }

func (x *XLSXWriter) Write(w io.Writer, records []domain.Record) error {
	if len(records) == 0 {
		return domain.ErrNoRecords
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), x.sheet); err != nil {
		return domain.ExportError("name sheet", err)
	}

	widths := make([]int, len(Columns))
	if err := x.writeRow(f, 1, Columns, widths); err != nil {
		return err
	}
	for i, rec := range records {
		if err := x.writeRow(f, i+2, row(rec), widths); err != nil {
			return err
		}
	}

	if err := x.styleHeader(f); err != nil {
		return err
	}
	if err := x.sizeColumns(f, widths); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return domain.ExportError("write workbook", err)
	}
	return nil
}

func (x *XLSXWriter) writeRow(f *excelize.File, rowNum int, values []string, widths []int) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return domain.ExportError("resolve cell", err)
	}

	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
		if n := utf8.RuneCountInString(v); n > widths[i] {
			widths[i] = n
		}
	}

	if err := f.SetSheetRow(x.sheet, cell, &cells); err != nil {
		return domain.ExportError("write row", err)
	}
	return nil
}

func (x *XLSXWriter) styleHeader(f *excelize.File) error {
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return domain.ExportError("create header style", err)
	}

	last, err := excelize.CoordinatesToCellName(len(Columns), 1)
	if err != nil {
		return domain.ExportError("resolve cell", err)
	}
	if err := f.SetCellStyle(x.sheet, "A1", last, style); err != nil {
		return domain.ExportError("style header", err)
	}

	err = f.SetPanes(x.sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
	if err != nil {
		return domain.ExportError("freeze header", err)
	}
	return nil
}

func (x *XLSXWriter) sizeColumns(f *excelize.File, widths []int) error {
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return domain.ExportError("resolve column", err)
		}
		width := float64(min(max(w+2, minColWidth), maxColWidth))
		if err := f.SetColWidth(x.sheet, col, col, width); err != nil {
			return domain.ExportError("set column width", err)
		}
	}
	return nil
}

func (x *XLSXWriter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (x *XLSXWriter) Extension() string { return ".xlsx" }
