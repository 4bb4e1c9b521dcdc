package export

import (
	"encoding/json"
	"io"

	"github.com/humeraxkhan/SENSOR-NAME-EXTRACTOR/internal/domain"
)

// JSONWriter writes records as an indented JSON array. Absent quantity and
// date fields are encoded as null.
type JSONWriter struct{}

// NewJSONWriter creates a JSON sink.
func NewJSONWriter() *JSONWriter {
	return &JSONWriter{}
}

func (j *JSONWriter) Write(w io.Writer, records []domain.Record) error {
	if len(records) == 0 {
		return domain.ErrNoRecords
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return domain.ExportError("encode json", err)
	}
	return nil
}

func (j *JSONWriter) ContentType() string { return "application/json" }

func (j *JSONWriter) Extension() string { return ".json" }
