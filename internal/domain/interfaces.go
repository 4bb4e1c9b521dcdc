package domain

import (
	"context"
	"io"
)

// LineParser turns transcript lines into records.
type LineParser interface {
	// Process parses a single line; ok is false when the line yields no record
	Process(line string) (rec Record, ok bool)

	// ParseLines parses lines in order and tallies rejections
	ParseLines(lines []string) ([]Record, ProcessingStats)
}

// Batcher parses a full transcript, possibly in parallel, preserving line order.
type Batcher interface {
	Process(ctx context.Context, lines []string) ([]Record, ProcessingStats, error)
}

// Sink renders an ordered record sequence into an artifact.
type Sink interface {
	// Write serializes records to w; an empty slice yields ErrNoRecords
	Write(w io.Writer, records []Record) error

	// ContentType is the MIME type of the artifact
	ContentType() string

	// Extension is the file extension including the leading dot
	Extension() string
}
