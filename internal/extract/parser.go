// Package extract turns chat transcript lines into sensor query records.
package extract

import (
	"strings"
	"unicode"

	"github.com/humeraxkhan/SENSOR-NAME-EXTRACTOR/internal/domain"
)

// Parser assembles records from transcript lines. It holds no mutable state
// and is safe for concurrent use.
type Parser struct{}

// NewParser creates a new line parser.
func NewParser() *Parser {
	return &Parser{}
}

// Process parses a single line. ok is false when the line is noise or its
// product text is too sparse to name a real part.
func (p *Parser) Process(line string) (domain.Record, bool) {
	rec, why := p.assemble(line)
	return rec, why == accepted
}

// ParseLines parses lines in order, returning the accepted records and a
// tally of what happened to every line.
func (p *Parser) ParseLines(lines []string) ([]domain.Record, domain.ProcessingStats) {
	var records []domain.Record
	stats := domain.ProcessingStats{TotalLines: len(lines)}

	for _, line := range lines {
		rec, why := p.assemble(line)
		switch why {
		case accepted:
			records = append(records, rec)
			stats.Accepted++
		case rejectBlank:
			stats.BlankLines++
		case rejectNoMarker:
			stats.MissingMarker++
		case rejectDiscard:
			stats.Discarded++
		case rejectUndated:
			stats.Undated++
		case rejectSparse:
			stats.TooSparse++
		}
	}

	return records, stats
}

func (p *Parser) assemble(line string) (domain.Record, rejection) {
	if why := screen(line); why != accepted {
		return domain.Record{}, why
	}

	body := messageBody(line)
	product := CleanProduct(body)
	if !looksLikeProduct(product) {
		return domain.Record{}, rejectSparse
	}

	rec := domain.Record{
		SourceLine:  strings.TrimSpace(line),
		ProductName: product,
		SensorType:  Tag(product),
	}
	if qty, ok := ExtractQuantity(body); ok {
		rec.Quantity = &qty
	}
	if date, ok := ExtractDate(line); ok {
		rec.Date = &date
	}
	return rec, accepted
}

// messageBody is the text after the last closing bracket, or the whole line.
// Exports can carry more than one bracketed segment before the message.
func messageBody(line string) string {
	if i := strings.LastIndex(line, "]"); i >= 0 {
		return line[i+1:]
	}
	return line
}

// looksLikeProduct rejects descriptions that are a single bare word.
func looksLikeProduct(name string) bool {
	if name == "" {
		return false
	}
	return len(strings.Fields(name)) >= 2 ||
		strings.Contains(name, "-") ||
		strings.IndexFunc(name, unicode.IsDigit) >= 0
}
