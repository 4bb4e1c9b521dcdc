package extract

import (
	"context"
	"sync"

	"github.com/humeraxkhan/SENSOR-NAME-EXTRACTOR/internal/domain"
)

// ProgressFunc receives the running count of processed lines. Calls are
// serialized and the count never decreases.
type ProgressFunc func(processed int)

// BatchProcessor parses a transcript in fixed-size chunks across a worker pool.
// Output order always matches input order.
type BatchProcessor struct {
	parser     *Parser
	maxWorkers int
	chunkSize  int
	progress   ProgressFunc
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithProgress registers a progress callback.
func WithProgress(fn ProgressFunc) BatchOption {
	return func(bp *BatchProcessor) { bp.progress = fn }
}

// NewBatchProcessor creates a new batch processor.
func NewBatchProcessor(parser *Parser, maxWorkers, chunkSize int, opts ...BatchOption) *BatchProcessor {
	if parser == nil {
		parser = NewParser()
	}
	if maxWorkers <= 0 {
		maxWorkers = 4
	}
	if chunkSize <= 0 {
		chunkSize = 256
	}
	bp := &BatchProcessor{
		parser:     parser,
		maxWorkers: maxWorkers,
		chunkSize:  chunkSize,
	}
	for _, opt := range opts {
		opt(bp)
	}
	return bp
}

type chunkResult struct {
	records []domain.Record
	stats   domain.ProcessingStats
}

// Process parses all lines. On cancellation it stops handing out chunks and
// returns ctx.Err() with no records.
func (bp *BatchProcessor) Process(ctx context.Context, lines []string) ([]domain.Record, domain.ProcessingStats, error) {
	if len(lines) == 0 {
		return nil, domain.ProcessingStats{}, ctx.Err()
	}

	type workItem struct {
		index int
		lines []string
	}

	var items []workItem
	for start := 0; start < len(lines); start += bp.chunkSize {
		end := min(start+bp.chunkSize, len(lines))
		items = append(items, workItem{index: len(items), lines: lines[start:end]})
	}

	workChan := make(chan workItem, len(items))
	for _, item := range items {
		workChan <- item
	}
	close(workChan)

	// Each worker writes only its own indexes.
	results := make([]chunkResult, len(items))
	var (
		progressMu sync.Mutex
		processed  int
		wg         sync.WaitGroup
	)

	for i := 0; i < bp.maxWorkers && i < len(items); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range workChan {
				if ctx.Err() != nil {
					return
				}
				recs, stats := bp.parser.ParseLines(item.lines)
				results[item.index] = chunkResult{records: recs, stats: stats}

				progressMu.Lock()
				processed += len(item.lines)
				if bp.progress != nil {
					bp.progress(processed)
				}
				progressMu.Unlock()
			}
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, domain.ProcessingStats{}, err
	}

	var records []domain.Record
	var stats domain.ProcessingStats
	for _, r := range results {
		records = append(records, r.records...)
		stats.Add(r.stats)
	}
	return records, stats, nil
}
