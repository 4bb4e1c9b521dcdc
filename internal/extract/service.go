package extract

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/humeraxkhan/SENSOR-NAME-EXTRACTOR/internal/domain"
	"github.com/humeraxkhan/SENSOR-NAME-EXTRACTOR/internal/observability"
	"github.com/humeraxkhan/SENSOR-NAME-EXTRACTOR/internal/transcript"
)

// Result is the outcome of one extraction run.
type Result struct {
	RunID    string
	Records  []domain.Record
	Stats    domain.ProcessingStats
	Duration time.Duration
}

// Empty reports whether the run produced no records.
func (r *Result) Empty() bool {
	return len(r.Records) == 0
}

// Service orchestrates a transcript extraction run
type Service struct {
	batcher domain.Batcher
	logger  *observability.Logger
}

// NewService creates a new extraction service. A nil batcher parses with the
// default worker pool; a nil logger discards output.
func NewService(batcher domain.Batcher, logger *observability.Logger) *Service {
	if batcher == nil {
		batcher = NewBatchProcessor(NewParser(), 0, 0)
	}
	if logger == nil {
		logger = observability.Nop()
	}
	return &Service{
		batcher: batcher,
		logger:  logger.WithOperation("extract"),
	}
}

// Process reads a whole transcript from r and extracts its records.
func (s *Service) Process(ctx context.Context, r io.Reader) (*Result, error) {
	lines, err := transcript.Read(r)
	if err != nil {
		return nil, err
	}
	return s.ProcessLines(ctx, lines)
}

// ProcessLines extracts records from already split transcript lines. An empty
// result is not an error; it is logged as a warning and left to the caller to
// surface.
func (s *Service) ProcessLines(ctx context.Context, lines []string) (*Result, error) {
	startTime := time.Now()
	runID := observability.RunIDFromContext(ctx)
	if runID == "" {
		runID = uuid.NewString()
	}
	logger := s.logger.WithRun(runID)

	logger.Debug().Int("lines", len(lines)).Msg("Starting extraction")

	records, stats, err := s.batcher.Process(ctx, lines)
	if err != nil {
		logger.Error().Err(err).Msg("Extraction aborted")
		return nil, err
	}
	if records == nil {
		records = []domain.Record{}
	}

	result := &Result{
		RunID:    runID,
		Records:  records,
		Stats:    stats,
		Duration: time.Since(startTime),
	}

	logger.Info().
		Int("total_lines", stats.TotalLines).
		Int("accepted", stats.Accepted).
		Int("discarded", stats.Discarded).
		Int("missing_marker", stats.MissingMarker).
		Int("undated", stats.Undated).
		Int("too_sparse", stats.TooSparse).
		Dur("duration", result.Duration).
		Msg("Extraction complete")

	if result.Empty() {
		logger.Warn().Msg(domain.NoRecordsMessage)
	}

	return result, nil
}
