package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/humeraxkhan/SENSOR-NAME-EXTRACTOR/internal/domain"
	"github.com/humeraxkhan/SENSOR-NAME-EXTRACTOR/internal/export"
	"github.com/humeraxkhan/SENSOR-NAME-EXTRACTOR/internal/extract"
	"github.com/humeraxkhan/SENSOR-NAME-EXTRACTOR/internal/transcript"
	"github.com/humeraxkhan/SENSOR-NAME-EXTRACTOR/internal/ui"
)

// stdoutPath selects standard output as the export destination.
const stdoutPath = "-"

var (
	extractOutput  string
	extractFormat  string
	extractWorkers int
	extractNoTable bool
)

var extractCmd = &cobra.Command{
	Use:   "extract <chat.txt>",
	Short: "Extract sensor queries from a chat export",
	Long: `Parse a WhatsApp .txt export, show the extracted queries and write them to
an Excel workbook (default), CSV or JSON file. Use -o - to stream CSV or JSON
to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output file, or - for stdout (default from config)")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "", "export format: xlsx, csv or json (default from config)")
	extractCmd.Flags().IntVarP(&extractWorkers, "workers", "w", 0, "parser workers (default from config)")
	extractCmd.Flags().BoolVar(&extractNoTable, "no-table", false, "do not print the extracted queries")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	format := cfg.Export.Format
	if extractFormat != "" {
		format = strings.ToLower(extractFormat)
	}
	sink, err := newSink(format, cfg.Export.SheetName)
	if err != nil {
		return err
	}

	output := resolveOutput(extractOutput, cfg.Export.OutputPath, sink.Extension())
	toStdout := output == stdoutPath
	if toStdout && format == export.FormatXLSX {
		return domain.ValidationError("xlsx output cannot be written to stdout; use --format csv or json", nil)
	}

	workers := cfg.Extraction.Workers
	if extractWorkers > 0 {
		workers = extractWorkers
	}

	console := ui.NewConsoleWriters(cmd.OutOrStdout(), cmd.ErrOrStderr())
	console.SetQuiet(toStdout)

	lines, err := transcript.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}
	console.Info("Read %d lines from %s", len(lines), filepath.Base(args[0]))

	result, err := parse(ctx, console, lines, workers)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if result.Empty() {
		console.Warning(domain.NoRecordsMessage)
		return nil
	}

	if !extractNoTable {
		console.RecordTable(result.Records)
	}
	console.Stats(result.Stats)

	if toStdout {
		return sink.Write(cmd.OutOrStdout(), result.Records)
	}
	if err := writeFile(console, sink, output, result.Records); err != nil {
		return err
	}

	fmt.Fprintln(console.Out())
	console.Success("Saved %d queries to %s", len(result.Records), output)
	return nil
}

// parse runs the batch parser, drawing a progress bar unless output is quiet.
func parse(ctx context.Context, console *ui.Console, lines []string, workers int) (*extract.Result, error) {
	var opts []extract.BatchOption
	var bar *ui.ProgressBar
	if !console.Quiet() && len(lines) > 0 {
		bar = ui.NewProgressBar(console.ErrOut(), int64(len(lines)), "Parsing")
		opts = append(opts, extract.WithProgress(func(n int) { bar.Set(int64(n)) }))
	}

	batcher := extract.NewBatchProcessor(extract.NewParser(), workers, cfg.Extraction.ChunkSize, opts...)
	result, err := extract.NewService(batcher, logger).ProcessLines(ctx, lines)
	if bar != nil {
		bar.Finish()
	}
	return result, err
}

func writeFile(console *ui.Console, sink domain.Sink, path string, records []domain.Record) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return domain.IOError("create output directory", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return domain.IOError("create output file", err)
	}

	spinner := ui.NewSpinner(console.ErrOut(), "Writing "+filepath.Base(path)+"...")
	spinner.Start()
	err = sink.Write(f, records)
	spinner.Stop()

	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = domain.IOError("close output file", closeErr)
	}
	if err != nil {
		os.Remove(path)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func newSink(format, sheet string) (domain.Sink, error) {
	if format == export.FormatXLSX {
		return export.NewXLSXWriter(sheet), nil
	}
	return export.ForFormat(format)
}

// resolveOutput picks the destination. An explicit path is used as given;
// the configured default takes the extension of the chosen format.
func resolveOutput(explicit, configured, ext string) string {
	if explicit != "" {
		return explicit
	}
	if configured == stdoutPath {
		return configured
	}
	return strings.TrimSuffix(configured, filepath.Ext(configured)) + ext
}
