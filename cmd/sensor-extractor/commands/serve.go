package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/humeraxkhan/SENSOR-NAME-EXTRACTOR/internal/extract"
	"github.com/humeraxkhan/SENSOR-NAME-EXTRACTOR/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the extractor over HTTP",
	Long: `Start an HTTP server that accepts chat exports on POST /api/v1/extract (JSON
records) and POST /api/v1/extract/xlsx (Excel download).`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address host:port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := cfg.Addr()
	if serveAddr != "" {
		addr = serveAddr
	}

	batcher := extract.NewBatchProcessor(extract.NewParser(), cfg.Extraction.Workers, cfg.Extraction.ChunkSize)
	svc := extract.NewService(batcher, logger)
	router := server.NewRouter(logger, svc, server.OptionsFromConfig(cfg))

	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	logger.Info().
		Str("addr", addr).
		Int("workers", cfg.Extraction.Workers).
		Int64("max_upload_bytes", cfg.Server.MaxUploadBytes).
		Msg("Starting sensor extractor API")

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("HTTP server listening")
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("Server error")
			return err
		}
		return nil
	case sig := <-shutdown:
		logger.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdown)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Graceful shutdown failed")
		if err := srv.Close(); err != nil {
			logger.Error().Err(err).Msg("Forced shutdown failed")
		}
		return err
	}

	logger.Info().Msg("Server stopped")
	return nil
}
