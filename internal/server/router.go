// Package server exposes transcript extraction over HTTP.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/humeraxkhan/SENSOR-NAME-EXTRACTOR/internal/config"
	"github.com/humeraxkhan/SENSOR-NAME-EXTRACTOR/internal/extract"
	"github.com/humeraxkhan/SENSOR-NAME-EXTRACTOR/internal/observability"
)

// ServiceName is reported by the health endpoint and stamped on log lines.
const ServiceName = "sensor-extractor"

// Options holds the request-level settings of the router.
type Options struct {
	RequestTimeout time.Duration
	MaxUploadBytes int64
	SheetName      string
	FileName       string // download name of the workbook
}

// OptionsFromConfig derives router options from the loaded configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		RequestTimeout: cfg.Server.RequestTimeout,
		MaxUploadBytes: cfg.Server.MaxUploadBytes,
		SheetName:      cfg.Export.SheetName,
		FileName:       config.DefaultOutputPath,
	}
}

// NewRouter creates the API router with all routes configured.
func NewRouter(logger *observability.Logger, service *extract.Service, opts Options) http.Handler {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 30 * time.Second
	}
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 10 << 20
	}
	if opts.FileName == "" {
		opts.FileName = config.DefaultOutputPath
	}

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(opts.RequestTimeout))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy","service":"` + ServiceName + `"}`))
	})

	h := NewExtractHandler(logger, service, opts)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/extract", h.Extract)
		r.Post("/extract/xlsx", h.Download)
	})

	return r
}
