// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware of the base converter.
package api

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"baseconv/internal/api/handler/v1handler"
	"baseconv/internal/api/handler/webhandler"
	"baseconv/internal/config"
	"baseconv/internal/converter"
	"baseconv/internal/presenter"
	"baseconv/pkg/controller"
	"baseconv/pkg/logger"
	"baseconv/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

const (
	// MeterName is the instrumentation scope of the conversion instruments.
	MeterName = "baseconv/internal/api"

	timeoutBody = `{"error":{"code":"INTERNAL","message":"request timed out"}}`
)

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// Zero durations fall back to the net/http defaults, except RequestTimeout,
// where zero disables the handler timeout.
type Options struct {
	// Sessions configures the conversion sessions of every front end.
	Sessions presenter.Options

	// Addr is the TCP address the server listens on, e.g. "127.0.0.1:8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// EnablePprof mounts the profiling endpoints.
	EnablePprof bool
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Sessions: presenter.NewOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		EnablePprof:       cfg.HTTP.EnablePprof,
	}
}

// Deps are the collaborators shared by the handlers.
type Deps struct {
	Converter converter.Converter
}

// Server is the HTTP server together with the meter provider feeding its
// metrics endpoint.
type Server struct {
	*http.Server

	meterProvider *sdkmetric.MeterProvider
}

// Shutdown gracefully stops the HTTP server, then flushes and releases the
// meter provider.
func (s *Server) Shutdown(ctx context.Context) error {
	return errors.Join(s.Server.Shutdown(ctx), s.meterProvider.Shutdown(ctx))
}

// NewServer wires up and returns a configured *Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath) over a registry owned by the server
// - OpenTelemetry metrics exporter (Prometheus) feeding the conversion instruments
// - Embedded OpenAPI v1 spec and Swagger UI
// - v1 API routes and the HTML converter page
// - pprof endpoints for profiling, when enabled
// It also wraps the mux with CORS and logging middlewares and applies a request timeout.
func NewServer(ctx context.Context, deps Deps, opts Options) (*Server, error) {
	mux := http.NewServeMux()

	// prometheus metrics server
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	mux.Handle("GET "+opts.MetricsPath, promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	// otel
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	conversions, err := metrics.NewConversions(mp.Meter(MeterName))
	if err != nil {
		return nil, fmt.Errorf("could not create conversion instruments: %w", err)
	}

	// v1 specs file
	mux.HandleFunc("GET /specs/v1.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("/v1/docs/", v5emb.New(
		"Base Converter",
		"/specs/v1.yaml",
		"/v1/docs/",
	))
	// v1 api
	v1handler.New(v1handler.Deps{
		Converter:   deps.Converter,
		Conversions: conversions,
		Sessions:    opts.Sessions,
	}).Register(mux)

	// converter page
	webhandler.New(webhandler.Deps{
		Converter:   deps.Converter,
		Conversions: conversions,
		Sessions:    opts.Sessions,
	}).Register(mux)

	// pprof
	if opts.EnablePprof {
		mux.Handle(controller.PprofPrefix, controller.PprofMux())
	}

	// cors
	handler := controller.WithCORS(mux)

	// logger
	handler = controller.WithLogger(handler)

	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, timeoutBody)
	}

	return &Server{Server: &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
		ErrorLog:          logger.StdLog(ctx, slog.LevelError),
	}, meterProvider: mp}, nil
}
