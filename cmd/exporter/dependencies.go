package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/homework-evaluation/backend/ent"
	"github.com/homework-evaluation/backend/internal/config"
	"github.com/homework-evaluation/backend/internal/metrics"
	"github.com/homework-evaluation/backend/internal/workers"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/fx"
)

// PrometheusMetrics builds the registry scraped by Prometheus: runtime
// collectors plus the store-backed homework collectors.
func PrometheusMetrics(entClient *ent.Client) prometheus.Gatherer {
	registry := prometheus.NewRegistry()

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),

		metrics.NewAccountCollector(entClient),
		metrics.NewEventCollector(entClient),
		metrics.NewSubmissionCollector(entClient),
	)

	return registry
}

// ExporterMux serves the metrics and a readiness probe that fails while the
// store is unreachable.
func ExporterMux(entClient *ent.Client, gatherer prometheus.Gatherer) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if _, err := entClient.Account.Query().Exist(ctx); err != nil {
			slog.Warn("store is unreachable", "error", err)
			http.Error(w, "store unreachable", http.StatusServiceUnavailable)
			return
		}

		_, _ = w.Write([]byte("OK"))
	})

	mux.Handle("GET /metrics", otelhttp.NewHandler(promhttp.HandlerFor(
		gatherer,
		promhttp.HandlerOpts{
			MaxRequestsInFlight: 10,
			Timeout:             metrics.ScrapeTimeout,
			EnableOpenMetrics:   true,
		},
	), "metrics"))

	return mux
}

func PrometheusHTTPHandler(cfg config.Config, mux *http.ServeMux, lifecycle fx.Lifecycle) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ExporterPort),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			workers.Global.Go(func() {
				slog.Info("exporter listening", "address", srv.Addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					slog.Error("exporter stopped unexpectedly", "error", err)
				}
			})

			return nil
		},
		OnStop: func(ctx context.Context) error {
			slog.Info("exporter shutting down")
			if err := srv.Shutdown(ctx); err != nil {
				return fmt.Errorf("shutdown exporter: %w", err)
			}

			workers.Global.Wait()
			return nil
		},
	})
}
