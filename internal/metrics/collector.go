package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	otelcodes "go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("hwe.metrics")

// ScrapeTimeout bounds the store queries of a single collector run.
const ScrapeTimeout = 30 * time.Second

// labeledCount is one row of a GROUP BY count.
type labeledCount struct {
	Label string
	Count int
}

// collectCounts runs query and reports each row as a gauge of desc. A failed
// query is reported as an invalid metric so the scrape shows the error.
func collectCounts(
	ch chan<- prometheus.Metric,
	spanName string,
	desc *prometheus.Desc,
	query func(ctx context.Context) ([]labeledCount, error),
) {
	ctx, cancel := context.WithTimeout(context.Background(), ScrapeTimeout)
	defer cancel()

	ctx, span := tracer.Start(ctx, spanName)
	defer span.End()

	rows, err := query(ctx)
	if err != nil {
		span.SetStatus(otelcodes.Error, "query failed")
		span.RecordError(err)

		ch <- prometheus.NewInvalidMetric(desc, err)
		return
	}

	span.SetStatus(otelcodes.Ok, "collected")

	for _, row := range rows {
		ch <- prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, float64(row.Count), row.Label)
	}
}
