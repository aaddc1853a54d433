package metrics

import (
	"context"

	"github.com/homework-evaluation/backend/ent"
	"github.com/homework-evaluation/backend/ent/event"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/lo"
)

var hweEventsTotalDesc = prometheus.NewDesc(
	"hwe_events_total",
	"Number of recorded audit events by type",
	[]string{"type"},
	nil,
)

// EventCollector reports the audit log size per event type. Unlike
// EventTotal it survives restarts since it reads the store.
type EventCollector struct {
	entClient *ent.Client
}

func NewEventCollector(entClient *ent.Client) *EventCollector {
	return &EventCollector{entClient: entClient}
}

func (c *EventCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- hweEventsTotalDesc
}

func (c *EventCollector) Collect(ch chan<- prometheus.Metric) {
	collectCounts(ch, "EventCollector.Collect", hweEventsTotalDesc, func(ctx context.Context) ([]labeledCount, error) {
		var rows []typeCount
		err := c.entClient.Event.Query().
			GroupBy(event.FieldType).
			Aggregate(ent.Count()).
			Scan(ctx, &rows)
		if err != nil {
			return nil, err
		}

		return lo.Map(rows, func(row typeCount, _ int) labeledCount {
			return labeledCount{Label: row.Type, Count: row.Count}
		}), nil
	})
}

type typeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

var _ prometheus.Collector = (*EventCollector)(nil)
