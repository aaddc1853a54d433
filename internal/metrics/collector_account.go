package metrics

import (
	"context"

	"github.com/homework-evaluation/backend/ent"
	"github.com/homework-evaluation/backend/ent/account"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/lo"
)

var hweAccountsTotalDesc = prometheus.NewDesc(
	"hwe_accounts_total",
	"Number of accounts by role",
	[]string{"role"},
	nil,
)

// AccountCollector reports the number of accounts of each role.
type AccountCollector struct {
	entClient *ent.Client
}

func NewAccountCollector(entClient *ent.Client) *AccountCollector {
	return &AccountCollector{entClient: entClient}
}

func (c *AccountCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- hweAccountsTotalDesc
}

func (c *AccountCollector) Collect(ch chan<- prometheus.Metric) {
	collectCounts(ch, "AccountCollector.Collect", hweAccountsTotalDesc, func(ctx context.Context) ([]labeledCount, error) {
		var rows []roleCount
		err := c.entClient.Account.Query().
			GroupBy(account.FieldRole).
			Aggregate(ent.Count()).
			Scan(ctx, &rows)
		if err != nil {
			return nil, err
		}

		return lo.Map(rows, func(row roleCount, _ int) labeledCount {
			return labeledCount{Label: row.Role, Count: row.Count}
		}), nil
	})
}

type roleCount struct {
	Role  string `json:"role"`
	Count int    `json:"count"`
}

var _ prometheus.Collector = (*AccountCollector)(nil)
