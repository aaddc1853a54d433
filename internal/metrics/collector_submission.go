package metrics

import (
	"context"
	"fmt"

	"github.com/homework-evaluation/backend/ent"
	"github.com/homework-evaluation/backend/ent/predicate"
	"github.com/homework-evaluation/backend/ent/submission"
	"github.com/prometheus/client_golang/prometheus"
)

var hweSubmissionsTotalDesc = prometheus.NewDesc(
	"hwe_submissions_total",
	"Total number of submissions by state",
	[]string{"state"},
	nil,
)

// the state is derived from nullable columns, so each one is a separate count
var submissionStates = []struct {
	name      string
	predicate predicate.Submission
}{
	{name: "pending", predicate: submission.AnswerIsNil()},
	{name: "answered", predicate: submission.And(submission.AnswerNotNil(), submission.GradeIsNil())},
	{name: "graded", predicate: submission.GradeNotNil()},
}

type SubmissionCollector struct {
	entClient *ent.Client
}

func NewSubmissionCollector(entClient *ent.Client) *SubmissionCollector {
	return &SubmissionCollector{entClient: entClient}
}

func (c *SubmissionCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- hweSubmissionsTotalDesc
}

func (c *SubmissionCollector) Collect(ch chan<- prometheus.Metric) {
	collectCounts(ch, "SubmissionCollector.Collect", hweSubmissionsTotalDesc, func(ctx context.Context) ([]labeledCount, error) {
		rows := make([]labeledCount, 0, len(submissionStates))
		for _, state := range submissionStates {
			count, err := c.entClient.Submission.Query().Where(state.predicate).Count(ctx)
			if err != nil {
				return nil, fmt.Errorf("count %s submissions: %w", state.name, err)
			}
			rows = append(rows, labeledCount{Label: state.name, Count: count})
		}

		return rows, nil
	})
}

var _ prometheus.Collector = (*SubmissionCollector)(nil)
