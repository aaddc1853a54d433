package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LoginTotal tracks login attempts by result (success or failed)
	LoginTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hwe_login_total",
			Help: "Total number of login attempts by result",
		},
		[]string{"result"},
	)

	// GateDenialTotal tracks calls rejected by the access gate
	GateDenialTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hwe_gate_denial_total",
			Help: "Total number of calls rejected by the access gate by reason",
		},
		[]string{"reason"},
	)

	// AssignmentPublishedTotal tracks published assignments
	AssignmentPublishedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hwe_assignment_published_total",
			Help: "Total number of assignments published",
		},
	)

	// SubmissionFanoutTotal tracks the submissions created by publishing
	SubmissionFanoutTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hwe_submission_fanout_total",
			Help: "Total number of submissions created when publishing assignments",
		},
	)

	// AnswerSubmittedTotal tracks answers submitted by students
	AnswerSubmittedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hwe_answer_submitted_total",
			Help: "Total number of answers submitted",
		},
	)

	// SubmissionGradedTotal tracks grades given by grade value
	SubmissionGradedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hwe_submission_graded_total",
			Help: "Total number of submissions graded by grade",
		},
		[]string{"grade"},
	)

	// EventTotal tracks the total number of events by event type
	EventTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hwe_event_total",
			Help: "Total number of events by event type",
		},
		[]string{"event_type"},
	)
)

// RecordLogin records a login attempt
func RecordLogin(success bool) {
	if success {
		LoginTotal.WithLabelValues("success").Inc()
		return
	}
	LoginTotal.WithLabelValues("failed").Inc()
}

// RecordGateDenial records a call rejected by the access gate
func RecordGateDenial(reason string) {
	GateDenialTotal.WithLabelValues(reason).Inc()
}

// RecordAssignmentPublished records a published assignment and its fan-out
func RecordAssignmentPublished(fanout int) {
	AssignmentPublishedTotal.Inc()
	SubmissionFanoutTotal.Add(float64(fanout))
}

// RecordAnswerSubmitted records a submitted answer
func RecordAnswerSubmitted() {
	AnswerSubmittedTotal.Inc()
}

// RecordSubmissionGraded records a grade
func RecordSubmissionGraded(grade string) {
	SubmissionGradedTotal.WithLabelValues(grade).Inc()
}

// RecordEvent records an event with the given event type
func RecordEvent(eventType string) {
	EventTotal.WithLabelValues(eventType).Inc()
}
