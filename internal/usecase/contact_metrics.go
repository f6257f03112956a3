package usecase

import (
	"time"

	"realestate-form-intake/internal/domain"

	"github.com/prometheus/client_golang/prometheus"
)

type ContactMetrics struct {
	submissions  *prometheus.CounterVec
	stageLatency *prometheus.HistogramVec
}

func NewContactMetrics(reg prometheus.Registerer) *ContactMetrics {
	m := &ContactMetrics{
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "contact_form_submissions_total",
			Help: "Contact form submissions by terminal state",
		}, []string{"outcome"}),
		stageLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "contact_form_stage_duration_seconds",
			Help:    "Time spent in the persist and notify stages",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"stage"}),
	}

	reg.MustRegister(m.submissions, m.stageLatency)
	return m
}

// Submissions returns the counter for one terminal state.
func (m *ContactMetrics) Submissions(state domain.SubmissionState) prometheus.Counter {
	return m.submissions.WithLabelValues(string(state))
}

func (m *ContactMetrics) observeStage(stage domain.SubmissionState, start time.Time) {
	m.stageLatency.WithLabelValues(string(stage)).Observe(time.Since(start).Seconds())
}
