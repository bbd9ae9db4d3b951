package metricsvc

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MartinVozmediano/skills-getting-started-with-github-copilot/core/activity"
)

const namespace = "activities"

// PrometheusRecorder records signup outcomes as prometheus metrics.
type PrometheusRecorder struct {
	signups      *prometheus.CounterVec
	rejections   *prometheus.CounterVec
	participants *prometheus.GaugeVec
}

var _ activity.Metrics = (*PrometheusRecorder)(nil)

// NewPrometheusRecorder registers the signup collectors on reg.
func NewPrometheusRecorder(reg prometheus.Registerer) *PrometheusRecorder {
	r := &PrometheusRecorder{
		signups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "signup",
			Name:      "accepted_total",
			Help:      "Number of successful signups per activity.",
		}, []string{"activity"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "signup",
			Name:      "rejected_total",
			Help:      "Number of rejected signups per reason.",
		}, []string{"reason"}),
		participants: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "participants",
			Help:      "Current number of participants per activity.",
		}, []string{"activity"}),
	}
	reg.MustRegister(r.signups, r.rejections, r.participants)
	return r
}

// Observe sets the participants gauge for every activity of cat.
// It seeds the gauge; accepted signups then increment it.
func (r *PrometheusRecorder) Observe(cat activity.Catalog) {
	for name, act := range cat {
		r.participants.WithLabelValues(name).Set(float64(len(act.Participants)))
	}
}

func (r *PrometheusRecorder) SignupAccepted(act activity.Activity) {
	r.signups.WithLabelValues(act.Name).Inc()
	r.participants.WithLabelValues(act.Name).Inc()
}

func (r *PrometheusRecorder) SignupRejected(reason string) {
	r.rejections.WithLabelValues(reason).Inc()
}
