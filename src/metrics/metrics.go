package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Result labels for roster operations.
const (
	ResultOK            = "ok"
	ResultNotFound      = "activity_not_found"
	ResultDuplicate     = "already_signed_up"
	ResultFull          = "activity_full"
	ResultNotRegistered = "not_registered"
	ResultError         = "error"
)

// UnknownActivity replaces the activity label when the name is not in the registry,
// so arbitrary path values never become label values.
const UnknownActivity = "unknown"

// Metrics holds the roster collectors on a private registry.
type Metrics struct {
	registry     *prometheus.Registry
	signups      *prometheus.CounterVec
	unregisters  *prometheus.CounterVec
	participants *prometheus.GaugeVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		signups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_signups_total",
			Help: "Sign-up attempts by activity and result.",
		}, []string{"activity", "result"}),
		unregisters: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_unregistrations_total",
			Help: "Unregister attempts by activity and result.",
		}, []string{"activity", "result"}),
		participants: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "roster_participants",
			Help: "Current number of participants per activity.",
		}, []string{"activity"}),
	}
	m.registry.MustRegister(
		m.signups,
		m.unregisters,
		m.participants,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) ObserveSignUp(activity, result string) {
	m.signups.WithLabelValues(activity, result).Inc()
}

func (m *Metrics) ObserveUnregister(activity, result string) {
	m.unregisters.WithLabelValues(activity, result).Inc()
}

func (m *Metrics) SetParticipants(activity string, n int) {
	m.participants.WithLabelValues(activity).Set(float64(n))
}

// SignUps exposes the sign-up counter for a label pair.
func (m *Metrics) SignUps(activity, result string) prometheus.Counter {
	return m.signups.WithLabelValues(activity, result)
}

// Unregistrations exposes the unregister counter for a label pair.
func (m *Metrics) Unregistrations(activity, result string) prometheus.Counter {
	return m.unregisters.WithLabelValues(activity, result)
}

// Participants exposes the roster size gauge of one activity.
func (m *Metrics) Participants(activity string) prometheus.Gauge {
	return m.participants.WithLabelValues(activity)
}

// Handler serves the exposition format for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
