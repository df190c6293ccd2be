package phoneutil

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the engine's counters. All methods are nil-receiver
// safe so instrumentation stays optional.
type Metrics struct {
	ParsesTotal          *prometheus.CounterVec
	ParseFailuresTotal   *prometheus.CounterVec
	MatchCandidatesTotal *prometheus.CounterVec
}

// NewMetrics registers the engine counters with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ParsesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "phonelib_parses_total",
			Help: "Successful parses by country code source",
		}, []string{"source"}),
		ParseFailuresTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "phonelib_parse_failures_total",
			Help: "Parse failures by reason",
		}, []string{"reason"}),
		MatchCandidatesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "phonelib_match_candidates_total",
			Help: "Text matcher candidates by outcome",
		}, []string{"outcome"}),
	}
}

// ObserveParse counts one successful parse.
func (m *Metrics) ObserveParse(source string) {
	if m == nil {
		return
	}
	m.ParsesTotal.WithLabelValues(source).Inc()
}

// ObserveParseFailure counts one terminal parse error.
func (m *Metrics) ObserveParseFailure(reason string) {
	if m == nil {
		return
	}
	m.ParseFailuresTotal.WithLabelValues(reason).Inc()
}

// ObserveMatchCandidate counts one examined matcher candidate.
func (m *Metrics) ObserveMatchCandidate(outcome string) {
	if m == nil {
		return
	}
	m.MatchCandidatesTotal.WithLabelValues(outcome).Inc()
}
