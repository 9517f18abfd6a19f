package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type RuleEnginePrometheusMetrics struct {
	transactionsProcessed *prometheus.CounterVec
	rulesMatched          *prometheus.CounterVec
	actionsApplied        *prometheus.CounterVec
	runDurationHist       *prometheus.HistogramVec
}

func newRuleEnginePrometheusMetrics(reg prometheus.Registerer) *RuleEnginePrometheusMetrics {
	mtc := &RuleEnginePrometheusMetrics{
		transactionsProcessed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rule_engine_transactions_processed_total",
				Help: "Number of transactions processed by rule group runs",
			},
			[]string{"rule_group_id"},
		),
		rulesMatched: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rule_engine_rules_matched_total",
				Help: "Number of rule matches by rule",
			},
			[]string{"rule_id"},
		),
		actionsApplied: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rule_engine_actions_applied_total",
				Help: "Number of rule actions applied by action type",
			},
			[]string{"action_type"},
		),
		runDurationHist: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rule_engine_run_duration_seconds",
				Help:    "Duration of rule group runs in seconds.",
				Buckets: []float64{0, 0.010, 0.100, 0.500, 1, 2, 5, 10, 30, 60, 300, 1000},
			},
			[]string{"success"},
		),
	}

	reg.MustRegister(mtc.transactionsProcessed)
	reg.MustRegister(mtc.rulesMatched)
	reg.MustRegister(mtc.actionsApplied)
	reg.MustRegister(mtc.runDurationHist)

	return mtc
}

func (m *RuleEnginePrometheusMetrics) RecordTransactionProcessed(ruleGroupID int64) {
	if m == nil {
		return
	}
	m.transactionsProcessed.WithLabelValues(strconv.FormatInt(ruleGroupID, 10)).Inc()
}

func (m *RuleEnginePrometheusMetrics) RecordRuleMatched(ruleID int64) {
	if m == nil {
		return
	}
	m.rulesMatched.WithLabelValues(strconv.FormatInt(ruleID, 10)).Inc()
}

func (m *RuleEnginePrometheusMetrics) RecordActionApplied(actionType string) {
	if m == nil {
		return
	}
	m.actionsApplied.WithLabelValues(actionType).Inc()
}

func (m *RuleEnginePrometheusMetrics) RecordRunDuration(startTime time.Time, processErr error) {
	if m == nil {
		return
	}
	m.runDurationHist.WithLabelValues(strconv.FormatBool(processErr == nil)).
		Observe(time.Since(startTime).Seconds())
}
