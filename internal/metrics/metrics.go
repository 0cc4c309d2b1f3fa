// Package metrics содержит prometheus-метрики сервиса.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "siteplan_view"

// Metrics — счётчики селекторов, сборщика планов и хранилища снимков.
type Metrics struct {
	ActionLogComputations *prometheus.CounterVec
	PlansAssembled        *prometheus.CounterVec
	SnapshotReloads       *prometheus.CounterVec
}

// New создаёт метрики и регистрирует их в reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ActionLogComputations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actionlog_computations_total",
			Help:      "Action log selector calls by memo result (hit or miss).",
		}, []string{"result"}),
		PlansAssembled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plans_assembled_total",
			Help:      "Site plans assembled from raw plan records.",
		}, []string{"personal"}),
		SnapshotReloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshot_reloads_total",
			Help:      "State snapshot reloads by status.",
		}, []string{"status"}),
	}
	reg.MustRegister(m.ActionLogComputations, m.PlansAssembled, m.SnapshotReloads)
	return m
}

// ObserveActionLog подходит для currentuser.NewActionLog.
func (m *Metrics) ObserveActionLog(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.ActionLogComputations.WithLabelValues(result).Inc()
}

// ObservePlan подходит для plans.NewAssembler.
func (m *Metrics) ObservePlan(personal bool) {
	m.PlansAssembled.WithLabelValues(strconv.FormatBool(personal)).Inc()
}

// ObserveReload учитывает перезагрузку снимка.
func (m *Metrics) ObserveReload(err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.SnapshotReloads.WithLabelValues(status).Inc()
}
