// internal/pkg/metrics/metrics.go
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ammerola/cdi-tracker/internal/core/domain"
)

const namespace = "cdi"

// Metrics holds the application collectors. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	registry prometheus.Gatherer

	SalesRecorded   prometheus.Counter
	SalesDeleted    prometheus.Counter
	SalesEdited     prometheus.Counter
	SaleFailures    *prometheus.CounterVec
	SaleProfitLoss  prometheus.Histogram
	MassUpdateRows  *prometheus.CounterVec
	ResolverLookups *prometheus.CounterVec
	TasksProcessed  *prometheus.CounterVec
	HTTPRequests    *prometheus.CounterVec
	HTTPDuration    *prometheus.HistogramVec
}

// New registers the collectors on reg
func New(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		registry: reg,
		SalesRecorded: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "sales_recorded_total",
			Help: "Sale events recorded.",
		}),
		SalesDeleted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "sales_deleted_total",
			Help: "Sale events reversed and deleted.",
		}),
		SalesEdited: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "sales_edited_total",
			Help: "Sale events re-recorded in place.",
		}),
		SaleFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "sale_failures_total",
			Help: "Failed sale engine operations by operation and error kind.",
		}, []string{"operation", "kind"}),
		SaleProfitLoss: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Name: "sale_profit_loss_usd",
			Help:    "Total profit/loss of recorded sales.",
			Buckets: []float64{-50, -10, -1, 0, 1, 5, 10, 25, 50, 100, 250, 1000},
		}),
		MassUpdateRows: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "mass_update_rows_total",
			Help: "Rows changed by mass updates per table.",
		}, []string{"table"}),
		ResolverLookups: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "card_resolver_lookups_total",
			Help: "Card metadata lookups by result.",
		}, []string{"result"}),
		TasksProcessed: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "tasks_processed_total",
			Help: "Background tasks processed by type and status.",
		}, []string{"type", "status"}),
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "http_requests_total",
			Help: "HTTP requests by method and status code.",
		}, []string{"method", "status"}),
		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Name: "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
	}
}

// NewDefault registers the collectors on a fresh registry that also
// carries the Go runtime and process collectors.
func NewDefault() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return New(reg)
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// SaleFailed counts a failed engine operation by error kind
func (m *Metrics) SaleFailed(operation string, err error) {
	if m == nil || err == nil {
		return
	}
	m.SaleFailures.WithLabelValues(operation, string(domain.KindOf(err))).Inc()
}

// SaleRecorded counts a committed sale
func (m *Metrics) SaleRecorded(result *domain.SaleResult) {
	if m == nil {
		return
	}
	m.SalesRecorded.Inc()
	m.SaleProfitLoss.Observe(result.TotalProfitLoss.InexactFloat64())
}

// SaleDeleted counts a committed reversal
func (m *Metrics) SaleDeleted() {
	if m == nil {
		return
	}
	m.SalesDeleted.Inc()
}

// SaleEdited counts a committed re-record
func (m *Metrics) SaleEdited() {
	if m == nil {
		return
	}
	m.SalesEdited.Inc()
}

// MassUpdated counts rows changed per table
func (m *Metrics) MassUpdated(perTable map[string]int64) {
	if m == nil {
		return
	}
	for table, n := range perTable {
		m.MassUpdateRows.WithLabelValues(table).Add(float64(n))
	}
}

// ResolverLookup counts a card metadata lookup result (hit, miss, fetched, error)
func (m *Metrics) ResolverLookup(result string) {
	if m == nil {
		return
	}
	m.ResolverLookups.WithLabelValues(result).Inc()
}

// TaskProcessed counts a background task outcome
func (m *Metrics) TaskProcessed(taskType string, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.TasksProcessed.WithLabelValues(taskType, status).Inc()
}

// ObserveHTTP records one served request
func (m *Metrics) ObserveHTTP(method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}
