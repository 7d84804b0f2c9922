package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ammerola/cdi-tracker/internal/core/domain"
	"github.com/ammerola/cdi-tracker/internal/pkg/metrics"
)

func TestMetrics_SaleCounters(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	m.SaleRecorded(&domain.SaleResult{TotalProfitLoss: decimal.NewFromInt(8)})
	m.SaleDeleted()
	m.SaleFailed("record", domain.InsufficientStockError(5, 2, "Sol Ring", "Box 3"))
	m.SaleFailed("record", errors.New("boom"))
	m.MassUpdated(map[string]int64{"cards": 3})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SalesRecorded))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SalesDeleted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SaleFailures.WithLabelValues("record", "InsufficientStock")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SaleFailures.WithLabelValues("record", "PersistenceError")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.MassUpdateRows.WithLabelValues("cards")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.SaleDeleted()
		m.SaleFailed("delete", errors.New("x"))
		m.ObserveHTTP(http.MethodGet, 200, time.Millisecond)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	m.ObserveHTTP(http.MethodPost, http.StatusCreated, 10*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `cdi_http_requests_total{method="POST",status="201"} 1`)
}
