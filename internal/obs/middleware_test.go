package obs_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/noah-isme/backend-hitung/internal/obs"
)

func TestHTTPMetricsLabels(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := obs.NewHTTPMetrics("hitung", []float64{1, 10}, registry)
	handler := obs.HTTPObs{Metrics: metrics}.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	req = req.WithContext(obs.WithRoutePattern(req.Context(), "/health/ready"))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", rr.Code)
	}

	total := testutil.ToFloat64(metrics.ReqTotal.WithLabelValues(http.MethodGet, "/health/ready", "204"))
	if total != 1 {
		t.Fatalf("expected counter to be 1, got %v", total)
	}
	if samples := testutil.CollectAndCount(metrics.ReqDur); samples == 0 {
		t.Fatal("expected histogram sample")
	}
	if val := testutil.ToFloat64(metrics.InFlight); val != 0 {
		t.Fatalf("expected no in-flight requests, got %v", val)
	}
}

func TestCalcMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := obs.NewCalcMetrics("hitung", registry)

	metrics.Observe("discount", 50*time.Microsecond)
	metrics.Observe("discount", 80*time.Microsecond)
	metrics.CacheHit("discount")

	computed := testutil.ToFloat64(metrics.Total.WithLabelValues("discount", obs.SourceComputed))
	if computed != 2 {
		t.Fatalf("expected 2 computed, got %v", computed)
	}
	cached := testutil.ToFloat64(metrics.Total.WithLabelValues("discount", obs.SourceCache))
	if cached != 1 {
		t.Fatalf("expected 1 cache hit, got %v", cached)
	}
}

func TestCalcMetricsNilSafe(t *testing.T) {
	var m *obs.CalcMetrics
	m.Observe("pph21", time.Millisecond)
	m.CacheHit("pph21")
}
