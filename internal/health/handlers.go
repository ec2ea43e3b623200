package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"
)

// CachePinger probes the optional Redis dependency. A nil pinger means the
// service runs without a cache and is always considered healthy.
type CachePinger interface {
	PingCache(ctx context.Context, timeout time.Duration) error
}

var ready atomic.Bool

func init() {
	ready.Store(true)
}

// SetReady flips the readiness gate; the server drops it during shutdown so
// load balancers drain before connections close.
func SetReady(v bool) {
	ready.Store(v)
}

// Handler exposes HTTP handlers for health endpoints.
type Handler struct {
	Cache        CachePinger
	CacheTimeout time.Duration
}

// Live reports liveness status.
func (h Handler) Live(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Ready reports readiness based on the shutdown gate and the optional cache
// probe.
func (h Handler) Ready(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"cache": "disabled"}
	healthy := ready.Load()
	if !healthy {
		status["server"] = "draining"
	}

	if h.Cache != nil {
		status["cache"] = "ok"
		if err := h.Cache.PingCache(r.Context(), h.cacheTimeout()); err != nil {
			status["cache"] = err.Error()
			healthy = false
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if healthy {
		w.WriteHeader(http.StatusOK)
	} else {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	_ = json.NewEncoder(w).Encode(status)
}

func (h Handler) cacheTimeout() time.Duration {
	if h.CacheTimeout <= 0 {
		return 300 * time.Millisecond
	}
	return h.CacheTimeout
}
