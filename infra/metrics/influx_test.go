package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	coremetrics "github.com/kilianp07/chargeplan/core/metrics"
)

func TestInfluxSinkFallsBackWhenUnhealthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	sink := NewInfluxSinkWithFallback(coremetrics.Config{
		InfluxURL:    srv.URL,
		InfluxToken:  "t",
		InfluxOrg:    "o",
		InfluxBucket: "b",
	})
	_, isNop := sink.(coremetrics.NopSink)
	assert.True(t, isNop, "unhealthy instance should fall back to NopSink")
}

func TestInfluxSinkHealthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"name":"influxdb","status":"pass"}`))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sink := NewInfluxSinkWithFallback(coremetrics.Config{
		InfluxURL:    srv.URL,
		InfluxToken:  "t",
		InfluxOrg:    "o",
		InfluxBucket: "b",
	})
	_, isNop := sink.(coremetrics.NopSink)
	assert.False(t, isNop)
	if s, ok := sink.(*InfluxSink); ok {
		s.Close()
	}
}
