package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsCountsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Post("/send-message", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("POST", "/send-message", "400"))

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/send-message", nil))

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("POST", "/send-message", "400"))
	assert.Equal(t, before+1, after)
}

func TestRecordDelivery(t *testing.T) {
	before := testutil.ToFloat64(deliveriesTotal.WithLabelValues("image", "failed"))

	DeliveryMetrics{}.RecordDelivery("image", "FAILED")

	assert.Equal(t, before+1, testutil.ToFloat64(deliveriesTotal.WithLabelValues("image", "failed")))
}
