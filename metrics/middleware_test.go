package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddlewareUsesRouteTemplate(t *testing.T) {
	router := mux.NewRouter()
	router.Use(Middleware)
	router.HandleFunc("/chords/{key}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}).Methods("GET")

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/chords/{key}", "418"))

	for _, key := range []string{"60-64-67", "53-57-60"} {
		req := httptest.NewRequest(http.MethodGet, "/chords/"+key, nil)
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/chords/{key}", "418"))
	assert.Equal(t, before+2, after)
}

func TestRoutePathWithoutRoute(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "unknown", routePath(req))
}

func TestObserveSearch(t *testing.T) {
	before := testutil.CollectAndCount(searchDuration)
	ObserveSearch("metrics-test", time.Now())
	assert.Equal(t, before+1, testutil.CollectAndCount(searchDuration))
}
