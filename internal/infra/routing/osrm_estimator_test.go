package routing

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lifeline/config"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEstimator(t *testing.T, handler http.HandlerFunc) *osrmEstimator {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Routing: &config.RoutingConfig{
			Enabled: true,
			BaseURL: server.URL,
			Timeout: time.Second,
		},
	}

	estimator, err := NewRouteEstimator(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	require.NotNil(t, estimator)

	return estimator.(*osrmEstimator)
}

func TestNewRouteEstimator_DisabledReturnsNil(t *testing.T) {
	cfg := &config.Config{Routing: &config.RoutingConfig{Enabled: false}}

	estimator, err := NewRouteEstimator(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.NoError(t, err)
	assert.Nil(t, estimator)
}

func TestNewRouteEstimator_EnabledWithoutBaseURL(t *testing.T) {
	cfg := &config.Config{Routing: &config.RoutingConfig{Enabled: true}}

	estimator, err := NewRouteEstimator(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
	assert.Nil(t, estimator)
}

func TestEstimateRoutes_ParsesTableResponse(t *testing.T) {
	estimator := newTestEstimator(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/table/v1/driving/")
		assert.Equal(t, "0", r.URL.Query().Get("sources"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"code": "Ok",
			"durations": [[0, 600, 1200]],
			"distances": [[0, 5000, 12500]]
		}`))
	})

	origin := orb.Point{121.5654, 25.0330}
	destinations := []orb.Point{
		{121.5170, 25.0478},
		{121.5319, 25.0400},
	}

	estimates, err := estimator.EstimateRoutes(t.Context(), origin, destinations)
	require.NoError(t, err)
	require.Len(t, estimates, 2)

	require.NotNil(t, estimates[0])
	assert.InDelta(t, 5.0, estimates[0].DistanceKm, 1e-9)
	assert.InDelta(t, 600, estimates[0].DurationSeconds, 1e-9)

	require.NotNil(t, estimates[1])
	assert.InDelta(t, 12.5, estimates[1].DistanceKm, 1e-9)
}

func TestEstimateRoutes_NullCellsBecomeNilEntries(t *testing.T) {
	estimator := newTestEstimator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"code": "Ok",
			"durations": [[0, null, 1200]],
			"distances": [[0, null, 12500]]
		}`))
	})

	estimates, err := estimator.EstimateRoutes(t.Context(), orb.Point{121.5, 25.0}, []orb.Point{
		{10.0, 10.0},
		{121.53, 25.04},
	})
	require.NoError(t, err)
	require.Len(t, estimates, 2)
	assert.Nil(t, estimates[0])
	assert.NotNil(t, estimates[1])
}

func TestEstimateRoutes_ProviderErrorCode(t *testing.T) {
	estimator := newTestEstimator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code": "NoTable", "message": "no table"}`))
	})

	estimates, err := estimator.EstimateRoutes(t.Context(), orb.Point{121.5, 25.0}, []orb.Point{{121.53, 25.04}})
	assert.Error(t, err)
	assert.Nil(t, estimates)
	assert.Contains(t, err.Error(), "NoTable")
}

func TestEstimateRoutes_NonOKStatus(t *testing.T) {
	estimator := newTestEstimator(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})

	estimates, err := estimator.EstimateRoutes(t.Context(), orb.Point{121.5, 25.0}, []orb.Point{{121.53, 25.04}})
	assert.Error(t, err)
	assert.Nil(t, estimates)
}

func TestEstimateRoutes_CellCountMismatch(t *testing.T) {
	estimator := newTestEstimator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code": "Ok", "durations": [[0, 600]], "distances": [[0, 5000]]}`))
	})

	estimates, err := estimator.EstimateRoutes(t.Context(), orb.Point{121.5, 25.0}, []orb.Point{
		{121.53, 25.04},
		{121.54, 25.05},
	})
	assert.Error(t, err)
	assert.Nil(t, estimates)
}

func TestEstimateRoutes_NoDestinations(t *testing.T) {
	estimator := newTestEstimator(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected without destinations")
	})

	estimates, err := estimator.EstimateRoutes(t.Context(), orb.Point{121.5, 25.0}, nil)
	assert.NoError(t, err)
	assert.Nil(t, estimates)
}
