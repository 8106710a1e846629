// Package routing implements the driving-distance provider as a client of an
// OSRM-compatible table service.
package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"lifeline/config"
	"lifeline/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

const defaultQueryTimeout = 3 * time.Second

// osrmEstimator implements service.RouteEstimator against the OSRM table
// endpoint. One round trip covers all destinations of a candidate search.
type osrmEstimator struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewRouteEstimator creates an OSRM-backed route estimator. Returns nil when
// the provider is disabled; callers fall back to great-circle distances.
func NewRouteEstimator(cfg *config.Config, logger *slog.Logger) (service.RouteEstimator, error) {
	routing := cfg.Routing
	if routing == nil || !routing.Enabled {
		logger.Info("Routing provider disabled, candidate results keep great-circle distances only")

		return nil, nil
	}
	if routing.BaseURL == "" {
		return nil, errors.New("routing base URL is required when routing is enabled")
	}

	timeout := routing.Timeout
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}

	logger.Info("Using OSRM routing provider",
		slog.String("base_url", routing.BaseURL),
		slog.Duration("timeout", timeout),
	)

	return &osrmEstimator{
		baseURL:    strings.TrimRight(routing.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

// tableResponse is the subset of the OSRM table response the estimator reads.
type tableResponse struct {
	Code      string       `json:"code"`
	Message   string       `json:"message"`
	Durations [][]*float64 `json:"durations"`
	Distances [][]*float64 `json:"distances"`
}

// EstimateRoutes queries the table endpoint with the origin as the single
// source and every destination as a target. Unroutable destinations come back
// as null cells and are returned as nil entries.
func (e *osrmEstimator) EstimateRoutes(ctx context.Context, origin orb.Point, destinations []orb.Point) ([]*service.RouteEstimate, error) {
	if len(destinations) == 0 {
		return nil, nil
	}

	var coords strings.Builder
	fmt.Fprintf(&coords, "%f,%f", origin[0], origin[1])
	for _, dest := range destinations {
		fmt.Fprintf(&coords, ";%f,%f", dest[0], dest[1])
	}

	url := fmt.Sprintf("%s/table/v1/driving/%s?sources=0&annotations=duration,distance", e.baseURL, coords.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "routing provider request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return nil, errors.Errorf("routing provider returned status %d: %s", resp.StatusCode, string(body))
	}

	var table tableResponse
	if err := json.NewDecoder(resp.Body).Decode(&table); err != nil {
		return nil, errors.Wrap(err, "failed to decode routing provider response")
	}
	if table.Code != "Ok" {
		return nil, errors.Errorf("routing provider returned code %s: %s", table.Code, table.Message)
	}
	if len(table.Durations) == 0 || len(table.Distances) == 0 {
		return nil, errors.New("routing provider returned no matrix rows")
	}

	durations := table.Durations[0]
	distances := table.Distances[0]
	// Row zero includes the origin-to-origin cell at index zero.
	if len(durations) != len(destinations)+1 || len(distances) != len(destinations)+1 {
		return nil, errors.Errorf("routing provider returned %d cells for %d destinations", len(durations), len(destinations))
	}

	estimates := make([]*service.RouteEstimate, len(destinations))
	for i := range destinations {
		duration := durations[i+1]
		distance := distances[i+1]
		if duration == nil || distance == nil {
			continue
		}

		estimates[i] = &service.RouteEstimate{
			DistanceKm:      *distance / 1000,
			DurationSeconds: *duration,
		}
	}

	return estimates, nil
}
