package service

import (
	"context"

	"github.com/paulmach/orb"
)

// RouteEstimate is a driving distance/duration pair from the routing provider.
type RouteEstimate struct {
	DistanceKm      float64
	DurationSeconds float64
}

// RouteEstimator queries the external routing/ETA provider for driving
// estimates. It refines the engine's own great-circle estimate and is never a
// dependency for correctness: callers must degrade gracefully on error.
type RouteEstimator interface {
	// EstimateRoutes returns driving estimates from one origin to many
	// destinations, in destination order. Entries may be nil when the
	// provider has no route.
	EstimateRoutes(ctx context.Context, origin orb.Point, destinations []orb.Point) ([]*RouteEstimate, error)
}
