package geo

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_IdenticalPoints(t *testing.T) {
	point := orb.Point{121.5654, 25.0330}

	assert.InDelta(t, 0, DistanceKm(point, point), 1e-9)
}

func TestDistanceKm_Symmetric(t *testing.T) {
	taipei := orb.Point{121.5654, 25.0330}
	kaohsiung := orb.Point{120.3014, 22.6273}

	assert.InDelta(t, DistanceKm(taipei, kaohsiung), DistanceKm(kaohsiung, taipei), 1e-9)
}

func TestDistanceKm_KnownDistances(t *testing.T) {
	tests := []struct {
		name   string
		a      orb.Point
		b      orb.Point
		wantKm float64
		tolKm  float64
	}{
		{
			name:   "taipei to kaohsiung",
			a:      orb.Point{121.5654, 25.0330},
			b:      orb.Point{120.3014, 22.6273},
			wantKm: 296,
			tolKm:  5,
		},
		{
			name:   "one degree latitude at equator",
			a:      orb.Point{0, 0},
			b:      orb.Point{0, 1},
			wantKm: 111.2,
			tolKm:  0.5,
		},
		{
			name:   "antipodal points",
			a:      orb.Point{0, 0},
			b:      orb.Point{180, 0},
			wantKm: 20015,
			tolKm:  5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.wantKm, DistanceKm(tt.a, tt.b), tt.tolKm)
		})
	}
}

func TestDistanceKm_NearbyPointsNoNumericalError(t *testing.T) {
	a := orb.Point{121.5654, 25.0330}
	b := orb.Point{121.5654 + 1e-12, 25.0330 + 1e-12}

	got := DistanceKm(a, b)
	assert.False(t, math.IsNaN(got), "distance must not be NaN")
	assert.GreaterOrEqual(t, got, 0.0)
}
