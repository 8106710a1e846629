package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUser_OnCooldown(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name          string
		cooldownUntil *time.Time
		want          bool
	}{
		{name: "no cooldown recorded", cooldownUntil: nil, want: false},
		{name: "cooldown lapsed", cooldownUntil: &past, want: false},
		{name: "cooldown active", cooldownUntil: &future, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &User{CooldownUntil: tt.cooldownUntil}
			assert.Equal(t, tt.want, user.OnCooldown(now))
		})
	}
}

func TestUser_LocationFresh(t *testing.T) {
	now := time.Now()
	maxAge := 15 * time.Minute

	tests := []struct {
		name     string
		location *GeoLocation
		want     bool
	}{
		{name: "no location", location: nil, want: false},
		{name: "fresh", location: &GeoLocation{CapturedAt: now.Add(-time.Minute)}, want: true},
		{name: "exactly at bound", location: &GeoLocation{CapturedAt: now.Add(-maxAge)}, want: true},
		{name: "stale", location: &GeoLocation{CapturedAt: now.Add(-16 * time.Minute)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &User{Location: tt.location}
			assert.Equal(t, tt.want, user.LocationFresh(now, maxAge))
		})
	}
}

func TestGeoLocation_Point(t *testing.T) {
	loc := GeoLocation{Latitude: 25.03, Longitude: 121.56}
	point := loc.Point()

	assert.Equal(t, 121.56, point.Lon())
	assert.Equal(t, 25.03, point.Lat())
}
