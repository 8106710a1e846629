package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsMatchingAndStorePolicy(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	require.NotNil(t, cfg.Matching)
	assert.InDelta(t, 100.0, cfg.Matching.RadiusKm, 1e-9)
	assert.Equal(t, 90, cfg.Matching.CooldownDays)
	assert.Equal(t, 15*time.Minute, cfg.Matching.LocationMaxAge)

	require.NotNil(t, cfg.Store)
	assert.Equal(t, 3, cfg.Store.MaxRetries)
	assert.Equal(t, 100*time.Millisecond, cfg.Store.RetryDelay)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Matching: &MatchingConfig{
			RadiusKm:       25,
			CooldownDays:   56,
			LocationMaxAge: time.Hour,
		},
		Store: &StoreConfig{MaxRetries: 5, RetryDelay: time.Second},
	}
	applyDefaults(cfg)

	assert.InDelta(t, 25.0, cfg.Matching.RadiusKm, 1e-9)
	assert.Equal(t, 56, cfg.Matching.CooldownDays)
	assert.Equal(t, time.Hour, cfg.Matching.LocationMaxAge)
	assert.Equal(t, 5, cfg.Store.MaxRetries)
	assert.Equal(t, time.Second, cfg.Store.RetryDelay)
}

func TestCooldownWindow(t *testing.T) {
	cfg := &MatchingConfig{CooldownDays: 90}
	assert.Equal(t, 90*24*time.Hour, cfg.CooldownWindow())
}
