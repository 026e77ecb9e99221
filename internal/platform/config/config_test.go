// Copyright (c) 2026 NitikBatik. All rights reserved.

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/config"
)

/*
TestLoad_Defaults verifies the documented defaults when nothing is set.
*/
func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8081/api", cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.APITimeout)
	assert.Equal(t, "auth-storage", cfg.SessionCookieName)
	assert.Equal(t, 24*time.Hour, cfg.SessionFallbackTTL)
	assert.True(t, cfg.IsDevelopment())
	assert.Empty(t, cfg.RedisURL)
}

/*
TestLoad_Overrides verifies environment overrides are honoured.
*/
func TestLoad_Overrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.nitikbatik.id/api")
	t.Setenv("API_TIMEOUT", "5s")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.nitikbatik.id/api", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.APITimeout)
	assert.True(t, cfg.IsProduction())
}

/*
TestLoad_RejectsNonPositiveTimeout guards the fixed per-request timeout.
*/
func TestLoad_RejectsNonPositiveTimeout(t *testing.T) {
	t.Setenv("API_TIMEOUT", "0s")

	_, err := config.Load()
	assert.Error(t, err)
}
