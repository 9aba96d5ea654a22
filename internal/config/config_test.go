// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── env ──────────────────────────────────────────────────────────────────────

func TestParseEnv(t *testing.T) {
	t.Setenv("SIMUL_API_ADDRESS", "https://lichess.dev")
	t.Setenv("SIMUL_API_TOKEN", "lip_envtoken")
	t.Setenv("SIMUL_API_REQUEST_TIMEOUT", "7s")
	t.Setenv("SIMUL_WATCH_POLL_INTERVAL", "45s")
	t.Setenv("SIMUL_WATCH_GAME_COUNT", "5")
	t.Setenv("SIMUL_LOG_LEVEL", "debug")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "https://lichess.dev", cfg.API.Address)
	assert.Equal(t, "lip_envtoken", cfg.API.Token)
	assert.Equal(t, 7*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, 45*time.Second, cfg.Watch.PollInterval)
	assert.Equal(t, 5, cfg.Watch.GameCount)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("SIMUL_API_REQUEST_TIMEOUT", "not-a-duration")

	cfg := &StructuredConfig{}
	require.Error(t, parseEnv(cfg))
}

// ── flags ────────────────────────────────────────────────────────────────────

func TestParseFlags(t *testing.T) {
	cfg := parseFlags([]string{
		"-a", "https://lichess.dev",
		"-t", "lip_flagtoken",
		"-r", "5s",
		"-p", "1m",
		"-n", "3",
		"-l", "warn",
		"-c", "/tmp/config.json",
	})

	assert.Equal(t, "https://lichess.dev", cfg.API.Address)
	assert.Equal(t, "lip_flagtoken", cfg.API.Token)
	assert.Equal(t, 5*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Watch.PollInterval)
	assert.Equal(t, 3, cfg.Watch.GameCount)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/tmp/config.json", cfg.JSONFilePath)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg := parseFlags(nil)

	assert.Empty(t, cfg.API.Address)
	assert.Empty(t, cfg.API.Token)
	assert.Zero(t, cfg.Watch.GameCount)
}

// ── json ─────────────────────────────────────────────────────────────────────

func TestParseJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"api": {
			"address": "https://lichess.dev",
			"token": "lip_jsontoken",
			"request_timeout": "20s",
			"rate_limit_rps": 5,
			"rate_limit_burst": 10
		},
		"watch": {"poll_interval": "90s", "game_count": 7},
		"log": {"level": "error"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "https://lichess.dev", cfg.API.Address)
	assert.Equal(t, "lip_jsontoken", cfg.API.Token)
	assert.Equal(t, 20*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, 5.0, cfg.API.RateLimitRPS)
	assert.Equal(t, 10, cfg.API.RateLimitBurst)
	assert.Equal(t, 90*time.Second, cfg.Watch.PollInterval)
	assert.Equal(t, 7, cfg.Watch.GameCount)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	require.Error(t, err)
}

func TestParseJSON_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestDuration_UnmarshalNumber(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	// числовое значение трактуется как наносекунды
	require.NoError(t, os.WriteFile(path, []byte(`{"api":{"token":"x","request_timeout":15000000000}}`), 0o600))

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, cfg.API.RequestTimeout)
}

// ── merge / defaults / validation ────────────────────────────────────────────

func TestBuild_MergePriority(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{API: API{Token: "lip_first", Address: "https://first.example"}},
		&StructuredConfig{API: API{Address: "https://second.example"}},
	)

	cfg, err := b.build()

	require.NoError(t, err)
	// mergo не перетирает уже заполненные поля
	assert.Equal(t, "lip_first", cfg.API.Token)
	assert.Equal(t, "https://first.example", cfg.API.Address)
}

func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{API: API{Token: "lip_token"}})

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "https://lichess.org", cfg.API.Address)
	assert.Equal(t, 15*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, 30*time.Second, cfg.Watch.PollInterval)
	assert.Equal(t, 10, cfg.Watch.GameCount)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestBuild_MissingToken(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	_, err := b.build()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := &StructuredConfig{
		API: API{Token: "lip_token", Address: "https://lichess.org"},
		Log: Log{Level: "loud"},
	}

	err := cfg.validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLogLevel)
}

func TestLogLevel(t *testing.T) {
	cfg := &StructuredConfig{Log: Log{Level: "warn"}}
	assert.Equal(t, zerolog.WarnLevel, cfg.LogLevel())
}
