// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads the go-simul client configuration from environment
// variables, command-line flags, and an optional JSON file, merged in that
// order (later non-zero values win).
package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the go-simul
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// API holds the game-server address, access token, and request tuning.
	API API `envPrefix:"SIMUL_API_"`

	// Watch holds settings for the background watch service driving the TUI.
	Watch Watch `envPrefix:"SIMUL_WATCH_"`

	// Log holds logging settings.
	Log Log `envPrefix:"SIMUL_LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the SIMUL_CONFIG environment variable or the -c / -config
	// flag.
	JSONFilePath string `env:"SIMUL_CONFIG"`
}

// API holds the settings of the outbound API transport.
type API struct {
	// Address is the game-server base URL. A bare host is accepted; the
	// scheme defaults to https.
	// Env: SIMUL_API_ADDRESS
	Address string `env:"ADDRESS"`

	// Token is the personal access token used as a bearer token.
	// Env: SIMUL_API_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout bounds non-streaming requests end to end (e.g. "15s").
	// Env: SIMUL_API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// UserAgent overrides the User-Agent header.
	// Env: SIMUL_API_USER_AGENT
	UserAgent string `env:"USER_AGENT"`

	// RateLimitRPS is the client-side request rate limit in requests per
	// second. Zero keeps the library default.
	// Env: SIMUL_API_RATE_LIMIT_RPS
	RateLimitRPS float64 `env:"RATE_LIMIT_RPS"`

	// RateLimitBurst is the burst size of the client-side rate limit.
	// Env: SIMUL_API_RATE_LIMIT_BURST
	RateLimitBurst int `env:"RATE_LIMIT_BURST"`
}

// Watch holds the settings of the watch service behind the TUI.
type Watch struct {
	// PollInterval defines how often the ongoing-games list is refreshed
	// (e.g. "30s").
	// Env: SIMUL_WATCH_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// GameCount limits how many ongoing games are fetched per refresh.
	// Env: SIMUL_WATCH_GAME_COUNT
	GameCount int `env:"GAME_COUNT"`
}

// Log holds logging settings.
type Log struct {
	// Level is the zerolog level name (debug, info, warn, error).
	// Env: SIMUL_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetClientConfig loads, merges, and validates the client configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Missing optional values are filled with defaults before validation.
func GetClientConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.API.Address == "" {
		cfg.API.Address = "https://lichess.org"
	}
	if cfg.API.RequestTimeout <= 0 {
		cfg.API.RequestTimeout = 15 * time.Second
	}
	if cfg.Watch.PollInterval <= 0 {
		cfg.Watch.PollInterval = 30 * time.Second
	}
	if cfg.Watch.GameCount <= 0 {
		cfg.Watch.GameCount = 10
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}
