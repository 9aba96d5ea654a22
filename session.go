// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package simul

import (
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	// DefaultBaseURL is the production game-server address.
	DefaultBaseURL = "https://lichess.org"

	defaultTimeout   = 15 * time.Second
	defaultUserAgent = "go-simul"
)

// SessionConfig configures a [TokenSession].
type SessionConfig struct {
	// BaseURL is the server address. Defaults to [DefaultBaseURL]. A bare
	// host is accepted; the scheme defaults to https.
	BaseURL string

	// Token is the personal access token attached as a bearer token to every
	// request. May be empty for the endpoints that work unauthenticated.
	Token string

	// Timeout bounds non-streaming requests end to end. Defaults to 15s.
	// Streaming requests only inherit the dial/TLS limits.
	Timeout time.Duration

	// UserAgent overrides the User-Agent header.
	UserAgent string
}

// TokenSession owns the HTTP transport used by a [Client]: a request client
// with an overall timeout for unary calls and a second client without one
// for long-lived streams. The bearer token is attached to every outgoing
// request and may be swapped at runtime.
type TokenSession struct {
	client       *resty.Client
	streamClient *resty.Client

	mu    sync.RWMutex
	token string
}

// NewTokenSession builds a TokenSession from cfg. Returns an error if the
// base URL cannot be parsed.
func NewTokenSession(cfg SessionConfig) (*TokenSession, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}

	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	s := &TokenSession{token: strings.TrimSpace(cfg.Token)}

	auth := func(_ *resty.Client, req *resty.Request) error {
		if token := s.Token(); token != "" {
			req.SetHeader("Authorization", "Bearer "+token)
		}
		return nil
	}

	s.client = resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", cfg.UserAgent).
		OnBeforeRequest(auth)

	// No overall timeout: event and game-state streams stay open for the
	// lifetime of the consumer and are bounded by ctx instead.
	s.streamClient = resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", cfg.UserAgent).
		OnBeforeRequest(auth)

	return s, nil
}

// BaseURL returns the normalized server address the session talks to.
func (s *TokenSession) BaseURL() string {
	return s.client.BaseURL
}

// SetToken replaces the bearer token used by subsequent requests.
func (s *TokenSession) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = strings.TrimSpace(token)
}

// Token returns the bearer token currently held by the session, or an empty
// string if none has been set.
func (s *TokenSession) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
