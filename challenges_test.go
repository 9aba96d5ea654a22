// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package simul

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Create ───────────────────────────────────────────────────────────────────

func TestChallengesCreate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/challenge/bob", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, true, body["rated"])
		assert.Equal(t, float64(300), body["clock.limit"])
		assert.Equal(t, float64(3), body["clock.increment"])

		_, _ = w.Write([]byte(`{"challenge":{"id":"ch1","status":"created","challenger":{"id":"alice","name":"Alice"}}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	opts := &ChallengeOptions{Rated: true, ClockLimit: 300, ClockIncrement: 3}
	challenge, err := c.Challenges.Create(context.Background(), "bob", opts)

	require.NoError(t, err)
	assert.Equal(t, "ch1", challenge.ID)
	assert.Equal(t, "Alice", challenge.Challenger.Name)
}

func TestChallengesCreateWithAccept_SendsOpponentToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "lip_opponent", body["acceptByToken"])

		_, _ = w.Write([]byte(`{"id":"game1","speed":"blitz"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	game, err := c.Challenges.CreateWithAccept(context.Background(), "bob", "lip_opponent", nil)

	require.NoError(t, err)
	assert.Equal(t, "game1", game.ID)
}

func TestChallengesCreateAI_DefaultLevel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/challenge/ai", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(8), body["level"])

		_, _ = w.Write([]byte(`{"id":"game2"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	game, err := c.Challenges.CreateAI(context.Background(), 0, nil)

	require.NoError(t, err)
	assert.Equal(t, "game2", game.ID)
}

func TestChallengesCreateOpen_NeverRated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/challenge/open", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotContains(t, body, "rated")

		_, _ = w.Write([]byte(`{"challenge":{"id":"ch2","status":"created"},"urlWhite":"https://lichess.org/ch2?color=white","urlBlack":"https://lichess.org/ch2?color=black"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	open, err := c.Challenges.CreateOpen(context.Background(), &ChallengeOptions{Rated: true})

	require.NoError(t, err)
	assert.Equal(t, "ch2", open.Challenge.ID)
	assert.NotEmpty(t, open.URLWhite)
	assert.NotEmpty(t, open.URLBlack)
}

// ── Accept / Decline / Cancel ────────────────────────────────────────────────

func TestChallengesAnswer(t *testing.T) {
	tests := []struct {
		name string
		path string
		call func(c *Client) (bool, error)
	}{
		{"accept", "/api/challenge/ch1/accept", func(c *Client) (bool, error) {
			return c.Challenges.Accept(context.Background(), "ch1")
		}},
		{"decline", "/api/challenge/ch1/decline", func(c *Client) (bool, error) {
			return c.Challenges.Decline(context.Background(), "ch1")
		}},
		{"cancel", "/api/challenge/ch1/cancel", func(c *Client) (bool, error) {
			return c.Challenges.Cancel(context.Background(), "ch1")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, tt.path, r.URL.Path)
				_, _ = w.Write([]byte(`{"ok":true}`))
			}))
			defer srv.Close()

			ok, err := tt.call(newTestClient(t, srv))

			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}

func TestChallengesAccept_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Challenge not found"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	_, err := c.Challenges.Accept(context.Background(), "nope")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}
