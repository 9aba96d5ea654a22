// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package simul

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBotsMakeMove_UsesBotPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/bot/game/g1/move/e2e4", r.URL.Path)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	ok, err := c.Bots.MakeMove(context.Background(), "g1", "e2e4")

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBotsStreamGameState_UsesBotPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/bot/game/stream/g1", r.URL.Path)
		_, _ = w.Write([]byte("{\"type\":\"gameFull\"}\n"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	stream, err := c.Bots.StreamGameState(context.Background(), "g1")
	require.NoError(t, err)
	defer stream.Close()

	state := <-stream.C()
	for range stream.C() {
	}

	require.NoError(t, stream.Err())
	assert.Equal(t, "gameFull", state.Type)
}

func TestBotsChallengeAnswers(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)

	_, err := c.Bots.AcceptChallenge(context.Background(), "ch1")
	require.NoError(t, err)
	assert.Equal(t, "/api/challenge/ch1/accept", gotPath)

	_, err = c.Bots.DeclineChallenge(context.Background(), "ch1")
	require.NoError(t, err)
	assert.Equal(t, "/api/challenge/ch1/decline", gotPath)
}
