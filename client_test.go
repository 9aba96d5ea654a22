// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package simul

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient направляет полный API-клиент на тестовый сервер
func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	session, err := NewTokenSession(SessionConfig{BaseURL: srv.URL, Token: "lip_testtoken"})
	require.NoError(t, err)
	return NewClient(session)
}

func TestNewClient_AllNamespacesWired(t *testing.T) {
	session, err := NewTokenSession(SessionConfig{})
	require.NoError(t, err)

	c := NewClient(session)

	assert.NotNil(t, c.Account)
	assert.NotNil(t, c.Users)
	assert.NotNil(t, c.Teams)
	assert.NotNil(t, c.Games)
	assert.NotNil(t, c.Challenges)
	assert.NotNil(t, c.Board)
	assert.NotNil(t, c.Bots)
	assert.NotNil(t, c.Tournaments)
	assert.NotNil(t, c.Broadcasts)
	assert.NotNil(t, c.Simuls)
	assert.NotNil(t, c.Studies)
}

func TestNewClient_SharedRequestor(t *testing.T) {
	session, err := NewTokenSession(SessionConfig{})
	require.NoError(t, err)

	c := NewClient(session)

	assert.Same(t, c.Account.r, c.Board.r)
	assert.Same(t, c.Games.r, c.Tournaments.r)
}
