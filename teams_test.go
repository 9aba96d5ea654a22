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

func TestTeamsMembers_Stream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/team/coders/users", r.URL.Path)
		_, _ = w.Write([]byte("{\"id\":\"alice\",\"username\":\"Alice\"}\n{\"id\":\"bob\",\"username\":\"Bob\"}\n"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	stream, err := c.Teams.Members(context.Background(), "coders")
	require.NoError(t, err)
	defer stream.Close()

	var ids []string
	for user := range stream.C() {
		ids = append(ids, user.ID)
	}

	require.NoError(t, stream.Err())
	assert.Equal(t, []string{"alice", "bob"}, ids)
}

func TestTeamsMembership(t *testing.T) {
	tests := []struct {
		name string
		path string
		call func(c *Client) (bool, error)
	}{
		{"join", "/team/coders/join", func(c *Client) (bool, error) {
			return c.Teams.Join(context.Background(), "coders")
		}},
		{"leave", "/team/coders/quit", func(c *Client) (bool, error) {
			return c.Teams.Leave(context.Background(), "coders")
		}},
		{"kick", "/team/coders/kick/bob", func(c *Client) (bool, error) {
			return c.Teams.KickMember(context.Background(), "coders", "bob")
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
