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

func TestSimulsGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/simul", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"pending":[],
			"created":[{"id":"s1","name":"GM Simul","host":{"id":"gm1","name":"GM One","rating":2700}}],
			"started":[],
			"finished":[]
		}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	current, err := c.Simuls.Get(context.Background())

	require.NoError(t, err)
	require.Len(t, current.Created, 1)
	assert.Equal(t, "s1", current.Created[0].ID)
	assert.Equal(t, 2700, current.Created[0].Host.Rating)
}
