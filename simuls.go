// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package simul

import (
	"context"

	"github.com/MKhiriev/go-simul/models"
)

// SimulsClient lists simultaneous exhibitions: one host versus many players.
type SimulsClient struct {
	r *Requestor
}

// Get returns recently finished, ongoing, and upcoming simuls.
func (c *SimulsClient) Get(ctx context.Context) (*models.CurrentSimuls, error) {
	var current models.CurrentSimuls
	if err := c.r.Do(ctx, Get("api/simul"), Params{}, &current); err != nil {
		return nil, err
	}
	return &current, nil
}
