// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package simul

import (
	"context"

	"github.com/MKhiriev/go-simul/models"
)

// TeamsClient groups the team endpoints.
type TeamsClient struct {
	r *Requestor
}

// Members streams the members of a team.
func (c *TeamsClient) Members(ctx context.Context, teamID string) (*Stream[models.User], error) {
	ep := Get("api/team/" + teamID + "/users").WithFormat(FormatNDJSON)
	return RequestStream[models.User](ctx, c.r, ep, Params{})
}

// Join joins a team.
func (c *TeamsClient) Join(ctx context.Context, teamID string) (bool, error) {
	var resp models.OKResponse
	if err := c.r.Do(ctx, Post("team/"+teamID+"/join"), Params{}, &resp); err != nil {
		return false, err
	}
	return resp.OK, nil
}

// Leave leaves a team.
func (c *TeamsClient) Leave(ctx context.Context, teamID string) (bool, error) {
	var resp models.OKResponse
	if err := c.r.Do(ctx, Post("team/"+teamID+"/quit"), Params{}, &resp); err != nil {
		return false, err
	}
	return resp.OK, nil
}

// KickMember kicks a member out of a team the authenticated user leads.
func (c *TeamsClient) KickMember(ctx context.Context, teamID, userID string) (bool, error) {
	var resp models.OKResponse
	if err := c.r.Do(ctx, Post("team/"+teamID+"/kick/"+userID), Params{}, &resp); err != nil {
		return false, err
	}
	return resp.OK, nil
}
