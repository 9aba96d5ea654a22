// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package simul

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-simul/models"
)

// UsersClient groups the public player endpoints.
type UsersClient struct {
	r *Requestor
}

// PuzzleActivity streams the puzzle activity history of the authenticated
// user, most recent first. max limits the number of entries; 0 means no
// limit.
func (c *UsersClient) PuzzleActivity(ctx context.Context, max int) (*Stream[models.PuzzleActivity], error) {
	q := map[string]string{}
	setInt(q, "max", max)

	ep := Get("api/user/puzzle-activity").WithFormat(FormatNDJSON)
	return RequestStream[models.PuzzleActivity](ctx, c.r, ep, Params{Query: q})
}

// RealtimeStatuses returns the online, playing and streaming statuses of the
// given players. Only ID and Name are populated for offline users.
func (c *UsersClient) RealtimeStatuses(ctx context.Context, userIDs ...string) ([]models.UserStatus, error) {
	var statuses []models.UserStatus
	p := Params{Query: map[string]string{"ids": strings.Join(userIDs, ",")}}
	if err := c.r.Do(ctx, Get("api/users/status"), p, &statuses); err != nil {
		return nil, err
	}
	return statuses, nil
}

// AllTop10 returns the top 10 players for each speed and variant, keyed by
// perf.
func (c *UsersClient) AllTop10(ctx context.Context) (map[string][]models.LeaderboardEntry, error) {
	var top map[string][]models.LeaderboardEntry
	ep := Get("player").WithFormat(FormatLiJSON)
	if err := c.r.Do(ctx, ep, Params{}, &top); err != nil {
		return nil, err
	}
	return top, nil
}

// Leaderboard returns the top count players for one speed or variant.
func (c *UsersClient) Leaderboard(ctx context.Context, perfType string, count int) ([]models.LeaderboardEntry, error) {
	if count <= 0 {
		count = 10
	}

	var resp struct {
		Users []models.LeaderboardEntry `json:"users"`
	}
	ep := Get(fmt.Sprintf("player/top/%d/%s", count, perfType)).WithFormat(FormatLiJSON)
	if err := c.r.Do(ctx, ep, Params{}, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// PublicData returns the public data of one user.
func (c *UsersClient) PublicData(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := c.r.Do(ctx, Get("api/user/"+username), Params{}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ActivityFeed returns the activity feed of a user.
func (c *UsersClient) ActivityFeed(ctx context.Context, username string) ([]models.ActivityEntry, error) {
	var feed []models.ActivityEntry
	if err := c.r.Do(ctx, Get("api/user/"+username+"/activity"), Params{}, &feed); err != nil {
		return nil, err
	}
	return feed, nil
}

// ByID returns multiple users by their ids in one request.
func (c *UsersClient) ByID(ctx context.Context, usernames ...string) ([]models.User, error) {
	var users []models.User
	p := Params{Body: strings.Join(usernames, ",")}
	if err := c.r.Do(ctx, Post("api/users"), p, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// LiveStreamers returns basic information about users currently streaming a
// game.
func (c *UsersClient) LiveStreamers(ctx context.Context) ([]models.Streamer, error) {
	var streamers []models.Streamer
	if err := c.r.Do(ctx, Get("streamer/live"), Params{}, &streamers); err != nil {
		return nil, err
	}
	return streamers, nil
}

// RatingHistory returns the rating history of a user for all game types.
func (c *UsersClient) RatingHistory(ctx context.Context, username string) ([]models.RatingHistory, error) {
	var history []models.RatingHistory
	if err := c.r.Do(ctx, Get("api/user/"+username+"/rating-history"), Params{}, &history); err != nil {
		return nil, err
	}
	return history, nil
}
