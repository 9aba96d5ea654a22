// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package simul

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-simul/models"
)

// BroadcastsClient manages relays of one or more games.
type BroadcastsClient struct {
	r *Requestor
}

// BroadcastOptions describes a broadcast. Name and Description are required
// on create and update; an update erases every field left empty.
type BroadcastOptions struct {
	// Name of the broadcast.
	Name string

	// Description is the short description shown in listings.
	Description string

	// SyncURL is a publicly accessible URL the server polls for new PGN.
	// Without it the broadcast must be pushed manually via PushPGNUpdate.
	SyncURL string

	// Markdown is the long description.
	Markdown string

	// Credit names the source provider.
	Credit string

	// StartsAt is the start time in epoch millis.
	StartsAt int64
}

func (o *BroadcastOptions) payload() map[string]any {
	body := map[string]any{}
	if o == nil {
		return body
	}

	body["name"] = o.Name
	body["description"] = o.Description
	if o.SyncURL != "" {
		body["syncUrl"] = o.SyncURL
	}
	if o.Markdown != "" {
		body["markdown"] = o.Markdown
	}
	if o.Credit != "" {
		body["credit"] = o.Credit
	}
	if o.StartsAt > 0 {
		body["startsAt"] = o.StartsAt
	}
	return body
}

// Create creates a new broadcast.
func (c *BroadcastsClient) Create(ctx context.Context, opts *BroadcastOptions) (*models.Broadcast, error) {
	var broadcast models.Broadcast
	if err := c.r.Do(ctx, Post("broadcast/new"), Params{JSON: opts.payload()}, &broadcast); err != nil {
		return nil, err
	}
	return &broadcast, nil
}

// Get returns a broadcast by id.
func (c *BroadcastsClient) Get(ctx context.Context, broadcastID string) (*models.Broadcast, error) {
	var broadcast models.Broadcast
	if err := c.r.Do(ctx, Get("broadcast/-/"+broadcastID), Params{}, &broadcast); err != nil {
		return nil, err
	}
	return &broadcast, nil
}

// Update rewrites an existing broadcast. All fields must be provided;
// missing ones are erased server side.
func (c *BroadcastsClient) Update(ctx context.Context, broadcastID string, opts *BroadcastOptions) (*models.Broadcast, error) {
	var broadcast models.Broadcast
	if err := c.r.Do(ctx, Post("broadcast/-/"+broadcastID), Params{JSON: opts.payload()}, &broadcast); err != nil {
		return nil, err
	}
	return &broadcast, nil
}

// PushPGNUpdate pushes new PGN to a broadcast that has no sync URL. Each
// element of pgnGames is one game.
func (c *BroadcastsClient) PushPGNUpdate(ctx context.Context, broadcastID string, pgnGames []string) (bool, error) {
	trimmed := make([]string, 0, len(pgnGames))
	for _, g := range pgnGames {
		trimmed = append(trimmed, strings.TrimSpace(g))
	}

	var resp models.OKResponse
	p := Params{Body: strings.Join(trimmed, "\n\n")}
	if err := c.r.Do(ctx, Post("broadcast/-/"+broadcastID+"/push"), p, &resp); err != nil {
		return false, err
	}
	return resp.OK, nil
}
