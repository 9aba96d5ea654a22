// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package simul

import (
	"context"

	"github.com/MKhiriev/go-simul/models"
)

// BotsClient plays games as a bot account. The account must have been
// upgraded via [AccountClient.UpgradeToBot].
type BotsClient struct {
	r *Requestor
}

// StreamIncomingEvents opens the realtime stream of incoming events for the
// bot account.
func (c *BotsClient) StreamIncomingEvents(ctx context.Context) (*Stream[models.Event], error) {
	ep := Get("api/stream/event").WithFormat(FormatNDJSON)
	return RequestStream[models.Event](ctx, c.r, ep, Params{})
}

// StreamGameState opens the stream of state frames for a bot game.
func (c *BotsClient) StreamGameState(ctx context.Context, gameID string) (*Stream[models.GameState], error) {
	ep := Get("api/bot/game/stream/" + gameID).WithFormat(FormatNDJSON)
	return RequestStream[models.GameState](ctx, c.r, ep, Params{})
}

// MakeMove plays a move in a bot game.
func (c *BotsClient) MakeMove(ctx context.Context, gameID, move string) (bool, error) {
	var resp models.OKResponse
	if err := c.r.Do(ctx, Post("api/bot/game/"+gameID+"/move/"+move), Params{}, &resp); err != nil {
		return false, err
	}
	return resp.OK, nil
}

// PostMessage posts a chat message in a bot game, to the player room or,
// with spectator set, to the spectator room.
func (c *BotsClient) PostMessage(ctx context.Context, gameID, text string, spectator bool) (bool, error) {
	room := "player"
	if spectator {
		room = "spectator"
	}

	var resp models.OKResponse
	p := Params{JSON: map[string]string{"room": room, "text": text}}
	if err := c.r.Do(ctx, Post("api/bot/game/"+gameID+"/chat"), p, &resp); err != nil {
		return false, err
	}
	return resp.OK, nil
}

// AbortGame aborts a bot game.
func (c *BotsClient) AbortGame(ctx context.Context, gameID string) (bool, error) {
	var resp models.OKResponse
	if err := c.r.Do(ctx, Post("api/bot/game/"+gameID+"/abort"), Params{}, &resp); err != nil {
		return false, err
	}
	return resp.OK, nil
}

// ResignGame resigns a bot game.
func (c *BotsClient) ResignGame(ctx context.Context, gameID string) (bool, error) {
	var resp models.OKResponse
	if err := c.r.Do(ctx, Post("api/bot/game/"+gameID+"/resign"), Params{}, &resp); err != nil {
		return false, err
	}
	return resp.OK, nil
}

// AcceptChallenge accepts an incoming challenge.
func (c *BotsClient) AcceptChallenge(ctx context.Context, challengeID string) (bool, error) {
	var resp models.OKResponse
	if err := c.r.Do(ctx, Post("api/challenge/"+challengeID+"/accept"), Params{}, &resp); err != nil {
		return false, err
	}
	return resp.OK, nil
}

// DeclineChallenge declines an incoming challenge.
func (c *BotsClient) DeclineChallenge(ctx context.Context, challengeID string) (bool, error) {
	var resp models.OKResponse
	if err := c.r.Do(ctx, Post("api/challenge/"+challengeID+"/decline"), Params{}, &resp); err != nil {
		return false, err
	}
	return resp.OK, nil
}
