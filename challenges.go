// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package simul

import (
	"context"

	"github.com/MKhiriev/go-simul/models"
)

// ChallengesClient groups the challenge endpoints.
type ChallengesClient struct {
	r *Requestor
}

// ChallengeOptions configures a new challenge. Either the clock pair or
// DaysPerMove should be set; leaving both zero creates an unlimited game.
type ChallengeOptions struct {
	// Rated makes the game affect ratings.
	Rated bool

	// ClockLimit is the initial clock time in seconds.
	ClockLimit int

	// ClockIncrement is the clock increment in seconds.
	ClockIncrement int

	// DaysPerMove creates a correspondence game instead of a clock game.
	DaysPerMove int

	// Color is the color of the challenged player: white, black or random.
	Color string

	// Variant is the game variant key; empty means standard.
	Variant string

	// Position is a custom initial position in FEN. The variant must be
	// standard and the game cannot be rated.
	Position string
}

func (o *ChallengeOptions) payload() map[string]any {
	body := map[string]any{}
	if o == nil {
		return body
	}

	body["rated"] = o.Rated
	if o.ClockLimit > 0 {
		body["clock.limit"] = o.ClockLimit
		body["clock.increment"] = o.ClockIncrement
	}
	if o.DaysPerMove > 0 {
		body["days"] = o.DaysPerMove
	}
	if o.Color != "" {
		body["color"] = o.Color
	}
	if o.Variant != "" {
		body["variant"] = o.Variant
	}
	if o.Position != "" {
		body["fen"] = o.Position
	}
	return body
}

// Create challenges another player to a game.
func (c *ChallengesClient) Create(ctx context.Context, username string, opts *ChallengeOptions) (*models.Challenge, error) {
	var resp struct {
		Challenge models.Challenge `json:"challenge"`
	}
	p := Params{JSON: opts.payload()}
	if err := c.r.Do(ctx, Post("api/challenge/"+username), p, &resp); err != nil {
		return nil, err
	}
	return &resp.Challenge, nil
}

// CreateWithAccept starts a game with another player directly. It works like
// Create except the opponent accepts automatically; their OAuth token must
// carry the challenge:write scope.
func (c *ChallengesClient) CreateWithAccept(ctx context.Context, username, opponentToken string, opts *ChallengeOptions) (*models.Game, error) {
	body := opts.payload()
	body["acceptByToken"] = opponentToken

	var game models.Game
	if err := c.r.Do(ctx, Post("api/challenge/"+username), Params{JSON: body}, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

// CreateAI challenges the server AI to a game. level ranges 1 to 8.
func (c *ChallengesClient) CreateAI(ctx context.Context, level int, opts *ChallengeOptions) (*models.Game, error) {
	if level <= 0 {
		level = 8
	}

	body := opts.payload()
	body["level"] = level

	var game models.Game
	if err := c.r.Do(ctx, Post("api/challenge/ai"), Params{JSON: body}, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

// CreateOpen creates a challenge that any two players can join.
func (c *ChallengesClient) CreateOpen(ctx context.Context, opts *ChallengeOptions) (*models.OpenChallenge, error) {
	body := opts.payload()
	delete(body, "rated") // open challenges are always casual

	var open models.OpenChallenge
	if err := c.r.Do(ctx, Post("api/challenge/open"), Params{JSON: body}, &open); err != nil {
		return nil, err
	}
	return &open, nil
}

// Accept accepts an incoming challenge.
func (c *ChallengesClient) Accept(ctx context.Context, challengeID string) (bool, error) {
	var resp models.OKResponse
	if err := c.r.Do(ctx, Post("api/challenge/"+challengeID+"/accept"), Params{}, &resp); err != nil {
		return false, err
	}
	return resp.OK, nil
}

// Decline declines an incoming challenge.
func (c *ChallengesClient) Decline(ctx context.Context, challengeID string) (bool, error) {
	var resp models.OKResponse
	if err := c.r.Do(ctx, Post("api/challenge/"+challengeID+"/decline"), Params{}, &resp); err != nil {
		return false, err
	}
	return resp.OK, nil
}

// Cancel cancels an outgoing challenge.
func (c *ChallengesClient) Cancel(ctx context.Context, challengeID string) (bool, error) {
	var resp models.OKResponse
	if err := c.r.Do(ctx, Post("api/challenge/"+challengeID+"/cancel"), Params{}, &resp); err != nil {
		return false, err
	}
	return resp.OK, nil
}
