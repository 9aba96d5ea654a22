// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package simul

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-simul/models"
)

// BoardClient plays games as a physical board or external application.
type BoardClient struct {
	r *Requestor
}

// StreamIncomingEvents opens the realtime stream of incoming events for the
// authenticated user: games starting and finishing, challenges arriving,
// being cancelled or declined.
func (c *BoardClient) StreamIncomingEvents(ctx context.Context) (*Stream[models.Event], error) {
	ep := Get("api/stream/event").WithFormat(FormatNDJSON)
	return RequestStream[models.Event](ctx, c.r, ep, Params{})
}

// SeekOptions configures a public seek.
type SeekOptions struct {
	// Rated makes the resulting game affect ratings.
	Rated bool

	// Variant is the game variant key; empty means standard.
	Variant string

	// Color is the color to play: white, black or random.
	Color string

	// RatingRange restricts opponents, e.g. "1500-1800".
	RatingRange string
}

// Seek creates a public seek for a game with time+increment minutes clock
// and blocks until the seek is resolved or ctx is cancelled. The seek stays
// open only while the stream is being read, so Seek drains it and returns
// the elapsed duration.
func (c *BoardClient) Seek(ctx context.Context, initialMinutes, incrementMinutes int, opts *SeekOptions) (time.Duration, error) {
	form := map[string]string{
		"time":      strconv.Itoa(initialMinutes),
		"increment": strconv.Itoa(incrementMinutes),
		"rated":     "false",
		"variant":   "standard",
		"color":     "random",
	}
	if opts != nil {
		form["rated"] = strconv.FormatBool(opts.Rated)
		if opts.Variant != "" {
			form["variant"] = opts.Variant
		}
		if opts.Color != "" {
			form["color"] = opts.Color
		}
		form["ratingRange"] = opts.RatingRange
	}

	ep := Post("api/board/seek").WithFormat(FormatText)
	start := time.Now()

	lines, err := c.r.Lines(ctx, ep, Params{Form: form})
	if err != nil {
		return 0, err
	}
	defer lines.Close()

	// keep reading to keep the seek alive
	for range lines.C() {
	}
	if err = lines.Err(); err != nil {
		return 0, fmt.Errorf("seek stream: %w", err)
	}

	return time.Since(start), nil
}

// StreamGameState opens the stream of state frames for a board game.
func (c *BoardClient) StreamGameState(ctx context.Context, gameID string) (*Stream[models.GameState], error) {
	ep := Get("api/board/game/stream/" + gameID).WithFormat(FormatNDJSON)
	return RequestStream[models.GameState](ctx, c.r, ep, Params{})
}

// MakeMove plays a move in a board game.
func (c *BoardClient) MakeMove(ctx context.Context, gameID, move string) (bool, error) {
	var resp models.OKResponse
	if err := c.r.Do(ctx, Post("api/board/game/"+gameID+"/move/"+move), Params{}, &resp); err != nil {
		return false, err
	}
	return resp.OK, nil
}

// PostMessage posts a chat message in a board game, to the player room or,
// with spectator set, to the spectator room.
func (c *BoardClient) PostMessage(ctx context.Context, gameID, text string, spectator bool) (bool, error) {
	room := "player"
	if spectator {
		room = "spectator"
	}

	var resp models.OKResponse
	p := Params{JSON: map[string]string{"room": room, "text": text}}
	if err := c.r.Do(ctx, Post("api/board/game/"+gameID+"/chat"), p, &resp); err != nil {
		return false, err
	}
	return resp.OK, nil
}

// AbortGame aborts a board game.
func (c *BoardClient) AbortGame(ctx context.Context, gameID string) (bool, error) {
	var resp models.OKResponse
	if err := c.r.Do(ctx, Post("api/board/game/"+gameID+"/abort"), Params{}, &resp); err != nil {
		return false, err
	}
	return resp.OK, nil
}

// ResignGame resigns a board game.
func (c *BoardClient) ResignGame(ctx context.Context, gameID string) (bool, error) {
	var resp models.OKResponse
	if err := c.r.Do(ctx, Post("api/board/game/"+gameID+"/resign"), Params{}, &resp); err != nil {
		return false, err
	}
	return resp.OK, nil
}

// HandleDrawOffer creates, accepts or declines a draw offer. Pass accept
// true on a game without a pending offer to create one, or answer a pending
// offer either way. OfferDraw, AcceptDraw and DeclineDraw are the shorthand
// forms.
func (c *BoardClient) HandleDrawOffer(ctx context.Context, gameID string, accept bool) (bool, error) {
	answer := "no"
	if accept {
		answer = "yes"
	}

	var resp models.OKResponse
	if err := c.r.Do(ctx, Post("api/board/game/"+gameID+"/draw/"+answer), Params{}, &resp); err != nil {
		return false, err
	}
	return resp.OK, nil
}

// OfferDraw offers a draw in the given game.
func (c *BoardClient) OfferDraw(ctx context.Context, gameID string) (bool, error) {
	return c.HandleDrawOffer(ctx, gameID, true)
}

// AcceptDraw accepts a pending draw offer.
func (c *BoardClient) AcceptDraw(ctx context.Context, gameID string) (bool, error) {
	return c.HandleDrawOffer(ctx, gameID, true)
}

// DeclineDraw declines a pending draw offer.
func (c *BoardClient) DeclineDraw(ctx context.Context, gameID string) (bool, error) {
	return c.HandleDrawOffer(ctx, gameID, false)
}
