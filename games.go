// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package simul

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-simul/models"
)

// GamesClient groups the game export endpoints. Each export exists in a JSON
// and a PGN variant; the server renders whichever the Accept header asks
// for.
type GamesClient struct {
	r *Requestor
}

// GameExportOptions selects which optional sections game exports include.
// Nil fields keep the server defaults; use [Bool] to set one explicitly.
type GameExportOptions struct {
	// Moves includes the move list.
	Moves *bool

	// Tags includes the PGN tags.
	Tags *bool

	// Clocks includes clock comments in the moves, when available.
	Clocks *bool

	// Evals includes analysis evaluation comments, when available.
	Evals *bool

	// Opening includes the opening name.
	Opening *bool

	// Literate includes textual annotations (PGN only).
	Literate *bool
}

func (o *GameExportOptions) query() map[string]string {
	q := map[string]string{}
	if o == nil {
		return q
	}
	setBool(q, "moves", o.Moves)
	setBool(q, "tags", o.Tags)
	setBool(q, "clocks", o.Clocks)
	setBool(q, "evals", o.Evals)
	setBool(q, "opening", o.Opening)
	setBool(q, "literate", o.Literate)
	return q
}

// PlayerGamesOptions filters the games returned by the per-player export.
type PlayerGamesOptions struct {
	GameExportOptions

	// Since is the lower bound on the game timestamp, in epoch millis.
	Since int64

	// Until is the upper bound on the game timestamp, in epoch millis.
	Until int64

	// Max limits the number of games; 0 means no limit.
	Max int

	// Vs filters by the username of the opponent.
	Vs string

	// Rated filters by game mode: rated (true) or casual (false).
	Rated *bool

	// PerfType filters by speed or variant key.
	PerfType string

	// Color filters by the color the player held.
	Color string

	// Analysed filters by analysis availability.
	Analysed *bool
}

func (o *PlayerGamesOptions) query() map[string]string {
	if o == nil {
		return map[string]string{}
	}

	q := o.GameExportOptions.query()
	setInt64(q, "since", o.Since)
	setInt64(q, "until", o.Until)
	setInt(q, "max", o.Max)
	setString(q, "vs", o.Vs)
	setBool(q, "rated", o.Rated)
	setString(q, "perfType", o.PerfType)
	setString(q, "color", o.Color)
	setBool(q, "analysed", o.Analysed)
	return q
}

// Export returns one finished game decoded from JSON.
func (c *GamesClient) Export(ctx context.Context, gameID string, opts *GameExportOptions) (*models.Game, error) {
	var game models.Game
	p := Params{Query: opts.query()}
	if err := c.r.Do(ctx, Get("game/export/"+gameID), p, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

// ExportPGN returns one finished game as PGN text.
func (c *GamesClient) ExportPGN(ctx context.Context, gameID string, opts *GameExportOptions) (string, error) {
	ep := Get("game/export/" + gameID).WithFormat(FormatPGN)
	return c.r.Text(ctx, ep, Params{Query: opts.query()})
}

// ExportByPlayer streams the games of one player as decoded JSON.
func (c *GamesClient) ExportByPlayer(ctx context.Context, username string, opts *PlayerGamesOptions) (*Stream[models.Game], error) {
	ep := Get("api/games/user/" + username).WithFormat(FormatNDJSON)
	return RequestStream[models.Game](ctx, c.r, ep, Params{Query: opts.query()})
}

// ExportByPlayerPGN streams the games of one player as raw PGN lines.
func (c *GamesClient) ExportByPlayerPGN(ctx context.Context, username string, opts *PlayerGamesOptions) (*Stream[string], error) {
	ep := Get("api/games/user/" + username).WithFormat(FormatPGN)
	return c.r.Lines(ctx, ep, Params{Query: opts.query()})
}

// ExportMulti streams up to 300 games by id as decoded JSON.
func (c *GamesClient) ExportMulti(ctx context.Context, gameIDs []string, opts *GameExportOptions) (*Stream[models.Game], error) {
	ep := Post("games/export/_ids").WithFormat(FormatNDJSON)
	p := Params{Query: opts.query(), Body: strings.Join(gameIDs, ",")}
	return RequestStream[models.Game](ctx, c.r, ep, p)
}

// ExportMultiPGN streams up to 300 games by id as raw PGN lines.
func (c *GamesClient) ExportMultiPGN(ctx context.Context, gameIDs []string, opts *GameExportOptions) (*Stream[string], error) {
	ep := Post("games/export/_ids").WithFormat(FormatPGN)
	p := Params{Query: opts.query(), Body: strings.Join(gameIDs, ",")}
	return c.r.Lines(ctx, ep, p)
}

// AmongPlayers streams the games currently being played among the given
// players. Games with only one of the players are not included.
func (c *GamesClient) AmongPlayers(ctx context.Context, usernames ...string) (*Stream[models.Game], error) {
	ep := Post("api/stream/games-by-users").WithFormat(FormatNDJSON)
	p := Params{Body: strings.Join(usernames, ",")}
	return RequestStream[models.Game](ctx, c.r, ep, p)
}

// Ongoing returns up to count currently ongoing games of the authenticated
// user.
func (c *GamesClient) Ongoing(ctx context.Context, count int) ([]models.OngoingGame, error) {
	if count <= 0 {
		count = 10
	}

	var resp struct {
		NowPlaying []models.OngoingGame `json:"nowPlaying"`
	}
	q := map[string]string{}
	setInt(q, "nb", count)
	if err := c.r.Do(ctx, Get("api/account/playing"), Params{Query: q}, &resp); err != nil {
		return nil, err
	}
	return resp.NowPlaying, nil
}

// TVChannels returns the best ongoing game of each speed and variant, keyed
// by channel name.
func (c *GamesClient) TVChannels(ctx context.Context) (map[string]models.TVChannel, error) {
	var channels map[string]models.TVChannel
	if err := c.r.Do(ctx, Get("api/tv/channels"), Params{}, &channels); err != nil {
		return nil, err
	}
	return channels, nil
}
