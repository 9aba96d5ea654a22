// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package simul

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-simul/models"
)

// TournamentsClient groups the arena tournament endpoints.
type TournamentsClient struct {
	r *Requestor
}

// TournamentOptions configures a new tournament beyond its time control and
// length.
type TournamentOptions struct {
	// Name of the tournament; the server invents one when empty.
	Name string

	// WaitMinutes schedules the start relative to now. Overridden by
	// StartDate.
	WaitMinutes int

	// StartDate schedules an absolute start time (epoch millis).
	StartDate int64

	// Variant key; empty means standard.
	Variant string

	// Rated makes the games affect ratings.
	Rated *bool

	// Berserkable lets players halve their clock for an extra point.
	Berserkable *bool

	// Position is a custom initial position in FEN.
	Position string

	// Password makes the tournament private.
	Password string

	// Conditions are entry conditions, e.g. "maxRating.rating": 2000.
	Conditions map[string]any
}

// Get returns recently finished, ongoing, and upcoming tournaments.
func (c *TournamentsClient) Get(ctx context.Context) (*models.CurrentTournaments, error) {
	var current models.CurrentTournaments
	if err := c.r.Do(ctx, Get("api/tournament"), Params{}, &current); err != nil {
		return nil, err
	}
	return &current, nil
}

// Create creates a new tournament with clockMinutes+clockIncrement(seconds)
// games over lengthMinutes.
func (c *TournamentsClient) Create(ctx context.Context, clockMinutes, clockIncrement, lengthMinutes int, opts *TournamentOptions) (*models.Tournament, error) {
	body := map[string]any{
		"clockTime":      clockMinutes,
		"clockIncrement": clockIncrement,
		"minutes":        lengthMinutes,
	}
	if opts != nil {
		if opts.Name != "" {
			body["name"] = opts.Name
		}
		if opts.WaitMinutes > 0 {
			body["waitMinutes"] = opts.WaitMinutes
		}
		if opts.StartDate > 0 {
			body["startDate"] = opts.StartDate
		}
		if opts.Variant != "" {
			body["variant"] = opts.Variant
		}
		if opts.Rated != nil {
			body["rated"] = *opts.Rated
		}
		if opts.Berserkable != nil {
			body["berserkable"] = *opts.Berserkable
		}
		if opts.Position != "" {
			body["position"] = opts.Position
		}
		if opts.Password != "" {
			body["password"] = opts.Password
		}
		for cond, v := range opts.Conditions {
			body[fmt.Sprintf("conditions.%s", cond)] = v
		}
	}

	var tournament models.Tournament
	if err := c.r.Do(ctx, Post("api/tournament"), Params{JSON: body}, &tournament); err != nil {
		return nil, err
	}
	return &tournament, nil
}

// ExportGames streams the games of a tournament as decoded JSON.
func (c *TournamentsClient) ExportGames(ctx context.Context, tournamentID string, opts *GameExportOptions) (*Stream[models.Game], error) {
	ep := Get("api/tournament/" + tournamentID + "/games").WithFormat(FormatNDJSON)
	return RequestStream[models.Game](ctx, c.r, ep, Params{Query: opts.query()})
}

// ExportGamesPGN streams the games of a tournament as raw PGN lines.
func (c *TournamentsClient) ExportGamesPGN(ctx context.Context, tournamentID string, opts *GameExportOptions) (*Stream[string], error) {
	ep := Get("api/tournament/" + tournamentID + "/games").WithFormat(FormatPGN)
	return c.r.Lines(ctx, ep, Params{Query: opts.query()})
}

// StreamResults streams the players of a tournament with score and
// performance, in rank order. Results of an ongoing tournament can be
// inconsistent while rankings move. limit 0 streams everything.
func (c *TournamentsClient) StreamResults(ctx context.Context, tournamentID string, limit int) (*Stream[models.TournamentResult], error) {
	q := map[string]string{}
	setInt(q, "nb", limit)

	ep := Get("api/tournament/" + tournamentID + "/results").WithFormat(FormatNDJSON)
	return RequestStream[models.TournamentResult](ctx, c.r, ep, Params{Query: q})
}

// StreamByCreator streams the tournaments created by a player.
func (c *TournamentsClient) StreamByCreator(ctx context.Context, username string) (*Stream[models.Tournament], error) {
	ep := Get("api/user/" + username + "/tournament/created").WithFormat(FormatNDJSON)
	return RequestStream[models.Tournament](ctx, c.r, ep, Params{})
}
