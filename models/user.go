// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models defines the data structures exchanged with the game-server
// API. Timestamps arrive as epoch milliseconds and are decoded into
// timezone-aware UTC times via [MillisTime]; see times.go for the other
// format quirks the API exhibits.
package models

// Perf holds the rating statistics of a user for one speed or variant.
type Perf struct {
	// Games is the number of rated games played at this perf.
	Games int `json:"games"`

	// Rating is the current rating.
	Rating int `json:"rating"`

	// RD is the rating deviation.
	RD int `json:"rd"`

	// Prog is the rating progression over recent games.
	Prog int `json:"prog"`

	// Prov reports whether the rating is still provisional.
	Prov bool `json:"prov,omitempty"`
}

// Profile is the free-form public profile section of a user.
type Profile struct {
	Country    string `json:"country,omitempty"`
	Location   string `json:"location,omitempty"`
	Bio        string `json:"bio,omitempty"`
	FirstName  string `json:"firstName,omitempty"`
	LastName   string `json:"lastName,omitempty"`
	FideRating int    `json:"fideRating,omitempty"`
	Links      string `json:"links,omitempty"`
}

// User is the public record of a player account.
type User struct {
	// ID is the lowercase unique identifier of the user.
	ID string `json:"id"`

	// Username is the display form of the user name.
	Username string `json:"username"`

	// Title is the chess title, if any (GM, IM, BOT, ...).
	Title string `json:"title,omitempty"`

	// Online reports whether the user is currently connected.
	Online bool `json:"online,omitempty"`

	// Perfs maps perf keys (bullet, blitz, rapid, ...) to rating stats.
	Perfs map[string]Perf `json:"perfs,omitempty"`

	// CreatedAt is when the account was created.
	CreatedAt MillisTime `json:"createdAt,omitzero"`

	// SeenAt is when the user was last seen online.
	SeenAt MillisTime `json:"seenAt,omitzero"`

	Profile      *Profile `json:"profile,omitempty"`
	PlayTime     PlayTime `json:"playTime,omitzero"`
	Patron       bool     `json:"patron,omitempty"`
	Disabled     bool     `json:"disabled,omitempty"`
	TOSViolation bool     `json:"tosViolation,omitempty"`
}

// PlayTime aggregates total seconds a user has spent playing and on TV.
type PlayTime struct {
	Total int64 `json:"total"`
	TV    int64 `json:"tv"`
}

// UserStatus is the lightweight realtime status record returned for a batch
// of user ids. Only ID and Name are populated for offline users.
type UserStatus struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Title     string `json:"title,omitempty"`
	Online    bool   `json:"online,omitempty"`
	Playing   bool   `json:"playing,omitempty"`
	Streaming bool   `json:"streaming,omitempty"`
	Patron    bool   `json:"patron,omitempty"`
}

// Streamer describes a user currently streaming a game.
type Streamer struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Title  string `json:"title,omitempty"`
	Patron bool   `json:"patron,omitempty"`
}

// LeaderboardEntry is one row of a speed/variant leaderboard.
type LeaderboardEntry struct {
	ID       string          `json:"id"`
	Username string          `json:"username"`
	Title    string          `json:"title,omitempty"`
	Perfs    map[string]Perf `json:"perfs"`
}
