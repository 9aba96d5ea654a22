// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ChallengeUser identifies one party of a challenge.
type ChallengeUser struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Title       string `json:"title,omitempty"`
	Rating      int    `json:"rating,omitempty"`
	Online      bool   `json:"online,omitempty"`
	Provisional bool   `json:"provisional,omitempty"`
}

// TimeControl describes the time control of a challenge.
type TimeControl struct {
	// Type is "clock", "correspondence" or "unlimited".
	Type string `json:"type"`

	// Limit is the initial clock time in seconds (clock type).
	Limit int `json:"limit,omitempty"`

	// Increment is the clock increment in seconds (clock type).
	Increment int `json:"increment,omitempty"`

	// DaysPerTurn applies to correspondence challenges.
	DaysPerTurn int `json:"daysPerTurn,omitempty"`

	// Show is the human-readable form, e.g. "5+3".
	Show string `json:"show,omitempty"`
}

// Challenge is a pending game invitation between two players.
type Challenge struct {
	ID          string         `json:"id"`
	URL         string         `json:"url,omitempty"`
	Status      string         `json:"status"`
	Challenger  ChallengeUser  `json:"challenger"`
	DestUser    *ChallengeUser `json:"destUser,omitempty"`
	Variant     VariantRef     `json:"variant"`
	Rated       bool           `json:"rated"`
	Speed       string         `json:"speed,omitempty"`
	TimeControl TimeControl    `json:"timeControl"`
	Color       string         `json:"color,omitempty"`
	Direction   string         `json:"direction,omitempty"`
	InitialFEN  string         `json:"initialFen,omitempty"`

	// DeclineReason is set on challengeDeclined events.
	DeclineReason string `json:"declineReason,omitempty"`
}

// OpenChallenge is the response to creating a challenge that any two players
// can join. It carries per-color join URLs on top of the challenge itself.
type OpenChallenge struct {
	Challenge     Challenge `json:"challenge"`
	URLWhite      string    `json:"urlWhite,omitempty"`
	URLBlack      string    `json:"urlBlack,omitempty"`
	SocketVersion int       `json:"socketVersion,omitempty"`
}
