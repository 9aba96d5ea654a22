// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Tournament is an arena tournament record. StartsAt uses [FlexTime] because
// the API returns a datetime string on creation but epoch millis in listings.
type Tournament struct {
	ID          string          `json:"id"`
	CreatedBy   string          `json:"createdBy,omitempty"`
	System      string          `json:"system,omitempty"`
	Minutes     int             `json:"minutes"`
	Clock       Clock           `json:"clock"`
	Rated       bool            `json:"rated"`
	FullName    string          `json:"fullName"`
	NbPlayers   int             `json:"nbPlayers"`
	Variant     VariantRef      `json:"variant"`
	StartsAt    FlexTime        `json:"startsAt,omitzero"`
	FinishesAt  FlexTime        `json:"finishesAt,omitzero"`
	Status      int             `json:"status,omitempty"`
	Perf        *TournamentPerf `json:"perf,omitempty"`
	Berserkable bool            `json:"berserkable,omitempty"`
	Password    bool            `json:"private,omitempty"`
	Position    *Opening        `json:"position,omitempty"`
	Winner      *LightUser      `json:"winner,omitempty"`
}

// TournamentPerf names the perf a tournament is rated under.
type TournamentPerf struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// CurrentTournaments groups tournaments by lifecycle phase, as returned by
// the tournament listing endpoint.
type CurrentTournaments struct {
	Created  []Tournament `json:"created"`
	Started  []Tournament `json:"started"`
	Finished []Tournament `json:"finished"`
}

// TournamentResult is one row of a tournament result stream: a player with
// score and performance, in rank order.
type TournamentResult struct {
	Rank        int    `json:"rank"`
	Score       int    `json:"score"`
	Rating      int    `json:"rating"`
	Username    string `json:"username"`
	Title       string `json:"title,omitempty"`
	Performance int    `json:"performance,omitempty"`
}
