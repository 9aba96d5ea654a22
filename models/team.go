// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Team is a player team record.
type Team struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Open        bool        `json:"open,omitempty"`
	Leader      *LightUser  `json:"leader,omitempty"`
	Leaders     []LightUser `json:"leaders,omitempty"`
	NbMembers   int         `json:"nbMembers,omitempty"`
}

// Simul is a simultaneous exhibition: one host versus many players.
type Simul struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	FullName     string       `json:"fullName,omitempty"`
	Host         *SimulHost   `json:"host,omitempty"`
	IsCreated    bool         `json:"isCreated,omitempty"`
	IsRunning    bool         `json:"isRunning,omitempty"`
	IsFinished   bool         `json:"isFinished,omitempty"`
	NbApplicants int          `json:"nbApplicants,omitempty"`
	NbPairings   int          `json:"nbPairings,omitempty"`
	Text         string       `json:"text,omitempty"`
	Variants     []VariantRef `json:"variants,omitempty"`
}

// SimulHost describes the host of a simul.
type SimulHost struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Title  string `json:"title,omitempty"`
	Rating int    `json:"rating,omitempty"`
	GameID string `json:"gameId,omitempty"`
}

// CurrentSimuls groups simuls by lifecycle phase.
type CurrentSimuls struct {
	Pending  []Simul `json:"pending"`
	Created  []Simul `json:"created"`
	Started  []Simul `json:"started"`
	Finished []Simul `json:"finished"`
}
