// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BroadcastInfo is the inner broadcast record.
type BroadcastInfo struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Slug        string        `json:"slug,omitempty"`
	Description string        `json:"description,omitempty"`
	Markdown    string        `json:"markup,omitempty"`
	Credit      string        `json:"credit,omitempty"`
	OwnerID     string        `json:"ownerId,omitempty"`
	StartsAt    MillisTime    `json:"startsAt,omitzero"`
	StartedAt   MillisTime    `json:"startedAt,omitzero"`
	Official    bool          `json:"official,omitempty"`
	Sync        *BroadcastSync `json:"sync,omitempty"`
}

// BroadcastSync describes the polling state of a broadcast source URL.
type BroadcastSync struct {
	Ongoing bool     `json:"ongoing"`
	URL     string   `json:"url,omitempty"`
	Log     []string `json:"log,omitempty"`
}

// Broadcast is a relay of one or more games, as returned by the broadcast
// endpoints.
type Broadcast struct {
	Broadcast BroadcastInfo `json:"broadcast"`
	URL       string        `json:"url,omitempty"`
}
