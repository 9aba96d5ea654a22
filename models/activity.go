// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// ActivityInterval is the time window one activity entry covers.
type ActivityInterval struct {
	Start MillisTime `json:"start"`
	End   MillisTime `json:"end"`
}

// ActivityEntry is one entry of a user's activity feed. The feed payload is
// heterogeneous (games, puzzles, follows, posts, ...), so everything beyond
// the interval is passed through as raw JSON for the caller to pick apart.
type ActivityEntry struct {
	Interval ActivityInterval           `json:"interval"`
	Fields   map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON implements json.Unmarshaler, splitting the interval off from
// the variable remainder.
func (a *ActivityEntry) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	if raw, ok := fields["interval"]; ok {
		if err := json.Unmarshal(raw, &a.Interval); err != nil {
			return err
		}
		delete(fields, "interval")
	}

	a.Fields = fields
	return nil
}

// PuzzleActivity is one entry of the puzzle activity stream.
type PuzzleActivity struct {
	ID           string     `json:"id"`
	Date         MillisTime `json:"date"`
	Win          bool       `json:"win"`
	Rating       int        `json:"rating,omitempty"`
	RatingDiff   int        `json:"ratingDiff,omitempty"`
	PuzzleRating int        `json:"puzzleRating,omitempty"`
}
