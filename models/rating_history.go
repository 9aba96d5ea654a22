// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// RatingPoint is one rating sample in a rating history. The API encodes it
// as a four-element array: [year, month, day, rating]. Month is zero-based
// on the wire and kept that way here, matching the raw API value.
type RatingPoint struct {
	Year   int
	Month  int
	Day    int
	Rating int
}

// UnmarshalJSON implements json.Unmarshaler for the array encoding.
func (p *RatingPoint) UnmarshalJSON(data []byte) error {
	var tuple []int
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	if len(tuple) != 4 {
		return fmt.Errorf("rating point: want 4 elements, got %d", len(tuple))
	}

	p.Year, p.Month, p.Day, p.Rating = tuple[0], tuple[1], tuple[2], tuple[3]
	return nil
}

// MarshalJSON implements json.Marshaler.
func (p RatingPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([]int{p.Year, p.Month, p.Day, p.Rating})
}

// RatingHistory is the rating trajectory of a user for one perf.
type RatingHistory struct {
	Name   string        `json:"name"`
	Points []RatingPoint `json:"points"`
}
