// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// MillisTime is a time.Time decoded from the epoch-milliseconds integers the
// API uses for timestamps. Decoded values are normalized to UTC.
type MillisTime struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler for MillisTime.
func (t *MillisTime) UnmarshalJSON(data []byte) error {
	var millis int64
	if err := json.Unmarshal(data, &millis); err != nil {
		return fmt.Errorf("timestamp must be epoch millis: %w", err)
	}

	t.Time = time.UnixMilli(millis).UTC()
	return nil
}

// MarshalJSON implements json.Marshaler for MillisTime.
func (t MillisTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.UnixMilli())
}

// FlexTime is a time.Time decoded from either epoch milliseconds or an
// RFC 3339 string. Tournament start times arrive in both shapes depending on
// the endpoint.
type FlexTime struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler for FlexTime.
func (t *FlexTime) UnmarshalJSON(data []byte) error {
	var millis int64
	if err := json.Unmarshal(data, &millis); err == nil {
		t.Time = time.UnixMilli(millis).UTC()
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be epoch millis or a string: %w", err)
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05.000Z"} {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("unsupported timestamp format: %q", s)
}

// MarshalJSON implements json.Marshaler for FlexTime.
func (t FlexTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.UnixMilli())
}

// MillisDuration is a time.Duration decoded from the millisecond integers
// used for clock times.
type MillisDuration time.Duration

// UnmarshalJSON implements json.Unmarshaler for MillisDuration.
func (d *MillisDuration) UnmarshalJSON(data []byte) error {
	var millis int64
	if err := json.Unmarshal(data, &millis); err != nil {
		return fmt.Errorf("duration must be millis: %w", err)
	}

	*d = MillisDuration(time.Duration(millis) * time.Millisecond)
	return nil
}

// MarshalJSON implements json.Marshaler for MillisDuration.
func (d MillisDuration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).Milliseconds())
}

// Duration returns d as a plain time.Duration.
func (d MillisDuration) Duration() time.Duration {
	return time.Duration(d)
}
