// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── MillisTime ───────────────────────────────────────────────────────────────

func TestMillisTime_Unmarshal(t *testing.T) {
	var ts MillisTime
	require.NoError(t, json.Unmarshal([]byte(`1514505150384`), &ts))

	assert.Equal(t, time.UTC, ts.Location())
	assert.Equal(t, int64(1514505150384), ts.UnixMilli())
	assert.Equal(t, 2017, ts.Year())
}

func TestMillisTime_UnmarshalRejectsString(t *testing.T) {
	var ts MillisTime
	err := json.Unmarshal([]byte(`"2017-12-28T23:52:30Z"`), &ts)

	require.Error(t, err)
}

func TestMillisTime_RoundTrip(t *testing.T) {
	ts := MillisTime{time.UnixMilli(1514505150384).UTC()}

	data, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, "1514505150384", string(data))
}

// ── FlexTime ─────────────────────────────────────────────────────────────────

func TestFlexTime_UnmarshalMillis(t *testing.T) {
	var ts FlexTime
	require.NoError(t, json.Unmarshal([]byte(`1514505150384`), &ts))

	assert.Equal(t, int64(1514505150384), ts.UnixMilli())
}

func TestFlexTime_UnmarshalString(t *testing.T) {
	tests := []string{
		`"2024-05-01T16:00:00Z"`,
		`"2024-05-01T16:00:00.000Z"`,
		`"2024-05-01T18:00:00+02:00"`,
	}

	for _, raw := range tests {
		var ts FlexTime
		require.NoError(t, json.Unmarshal([]byte(raw), &ts), "raw=%s", raw)
		assert.Equal(t, time.Date(2024, 5, 1, 16, 0, 0, 0, time.UTC), ts.Time, "raw=%s", raw)
	}
}

func TestFlexTime_UnmarshalInvalid(t *testing.T) {
	var ts FlexTime

	require.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
	require.Error(t, json.Unmarshal([]byte(`true`), &ts))
}

// ── MillisDuration ───────────────────────────────────────────────────────────

func TestMillisDuration_Unmarshal(t *testing.T) {
	var d MillisDuration
	require.NoError(t, json.Unmarshal([]byte(`59000`), &d))

	assert.Equal(t, 59*time.Second, d.Duration())
}

func TestMillisDuration_RoundTrip(t *testing.T) {
	d := MillisDuration(90 * time.Second)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, "90000", string(data))
}
