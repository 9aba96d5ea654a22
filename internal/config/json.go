package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration wraps time.Duration to support JSON values written either as a
// duration string ("30s") or as an integer number of nanoseconds.
type Duration struct {
	time.Duration
}

// UnmarshalJSON implements json.Unmarshaler for Duration.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		d.Duration = parsed
	default:
		return fmt.Errorf("invalid duration value: %v", v)
	}

	return nil
}

// StructuredJSONConfig mirrors StructuredConfig with JSON tags and Duration
// fields so a configuration file can use human-readable duration strings.
type StructuredJSONConfig struct {
	API struct {
		Address        string   `json:"address"`
		Token          string   `json:"token"`
		RequestTimeout Duration `json:"request_timeout"`
		UserAgent      string   `json:"user_agent"`
		RateLimitRPS   float64  `json:"rate_limit_rps"`
		RateLimitBurst int      `json:"rate_limit_burst"`
	} `json:"api"`
	Watch struct {
		PollInterval Duration `json:"poll_interval"`
		GameCount    int      `json:"game_count"`
	} `json:"watch"`
	Log struct {
		Level string `json:"level"`
	} `json:"log"`
}

// toStructuredConfig converts the JSON representation into the canonical
// StructuredConfig used by the merge step.
func (j *StructuredJSONConfig) toStructuredConfig() *StructuredConfig {
	return &StructuredConfig{
		API: API{
			Address:        j.API.Address,
			Token:          j.API.Token,
			RequestTimeout: j.API.RequestTimeout.Duration,
			UserAgent:      j.API.UserAgent,
			RateLimitRPS:   j.API.RateLimitRPS,
			RateLimitBurst: j.API.RateLimitBurst,
		},
		Watch: Watch{
			PollInterval: j.Watch.PollInterval.Duration,
			GameCount:    j.Watch.GameCount,
		},
		Log: Log{
			Level: j.Log.Level,
		},
	}
}

func parseJSON(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading JSON config file: %w", err)
	}

	jsonCfg := &StructuredJSONConfig{}
	if err := json.Unmarshal(data, jsonCfg); err != nil {
		return nil, fmt.Errorf("error parsing JSON config file: %w", err)
	}

	return jsonCfg.toStructuredConfig(), nil
}
