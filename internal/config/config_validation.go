package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks the merged configuration for values the client cannot run
// without. It is called by the builder after defaults are applied.
func (cfg *StructuredConfig) validate() error {
	if cfg.API.Token == "" {
		return ErrMissingToken
	}

	addr := cfg.API.Address
	if !strings.Contains(addr, "://") {
		addr = "https://" + addr
	}
	if _, err := url.Parse(addr); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidAddress, cfg.API.Address, err)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.Log.Level)
	}

	return nil
}

// LogLevel returns the configured zerolog level. The level has been checked
// by validate, so parsing cannot fail here.
func (cfg *StructuredConfig) LogLevel() zerolog.Level {
	level, _ := zerolog.ParseLevel(cfg.Log.Level)
	return level
}
