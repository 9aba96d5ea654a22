package config

import "errors"

var (
	// ErrMissingToken is returned when no access token was provided by any
	// configuration source.
	ErrMissingToken = errors.New("access token is required: set SIMUL_API_TOKEN or pass -t")

	// ErrInvalidAddress is returned when the game-server address cannot be
	// parsed as a URL.
	ErrInvalidAddress = errors.New("invalid game-server address")

	// ErrInvalidLogLevel is returned when the configured log level is not a
	// known zerolog level name.
	ErrInvalidLogLevel = errors.New("invalid log level")
)
