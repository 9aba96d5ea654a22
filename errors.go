package simul

import "errors"

var (
	// ErrBadRequest maps HTTP 400.
	ErrBadRequest = errors.New("bad request")

	// ErrUnauthorized maps HTTP 401: missing, invalid or expired token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden maps HTTP 403: the token lacks the required scope.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound maps HTTP 404.
	ErrNotFound = errors.New("not found")

	// ErrTooManyRequests maps HTTP 429. The requestor retries once when the
	// server supplies a usable Retry-After; this error surfaces otherwise.
	ErrTooManyRequests = errors.New("too many requests")

	// ErrServer maps HTTP 5xx.
	ErrServer = errors.New("server error")
)
