// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package simul

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	defaultRateLimit  = 10 // requests per second
	defaultRateBurst  = 20
	maxRetryAfterWait = 2 * time.Minute
	errorBodyLimit    = 8 << 10
)

// Requestor executes [Endpoint] values against a [TokenSession]: it applies
// the client-side rate limit, tags every request with a request id for the
// debug log, maps HTTP error statuses to sentinel errors, and handles one
// Retry-After backed retry on HTTP 429.
type Requestor struct {
	session *TokenSession
	limiter *rate.Limiter
	log     zerolog.Logger
}

// RequestorOption customises a [Requestor].
type RequestorOption func(*Requestor)

// WithLogger sets the logger used for request debug logging. The default
// discards everything.
func WithLogger(log zerolog.Logger) RequestorOption {
	return func(r *Requestor) { r.log = log }
}

// WithRateLimit replaces the default client-side limit of 10 rps with a
// burst of 20. A non-positive rps disables rate limiting.
func WithRateLimit(rps float64, burst int) RequestorOption {
	return func(r *Requestor) {
		if rps <= 0 {
			r.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		r.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// NewRequestor builds a Requestor on top of session.
func NewRequestor(session *TokenSession, opts ...RequestorOption) *Requestor {
	r := &Requestor{
		session: session,
		limiter: rate.NewLimiter(rate.Limit(defaultRateLimit), defaultRateBurst),
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Do executes ep and decodes the JSON response body into out. Pass a nil out
// to discard the body. Returns a sentinel-wrapped error for non-2xx
// statuses.
func (r *Requestor) Do(ctx context.Context, ep Endpoint, p Params, out any) error {
	resp, err := r.execute(ctx, ep, p)
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", ep.Path, err)
	}
	return nil
}

// Text executes ep and returns the raw response body, for PGN and plain-text
// endpoints.
func (r *Requestor) Text(ctx context.Context, ep Endpoint, p Params) (string, error) {
	resp, err := r.execute(ctx, ep, p)
	if err != nil {
		return "", err
	}
	return string(resp.Body()), nil
}

// Lines opens ep as a stream and yields the raw response lines. The caller
// owns the returned stream and must drain or Close it.
func (r *Requestor) Lines(ctx context.Context, ep Endpoint, p Params) (*Stream[string], error) {
	body, err := r.open(ctx, ep, p)
	if err != nil {
		return nil, err
	}
	return NewLineStream(body), nil
}

// RequestStream opens ep as an NDJSON stream and decodes each line into T.
// Blank keep-alive lines are skipped. The caller owns the returned stream
// and must drain or Close it.
func RequestStream[T any](ctx context.Context, r *Requestor, ep Endpoint, p Params) (*Stream[T], error) {
	body, err := r.open(ctx, ep, p)
	if err != nil {
		return nil, err
	}
	return NewStream[T](body), nil
}

func (r *Requestor) execute(ctx context.Context, ep Endpoint, p Params) (*resty.Response, error) {
	resp, err := r.send(ctx, r.session.client, ep, p, false)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode() == http.StatusTooManyRequests {
		wait, ok := retryAfter(resp.Header().Get("Retry-After"))
		if !ok {
			return nil, mapHTTPError(resp)
		}

		r.log.Warn().
			Str("path", ep.Path).
			Dur("retry_after", wait).
			Msg("rate limited by server, backing off")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}

		resp, err = r.send(ctx, r.session.client, ep, p, false)
		if err != nil {
			return nil, err
		}
	}

	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (r *Requestor) open(ctx context.Context, ep Endpoint, p Params) (io.ReadCloser, error) {
	resp, err := r.send(ctx, r.session.streamClient, ep, p, true)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.RawBody(), errorBodyLimit))
		_ = resp.RawBody().Close()
		return nil, mapStatusError(resp.StatusCode(), string(body))
	}

	return resp.RawBody(), nil
}

func (r *Requestor) send(ctx context.Context, cli *resty.Client, ep Endpoint, p Params, stream bool) (*resty.Response, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req := cli.R().
		SetContext(ctx).
		SetHeader("Accept", string(ep.Format)).
		SetDoNotParseResponse(stream)

	if len(p.Query) > 0 {
		req.SetQueryParams(p.Query)
	}
	switch {
	case p.JSON != nil:
		req.SetHeader("Content-Type", "application/json").SetBody(p.JSON)
	case len(p.Form) > 0:
		req.SetFormData(p.Form)
	case p.Body != "":
		req.SetHeader("Content-Type", "text/plain").SetBody(p.Body)
	}

	requestID := uuid.NewString()
	start := time.Now()

	resp, err := req.Execute(ep.Method, "/"+strings.TrimLeft(ep.Path, "/"))
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ep.Method, ep.Path, err)
	}

	r.log.Debug().
		Str("request_id", requestID).
		Str("method", ep.Method).
		Str("path", ep.Path).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("api request")

	return resp, nil
}

// retryAfter parses a Retry-After header given in seconds. Absent, malformed
// or unreasonably long values report false and the 429 is surfaced instead.
func retryAfter(header string) (time.Duration, bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return 0, false
	}

	secs, err := strconv.Atoi(header)
	if err != nil || secs < 0 {
		return 0, false
	}

	wait := time.Duration(secs) * time.Second
	if wait > maxRetryAfterWait {
		return 0, false
	}
	return wait, true
}
