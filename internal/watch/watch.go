// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package watch runs the background jobs behind the watch screen of the
// go-simul client: a ticker that refreshes the list of ongoing games and a
// long-lived consumer of the account event stream.
package watch

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	simul "github.com/MKhiriev/go-simul"
	"github.com/MKhiriev/go-simul/internal/logger"
	"github.com/MKhiriev/go-simul/models"
)

//go:generate mockgen -source=watch.go -destination=../mock/game_client_mock.go -package=mock

// GameClient is the slice of the API client the watch service depends on.
type GameClient interface {
	// StreamIncomingEvents opens the account event stream.
	StreamIncomingEvents(ctx context.Context) (*simul.Stream[models.Event], error)
	// Ongoing returns up to count games the account is currently playing.
	Ongoing(ctx context.Context, count int) ([]models.OngoingGame, error)
}

// Config holds the tunables of the watch service.
type Config struct {
	// PollInterval defines how often the ongoing-games list is refreshed.
	PollInterval time.Duration
	// GameCount limits how many games are fetched per refresh.
	GameCount int
}

// Service polls ongoing games and consumes account events, publishing both
// on channels for the TUI to render.
type Service struct {
	client GameClient
	cfg    Config
	log    *logger.Logger

	events chan models.Event
	games  chan []models.OngoingGame
}

// reconnectDelay is the pause between event stream reconnect attempts.
const reconnectDelay = 3 * time.Second

// NewService constructs a watch service. Channels are buffered so a slow
// TUI frame never blocks the network goroutines.
func NewService(client GameClient, cfg Config, log *logger.Logger) *Service {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 30 * time.Second
	}
	if cfg.GameCount <= 0 {
		cfg.GameCount = 10
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Service{
		client: client,
		cfg:    cfg,
		log:    log,
		events: make(chan models.Event, 16),
		games:  make(chan []models.OngoingGame, 1),
	}
}

// Events returns the channel of incoming account events.
func (s *Service) Events() <-chan models.Event {
	return s.events
}

// Games returns the channel of ongoing-games snapshots. Each value replaces
// the previous snapshot entirely.
func (s *Service) Games() <-chan []models.OngoingGame {
	return s.games
}

// Run starts the polling and streaming goroutines and blocks until ctx is
// cancelled or one of them fails with an unrecoverable error.
// The output channels are closed before Run returns.
func (s *Service) Run(ctx context.Context) error {
	defer close(s.events)
	defer close(s.games)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.pollGames(ctx)
	})
	g.Go(func() error {
		return s.consumeEvents(ctx)
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// pollGames refreshes the ongoing-games snapshot immediately and then on
// every tick. Fetch errors are logged and the previous snapshot stays
// current until the next successful refresh.
func (s *Service) pollGames(ctx context.Context) error {
	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()

	for {
		s.refreshGames(ctx)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (s *Service) refreshGames(ctx context.Context) {
	games, err := s.client.Ongoing(ctx, s.cfg.GameCount)
	if err != nil {
		if ctx.Err() == nil {
			s.log.Warn().Err(err).Msg("ongoing games refresh failed")
		}
		return
	}

	// Drop the stale snapshot if the TUI has not consumed it yet.
	select {
	case <-s.games:
	default:
	}

	select {
	case s.games <- games:
	case <-ctx.Done():
	}
}

// consumeEvents keeps the account event stream open, reconnecting after
// transient failures until ctx is cancelled.
func (s *Service) consumeEvents(ctx context.Context) error {
	for {
		if err := s.consumeOnce(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.log.Warn().Err(err).Msg("event stream interrupted, reconnecting")
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(reconnectDelay):
		}
	}
}

func (s *Service) consumeOnce(ctx context.Context) error {
	stream, err := s.client.StreamIncomingEvents(ctx)
	if err != nil {
		return err
	}
	defer stream.Close()

	for event := range stream.C() {
		s.log.Debug().Str("event_type", event.Type).Msg("incoming event")

		select {
		case s.events <- event:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return stream.Err()
}
