package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	simul "github.com/MKhiriev/go-simul"
	"github.com/MKhiriev/go-simul/internal/config"
	"github.com/MKhiriev/go-simul/internal/logger"
	"github.com/MKhiriev/go-simul/internal/tui"
	"github.com/MKhiriev/go-simul/internal/watch"
	"github.com/MKhiriev/go-simul/models"
)

type App struct {
	watcher *watch.Service
	tui     *tui.TUI
	log     *logger.Logger
}

func NewApp(cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	session, err := simul.NewTokenSession(simul.SessionConfig{
		BaseURL:   cfg.API.Address,
		Token:     cfg.API.Token,
		Timeout:   cfg.API.RequestTimeout,
		UserAgent: cfg.API.UserAgent,
	})
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	requestorOpts := []simul.RequestorOption{
		simul.WithLogger(log.Logger),
	}
	if cfg.API.RateLimitRPS > 0 {
		requestorOpts = append(requestorOpts, simul.WithRateLimit(cfg.API.RateLimitRPS, cfg.API.RateLimitBurst))
	}

	api := simul.NewClient(session, simul.WithRequestorOptions(requestorOpts...))

	watcher := watch.NewService(
		&gameClient{api: api},
		watch.Config{
			PollInterval: cfg.Watch.PollInterval,
			GameCount:    cfg.Watch.GameCount,
		},
		log.GetChildLogger(),
	)

	ui, err := tui.New(watcher, session.BaseURL(), log)
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{watcher: watcher, tui: ui, log: log}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	ctx, cancel := context.WithCancel(ctx)

	g.Go(func() error {
		return a.watcher.Run(ctx)
	})
	g.Go(func() error {
		defer cancel()
		return a.tui.WatchLoop(ctx)
	})

	err := g.Wait()
	if errors.Is(err, tui.ErrUserQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// gameClient narrows the full API client to the slice the watch service
// needs.
type gameClient struct {
	api *simul.Client
}

func (c *gameClient) StreamIncomingEvents(ctx context.Context) (*simul.Stream[models.Event], error) {
	return c.api.Board.StreamIncomingEvents(ctx)
}

func (c *gameClient) Ongoing(ctx context.Context, count int) ([]models.OngoingGame, error) {
	return c.api.Games.Ongoing(ctx, count)
}
