// Package tui renders the watch screen of the go-simul client: the list of
// ongoing games of the account and a live feed of incoming events.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-simul/internal/logger"
	"github.com/MKhiriev/go-simul/internal/watch"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	service *watch.Service
	baseURL string
	log     *logger.Logger
}

func New(service *watch.Service, baseURL string, log *logger.Logger) (*TUI, error) {
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{service: service, baseURL: baseURL, log: log}, nil
}

// WatchLoop runs the watch screen until the user quits or ctx is cancelled.
func (t *TUI) WatchLoop(ctx context.Context) error {
	model := newWatchModel(t.service, t.baseURL)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		if errors.Is(runErr, context.Canceled) {
			return nil
		}
		t.log.Error().Err(runErr).Msg("watch screen terminated")
		return runErr
	}

	result, ok := finalModel.(watchModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
