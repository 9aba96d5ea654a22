// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package watch

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	simul "github.com/MKhiriev/go-simul"
	"github.com/MKhiriev/go-simul/internal/mock"
	"github.com/MKhiriev/go-simul/models"
)

func eventStream(ndjson string) *simul.Stream[models.Event] {
	return simul.NewStream[models.Event](io.NopCloser(strings.NewReader(ndjson)))
}

func TestNewService_Defaults(t *testing.T) {
	svc := NewService(nil, Config{}, nil)

	assert.Equal(t, 30*time.Second, svc.cfg.PollInterval)
	assert.Equal(t, 10, svc.cfg.GameCount)
	assert.NotNil(t, svc.log)
}

func TestService_Run_DeliversGamesAndEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockGameClient(ctrl)

	games := []models.OngoingGame{{GameID: "g1", FullID: "g1full"}}
	client.EXPECT().Ongoing(gomock.Any(), 4).Return(games, nil).MinTimes(1)
	client.EXPECT().StreamIncomingEvents(gomock.Any()).DoAndReturn(
		func(context.Context) (*simul.Stream[models.Event], error) {
			return eventStream("{\"type\":\"gameStart\",\"game\":{\"id\":\"g1\"}}\n"), nil
		},
	).MinTimes(1)

	svc := NewService(client, Config{PollInterval: time.Hour, GameCount: 4}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Run(ctx) }()

	select {
	case snapshot := <-svc.Games():
		require.Len(t, snapshot, 1)
		assert.Equal(t, "g1", snapshot[0].GameID)
	case <-time.After(2 * time.Second):
		t.Fatal("no games snapshot received")
	}

	select {
	case event := <-svc.Events():
		assert.Equal(t, "gameStart", event.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("no event received")
	}

	cancel()
	require.NoError(t, <-done)

	// после Run оба канала должны быть закрыты
	for range svc.Events() {
	}
	for range svc.Games() {
	}
}

func TestService_Run_SurvivesFetchErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockGameClient(ctrl)

	client.EXPECT().Ongoing(gomock.Any(), 10).Return(nil, errors.New("boom")).MinTimes(1)
	client.EXPECT().StreamIncomingEvents(gomock.Any()).DoAndReturn(
		func(context.Context) (*simul.Stream[models.Event], error) {
			return eventStream("{\"type\":\"challenge\",\"challenge\":{\"id\":\"ch1\",\"status\":\"created\"}}\n"), nil
		},
	).MinTimes(1)

	svc := NewService(client, Config{PollInterval: time.Hour}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Run(ctx) }()

	// ошибка опроса не останавливает поток событий
	select {
	case event := <-svc.Events():
		assert.Equal(t, "challenge", event.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("no event received")
	}

	cancel()
	require.NoError(t, <-done)
}

func TestService_Run_StreamOpenErrorRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockGameClient(ctrl)

	client.EXPECT().Ongoing(gomock.Any(), 10).Return(nil, nil).MinTimes(1)
	client.EXPECT().StreamIncomingEvents(gomock.Any()).Return(nil, errors.New("dial failed")).MinTimes(1)

	svc := NewService(client, Config{PollInterval: time.Hour}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Run(ctx) }()

	// даём сервису наткнуться на ошибку открытия стрима
	time.Sleep(50 * time.Millisecond)
	cancel()

	require.NoError(t, <-done)
}

func TestService_GamesSnapshotReplaced(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockGameClient(ctrl)

	first := []models.OngoingGame{{GameID: "old"}}
	second := []models.OngoingGame{{GameID: "new"}}
	gomock.InOrder(
		client.EXPECT().Ongoing(gomock.Any(), 10).Return(first, nil),
		client.EXPECT().Ongoing(gomock.Any(), 10).Return(second, nil).MinTimes(1),
	)
	client.EXPECT().StreamIncomingEvents(gomock.Any()).DoAndReturn(
		func(context.Context) (*simul.Stream[models.Event], error) {
			return eventStream(""), nil
		},
	).MinTimes(1)

	svc := NewService(client, Config{PollInterval: 20 * time.Millisecond}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Run(ctx) }()

	// непрочитанный снапшот вытесняется свежим
	require.Eventually(t, func() bool {
		select {
		case snapshot := <-svc.Games():
			return len(snapshot) == 1 && snapshot[0].GameID == "new"
		default:
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}
