// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package simul

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"sync"
	"sync/atomic"
)

const (
	streamChannelBuffer = 8
	streamInitialBuffer = 64 << 10
	streamMaxLine       = 4 << 20 // full game exports can produce long NDJSON lines
)

// Stream is a live sequence of values decoded from a streaming response
// body. Values are delivered on C until the stream ends; afterwards Err
// reports why. Close cancels the stream early and is idempotent.
type Stream[T any] struct {
	ch   chan T
	body io.ReadCloser
	done chan struct{}

	once   sync.Once
	closed atomic.Bool

	mu  sync.Mutex
	err error
}

// NewStream decodes newline-delimited JSON from body into values of T.
// Blank keep-alive lines are skipped. The stream takes ownership of body.
func NewStream[T any](body io.ReadCloser) *Stream[T] {
	return newStream(body, func(line []byte) (T, bool, error) {
		var v T
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			return v, false, nil
		}
		if err := json.Unmarshal(line, &v); err != nil {
			return v, false, err
		}
		return v, true, nil
	})
}

// NewLineStream yields every line of body verbatim, blank lines included.
// PGN streams rely on blank lines to separate games.
func NewLineStream(body io.ReadCloser) *Stream[string] {
	return newStream(body, func(line []byte) (string, bool, error) {
		return string(line), true, nil
	})
}

func newStream[T any](body io.ReadCloser, decode func([]byte) (T, bool, error)) *Stream[T] {
	s := &Stream[T]{
		ch:   make(chan T, streamChannelBuffer),
		body: body,
		done: make(chan struct{}),
	}
	go s.run(decode)
	return s
}

// C returns the value channel. It is closed when the stream ends.
func (s *Stream[T]) C() <-chan T {
	return s.ch
}

// Err returns the terminal error of the stream, or nil if it ended cleanly
// or was closed by the caller. Only meaningful after C is closed.
func (s *Stream[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close stops the stream and releases the underlying connection. Safe to
// call multiple times and concurrently with consumption.
func (s *Stream[T]) Close() {
	s.once.Do(func() {
		s.closed.Store(true)
		close(s.done)
		_ = s.body.Close()
	})
}

func (s *Stream[T]) run(decode func([]byte) (T, bool, error)) {
	defer close(s.ch)
	defer s.Close()

	sc := bufio.NewScanner(s.body)
	sc.Buffer(make([]byte, streamInitialBuffer), streamMaxLine)

	for sc.Scan() {
		v, ok, err := decode(sc.Bytes())
		if err != nil {
			s.setErr(err)
			return
		}
		if !ok {
			continue
		}

		select {
		case s.ch <- v:
		case <-s.done:
			return
		}
	}

	if err := sc.Err(); err != nil && !s.closed.Load() {
		s.setErr(err)
	}
}

func (s *Stream[T]) setErr(err error) {
	if s.closed.Load() {
		// the caller closed the stream; read errors past that point are noise
		return
	}
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}
