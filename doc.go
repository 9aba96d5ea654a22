// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package simul is a Go client for the lichess.org game-server API.
//
// A [TokenSession] holds the HTTP transport and the personal access token; a
// [Client] groups the API into endpoint namespaces:
//
//	session, err := simul.NewTokenSession(simul.SessionConfig{Token: token})
//	if err != nil { ... }
//	client := simul.NewClient(session)
//
//	account, err := client.Account.Get(ctx)
//	events, err := client.Board.StreamIncomingEvents(ctx)
//	for ev := range events.C() { ... }
//
// Requests are rate limited client side and HTTP error statuses are mapped
// to sentinel errors ([ErrUnauthorized], [ErrNotFound], ...) so callers can
// branch with errors.Is. Streaming endpoints (NDJSON and PGN) are exposed as
// typed [Stream] values backed by a channel.
package simul
