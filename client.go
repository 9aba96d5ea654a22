// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package simul

// Client is the main touchpoint for the API. All endpoints are namespaced
// into the clients below; every namespace shares one [Requestor] and
// therefore one rate limit.
type Client struct {
	// Account manages the authenticated account.
	Account *AccountClient

	// Users exposes public player information.
	Users *UsersClient

	// Teams manages team membership.
	Teams *TeamsClient

	// Games exports finished and ongoing games.
	Games *GamesClient

	// Challenges creates and answers challenges.
	Challenges *ChallengesClient

	// Board plays games as a physical board or external application.
	Board *BoardClient

	// Bots plays games as a bot account.
	Bots *BotsClient

	// Tournaments lists, creates and exports arena tournaments.
	Tournaments *TournamentsClient

	// Broadcasts manages game relays.
	Broadcasts *BroadcastsClient

	// Simuls lists simultaneous exhibitions.
	Simuls *SimulsClient

	// Studies exports studies.
	Studies *StudiesClient
}

type clientConfig struct {
	requestorOpts []RequestorOption
}

// ClientOption customises a [Client].
type ClientOption func(*clientConfig)

// WithRequestorOptions forwards options to the shared [Requestor]
// (logging, rate limits).
func WithRequestorOptions(opts ...RequestorOption) ClientOption {
	return func(c *clientConfig) { c.requestorOpts = append(c.requestorOpts, opts...) }
}

// NewClient builds a Client on top of session.
func NewClient(session *TokenSession, opts ...ClientOption) *Client {
	var cfg clientConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	r := NewRequestor(session, cfg.requestorOpts...)

	return &Client{
		Account:     &AccountClient{r: r},
		Users:       &UsersClient{r: r},
		Teams:       &TeamsClient{r: r},
		Games:       &GamesClient{r: r},
		Challenges:  &ChallengesClient{r: r},
		Board:       &BoardClient{r: r},
		Bots:        &BotsClient{r: r},
		Tournaments: &TournamentsClient{r: r},
		Broadcasts:  &BroadcastsClient{r: r},
		Simuls:      &SimulsClient{r: r},
		Studies:     &StudiesClient{r: r},
	}
}
