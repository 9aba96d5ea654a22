// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Player describes one side of a game.
type Player struct {
	User        *LightUser `json:"user,omitempty"`
	Rating      int        `json:"rating,omitempty"`
	RatingDiff  int        `json:"ratingDiff,omitempty"`
	Provisional bool       `json:"provisional,omitempty"`
	AILevel     int        `json:"aiLevel,omitempty"`
	Analysis    *Analysis  `json:"analysis,omitempty"`
}

// LightUser is the compact user reference embedded in games and events.
type LightUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title,omitempty"`
}

// Analysis summarises the server analysis of one player's moves.
type Analysis struct {
	Inaccuracy int `json:"inaccuracy"`
	Mistake    int `json:"mistake"`
	Blunder    int `json:"blunder"`
	ACPL       int `json:"acpl"`
}

// Clock holds the time control of a game in seconds.
type Clock struct {
	Initial   int `json:"initial"`
	Increment int `json:"increment"`
	TotalTime int `json:"totalTime,omitempty"`
}

// Opening identifies the opening reached in a game.
type Opening struct {
	ECO  string `json:"eco"`
	Name string `json:"name"`
	Ply  int    `json:"ply"`
}

// Game is a finished or ongoing game as exported by the API in JSON form.
type Game struct {
	// ID is the 8-character game identifier.
	ID string `json:"id"`

	// Rated reports whether the game affects ratings.
	Rated bool `json:"rated"`

	// Variant is the game variant key (standard, chess960, ...).
	Variant string `json:"variant"`

	// Speed is the speed bucket (bullet, blitz, rapid, classical, ...).
	Speed string `json:"speed"`

	// Perf is the perf key the game is rated under.
	Perf string `json:"perf"`

	// CreatedAt is when the game started.
	CreatedAt MillisTime `json:"createdAt,omitzero"`

	// LastMoveAt is when the last move was played.
	LastMoveAt MillisTime `json:"lastMoveAt,omitzero"`

	// Status is the termination status (started, mate, resign, outoftime, ...).
	Status string `json:"status"`

	// Players holds both sides, keyed white/black.
	Players map[string]Player `json:"players"`

	// Winner is "white" or "black", empty for draws and ongoing games.
	Winner string `json:"winner,omitempty"`

	// Moves is the space-separated move list when requested.
	Moves string `json:"moves,omitempty"`

	// PGN is the full PGN text when requested on JSON exports.
	PGN string `json:"pgn,omitempty"`

	Opening     *Opening `json:"opening,omitempty"`
	Clock       *Clock   `json:"clock,omitempty"`
	DaysPerTurn int      `json:"daysPerTurn,omitempty"`
}

// OngoingGame is one entry of the authenticated user's now-playing list.
type OngoingGame struct {
	GameID      string     `json:"gameId"`
	FullID      string     `json:"fullId"`
	Color       string     `json:"color"`
	FEN         string     `json:"fen"`
	HasMoved    bool       `json:"hasMoved"`
	IsMyTurn    bool       `json:"isMyTurn"`
	LastMove    string     `json:"lastMove,omitempty"`
	Opponent    Opponent   `json:"opponent"`
	Perf        string     `json:"perf"`
	Rated       bool       `json:"rated"`
	SecondsLeft int64      `json:"secondsLeft,omitempty"`
	Source      string     `json:"source,omitempty"`
	Speed       string     `json:"speed"`
	Variant     VariantRef `json:"variant"`
}

// Opponent identifies the other player of an ongoing game.
type Opponent struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Rating   int    `json:"rating,omitempty"`
	AILevel  int    `json:"ai,omitempty"`
}

// VariantRef is the key/name pair the API uses to reference a variant.
type VariantRef struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// GameState is one frame of a board/bot game-state stream. Clock fields are
// remaining time in milliseconds.
type GameState struct {
	Type   string         `json:"type"`
	Moves  string         `json:"moves,omitempty"`
	Wtime  MillisDuration `json:"wtime,omitempty"`
	Btime  MillisDuration `json:"btime,omitempty"`
	Winc   MillisDuration `json:"winc,omitempty"`
	Binc   MillisDuration `json:"binc,omitempty"`
	Status string         `json:"status,omitempty"`
	Winner string         `json:"winner,omitempty"`

	// Full-game fields, present on the first "gameFull" frame.
	ID         string     `json:"id,omitempty"`
	Rated      bool       `json:"rated,omitempty"`
	CreatedAt  MillisTime `json:"createdAt,omitzero"`
	White      *Player    `json:"white,omitempty"`
	Black      *Player    `json:"black,omitempty"`
	InitialFEN string     `json:"initialFen,omitempty"`
	State      *GameState `json:"state,omitempty"`
}

// TVChannel is the best ongoing game of one speed or variant.
type TVChannel struct {
	User   LightUser `json:"user"`
	Rating int       `json:"rating"`
	GameID string    `json:"gameId"`
}

// Event is one frame of the incoming-event stream: a game starting or
// finishing, or a challenge arriving, being cancelled, or declined.
type Event struct {
	// Type is the event kind: gameStart, gameFinish, challenge,
	// challengeCanceled, challengeDeclined.
	Type string `json:"type"`

	// Game is set for gameStart/gameFinish events.
	Game *GameEventInfo `json:"game,omitempty"`

	// Challenge is set for challenge* events.
	Challenge *Challenge `json:"challenge,omitempty"`
}

// GameEventInfo is the compact game reference carried by game events.
type GameEventInfo struct {
	ID       string      `json:"id"`
	FullID   string      `json:"fullId,omitempty"`
	Color    string      `json:"color,omitempty"`
	FEN      string      `json:"fen,omitempty"`
	Source   string      `json:"source,omitempty"`
	Status   *GameStatus `json:"status,omitempty"`
	Opponent *Opponent   `json:"opponent,omitempty"`
}

// GameStatus is the numeric/name status pair used inside game events.
type GameStatus struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
