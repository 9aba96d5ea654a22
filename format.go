package simul

// Format selects the response representation requested from the API via the
// Accept header. The server decides JSON vs PGN vs NDJSON based on it.
type Format string

const (
	// FormatJSON requests a plain JSON document.
	FormatJSON Format = "application/json"

	// FormatNDJSON requests newline-delimited JSON, used by streaming
	// endpoints. Blank lines are keep-alives.
	FormatNDJSON Format = "application/x-ndjson"

	// FormatLiJSON requests the vendor JSON variant some listing endpoints
	// (leaderboards) require.
	FormatLiJSON Format = "application/vnd.lichess.v3+json"

	// FormatPGN requests games as PGN text.
	FormatPGN Format = "application/x-chess-pgn"

	// FormatText requests plain text.
	FormatText Format = "text/plain"
)
