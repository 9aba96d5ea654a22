package simul

import "net/http"

// Endpoint is a declarative description of one API operation: its path
// relative to the base URL, the HTTP method, and the response format.
// Request-specific inputs (query, body) travel separately in [Params].
type Endpoint struct {
	Path   string
	Method string
	Format Format
}

// Get returns a GET endpoint with the default JSON format.
func Get(path string) Endpoint {
	return Endpoint{Path: path, Method: http.MethodGet, Format: FormatJSON}
}

// Post returns a POST endpoint with the default JSON format.
func Post(path string) Endpoint {
	return Endpoint{Path: path, Method: http.MethodPost, Format: FormatJSON}
}

// WithFormat returns a copy of the endpoint with the response format
// replaced.
func (e Endpoint) WithFormat(f Format) Endpoint {
	e.Format = f
	return e
}

// Params carries the per-call inputs of a request. Zero values are omitted
// from the outgoing request.
type Params struct {
	// Query holds query string parameters.
	Query map[string]string

	// Form holds application/x-www-form-urlencoded body fields.
	Form map[string]string

	// JSON is marshalled as the request body when non-nil.
	JSON any

	// Body is sent verbatim as a text/plain request body, used by the
	// endpoints that take comma-separated id lists.
	Body string
}
