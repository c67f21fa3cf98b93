package defaults

import "time"

// Handler timeouts for HTTP request processing.
const (
	// EntryHandlerTimeout is the timeout for entry admission requests.
	EntryHandlerTimeout = 10 * time.Second

	// SummaryHandlerTimeout is the timeout for summary requests.
	// Resolution is CPU-bound; the ceiling exists for adversarial inputs.
	SummaryHandlerTimeout = 30 * time.Second
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Resolver ceilings for recipe expansion.
//
// Expansion is recursive over a graph the caller controls, so both the
// nesting depth and the total number of required-item visits are capped.
// Exceeding either fails the query closed rather than recursing unbounded.
const (
	// ResolverMaxDepth is the maximum recipe nesting depth.
	ResolverMaxDepth = 256

	// ResolverMaxOps is the maximum number of required-item expansions
	// performed for a single query.
	ResolverMaxOps = 1_000_000
)
