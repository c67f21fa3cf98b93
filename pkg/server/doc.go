// Package server implements the cookbook HTTP API.
//
// The server is a stateless HTTP front over an in-memory cookbook:
// entries are admitted through POST /v1/entry and flattened recipe
// summaries are served from GET /v1/summary. The store lives for the
// lifetime of the process.
//
// # Architecture
//
//   - Admission validation via pkg/cookbook
//   - Rate limiting using token bucket algorithm (golang.org/x/time/rate)
//   - Request ID tracking for distributed tracing
//   - Panic recovery for resilience
//   - Graceful shutdown handling
//   - Health and readiness probes for Kubernetes
//
// # Usage
//
// Basic server startup:
//
//	s := server.New(
//	    server.WithName("cookbookd"),
//	    server.WithVersion("1.0.0"),
//	)
//	if err := s.Run(context.Background()); err != nil {
//	    panic(err)
//	}
//
// # API Endpoints
//
// POST /v1/entry - Admit a new ingredient or recipe
//
//	Body: {"type": "ingredient", "name": "Flour", "cookTime": 1}
//	  or: {"type": "recipe", "name": "Bread",
//	       "requiredItems": [{"name": "Flour", "quantity": 2}]}
//
//	Returns 200 with an empty object on success; a structured error
//	response otherwise. Names are unique, first admission wins.
//
// GET /v1/summary?name=X - Flatten recipe X into base ingredients
//
//	Returns {"name": "...", "cookTime": N, "ingredients": {"Flour": 6}}.
//	404 when no entry has that name, 400 when the entry is an
//	ingredient or resolution fails.
//
// POST /v1/parse - Normalize a handwritten entry name
//
//	Body: {"input": "Riz@z RISO00tto!"} -> {"msg": "Rizz Risotto"}
//
// GET /v1/entries - Sorted names of everything in the cookbook
//
// GET /health - Health check (for liveness probe)
//
// GET /ready - Readiness check (for readiness probe)
//
// # Observability
//
// Request ID Tracking:
//
//	All requests accept an optional X-Request-Id header (UUID format).
//	If not provided, the server generates one automatically.
//	The request ID is returned in the X-Request-Id response header
//	and included in all error responses for tracing.
//
// Rate Limiting:
//
//	Response headers indicate rate limit status:
//	  X-RateLimit-Limit: Total requests allowed per window
//	  X-RateLimit-Remaining: Requests remaining in current window
//	  X-RateLimit-Reset: Unix timestamp when window resets
//
//	When rate limited, returns 429 with Retry-After header.
//
// # Error Handling
//
// All errors return a consistent JSON structure:
//
//	{
//	  "code": "DUPLICATE_NAME",
//	  "message": "entry \"Flour\" already exists",
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2026-08-30T12:00:00Z",
//	  "retryable": false
//	}
//
// The code field carries the structured error code from pkg/errors so
// clients can branch without parsing messages. Admission and resolution
// failures map to 400, NOT_FOUND to 404, RATE_LIMIT_EXCEEDED to 429,
// and INTERNAL to 500.
package server
