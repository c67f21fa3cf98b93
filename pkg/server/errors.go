package server

import (
	"net/http"
	"time"

	"github.com/devdonalds/cookbook/pkg/errors"
	"github.com/devdonalds/cookbook/pkg/serializer"
	"github.com/google/uuid"
)

// ErrorResponse is the JSON error envelope returned by every endpoint.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// writeError writes error response
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, statusCode int,
	code, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      code,
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// writeDomainError maps a cookbook error onto the HTTP surface: the
// structured code rides through unchanged so clients can branch on it
// programmatically, while the status collapses to the usual buckets.
func (s *Server) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.CodeOf(err)
	s.writeError(w, r, statusForCode(code), string(code), err.Error(),
		retryableForCode(code), nil)
}

// statusForCode maps structured error codes to HTTP status codes.
// Unknown codes are treated as client errors rather than server faults.
func statusForCode(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case errors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case errors.ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// retryableForCode reports whether a retry of the same request could
// succeed without the client changing anything.
func retryableForCode(code errors.ErrorCode) bool {
	switch code {
	case errors.ErrCodeInternal, errors.ErrCodeRateLimitExceeded:
		return true
	default:
		return false
	}
}
