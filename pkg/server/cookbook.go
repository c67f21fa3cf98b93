package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/devdonalds/cookbook/pkg/cookbook"
	"github.com/devdonalds/cookbook/pkg/errors"
	"github.com/devdonalds/cookbook/pkg/parser"
	"github.com/devdonalds/cookbook/pkg/serializer"
)

// ParseRequest is the POST /v1/parse request body.
type ParseRequest struct {
	Input string `json:"input"`
}

// ParseResponse is the POST /v1/parse response body.
type ParseResponse struct {
	Msg string `json:"msg"`
}

// EntriesResponse is the GET /v1/entries response body.
type EntriesResponse struct {
	Entries []string `json:"entries"`
}

// handleEntry handles POST /v1/entry: decode a proposed entry, validate
// it, and admit it into the store. Success returns an empty JSON object;
// the store is untouched on any failure.
func (s *Server) handleEntry(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		s.writeError(w, r, http.StatusMethodNotAllowed,
			string(errors.ErrCodeMethodNotAllowed),
			"Method not allowed", false, map[string]any{"method": r.Method})
		return
	}

	payload, err := decodePayload(r, s.config.MaxBodyBytes)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	if err := cookbook.CreateEntry(s.store, payload); err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, struct{}{})
}

// handleSummary handles GET /v1/summary?name=X
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		s.writeError(w, r, http.StatusMethodNotAllowed,
			string(errors.ErrCodeMethodNotAllowed),
			"Method not allowed", false, map[string]any{"method": r.Method})
		return
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		s.writeError(w, r, http.StatusBadRequest,
			string(errors.ErrCodeInvalidRequest),
			"Missing required query parameter: name", false, nil)
		return
	}

	summary, err := cookbook.Summarize(s.store, s.resolver, name)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, summary)
}

// handleParse handles POST /v1/parse: normalize a handwritten entry name.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		s.writeError(w, r, http.StatusMethodNotAllowed,
			string(errors.ErrCodeMethodNotAllowed),
			"Method not allowed", false, map[string]any{"method": r.Method})
		return
	}

	var req ParseRequest
	if err := decodeJSON(r, s.config.MaxBodyBytes, &req); err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	msg, err := parser.ParseName(req.Input)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, ParseResponse{Msg: msg})
}

// handleEntries handles GET /v1/entries: sorted names of everything in
// the cookbook.
func (s *Server) handleEntries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		s.writeError(w, r, http.StatusMethodNotAllowed,
			string(errors.ErrCodeMethodNotAllowed),
			"Method not allowed", false, map[string]any{"method": r.Method})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, EntriesResponse{Entries: s.store.Names()})
}

// decodePayload reads and decodes an entry payload from the request body.
func decodePayload(r *http.Request, maxBytes int64) (*cookbook.EntryPayload, error) {
	var payload cookbook.EntryPayload
	if err := decodeJSON(r, maxBytes, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// decodeJSON decodes a size-capped JSON request body into v. Unknown
// fields are rejected so typos surface as errors instead of silently
// dropped fields.
func decodeJSON(r *http.Request, maxBytes int64, v any) error {
	body := http.MaxBytesReader(nil, r.Body, maxBytes)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidRequest, "invalid JSON body", err)
	}
	if dec.More() {
		return errors.New(errors.ErrCodeInvalidRequest, "unexpected trailing data after JSON body")
	}
	// Drain so the connection can be reused
	_, _ = io.Copy(io.Discard, body)
	return nil
}
