package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/devdonalds/cookbook/pkg/cookbook"
)

func TestNew(t *testing.T) {
	s := New(WithName("cookbookd"), WithVersion("test"))
	if s == nil {
		t.Fatal("expected server instance, got nil")
		return
	}

	if s.config == nil {
		t.Error("expected config to be initialized")
	}

	if s.config.Name != "cookbookd" {
		t.Errorf("expected name cookbookd, got %s", s.config.Name)
	}

	if s.httpServer == nil {
		t.Error("expected httpServer to be initialized")
	}

	if s.rateLimiter == nil {
		t.Error("expected rateLimiter to be initialized")
	}

	if s.store == nil || s.resolver == nil {
		t.Error("expected store and resolver to be initialized")
	}
}

func TestHealthEndpoint(t *testing.T) {
	s := New()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	s.handleHealth(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	if w.Header().Get("Content-Type") != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", w.Header().Get("Content-Type"))
	}
}

func TestReadyEndpoint(t *testing.T) {
	s := New()

	tests := []struct {
		name           string
		ready          bool
		expectedStatus int
	}{
		{
			name:           "ready state",
			ready:          true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "not ready state",
			ready:          false,
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.SetReady(tt.ready)

			req := httptest.NewRequest(http.MethodGet, "/ready", nil)
			w := httptest.NewRecorder()

			s.handleReady(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}

func TestEntryAdmission(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "valid ingredient",
			body:           `{"type":"ingredient","name":"Flour","cookTime":1}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "valid recipe",
			body:           `{"type":"recipe","name":"Bread","requiredItems":[{"name":"Flour","quantity":2}]}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid type",
			body:           `{"type":"pan","name":"Skillet"}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_TYPE",
		},
		{
			name:           "negative cook time",
			body:           `{"type":"ingredient","name":"Ice","cookTime":-1}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_COOK_TIME",
		},
		{
			name:           "missing cook time",
			body:           `{"type":"ingredient","name":"Air"}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "MISSING_FIELD",
		},
		{
			name:           "duplicate name",
			body:           `{"type":"ingredient","name":"Flour","cookTime":2}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "DUPLICATE_NAME",
		},
		{
			name:           "malformed JSON",
			body:           `{"type":`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_REQUEST",
		},
		{
			name:           "unknown field",
			body:           `{"type":"ingredient","name":"Sugar","cookTime":1,"color":"white"}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_REQUEST",
		},
	}

	s := New()
	handler := s.Handler()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/entry", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			if tt.expectedCode != "" {
				var errResp ErrorResponse
				if err := json.Unmarshal(w.Body.Bytes(), &errResp); err != nil {
					t.Fatalf("failed to decode error response: %v", err)
				}
				if errResp.Code != tt.expectedCode {
					t.Errorf("expected error code %s, got %s", tt.expectedCode, errResp.Code)
				}
				if errResp.RequestID == "" {
					t.Error("expected request ID in error response")
				}
			}
		})
	}
}

func TestSummaryEndpoint(t *testing.T) {
	store := cookbook.NewStore()
	seed := []cookbook.Entry{
		&cookbook.Ingredient{Name: "Flour", CookTime: 1},
		&cookbook.Recipe{Name: "Dough", RequiredItems: []cookbook.RequiredItem{{Name: "Flour", Quantity: 2}}},
		&cookbook.Recipe{Name: "Bread", RequiredItems: []cookbook.RequiredItem{{Name: "Dough", Quantity: 3}}},
		&cookbook.Recipe{Name: "Loop", RequiredItems: []cookbook.RequiredItem{{Name: "Loop", Quantity: 1}}},
		&cookbook.Recipe{Name: "Hole", RequiredItems: []cookbook.RequiredItem{{Name: "Missing", Quantity: 1}}},
	}
	for _, e := range seed {
		if err := store.Put(e); err != nil {
			t.Fatalf("seeding store: %v", err)
		}
	}

	s := New(WithStore(store))
	handler := s.Handler()

	tests := []struct {
		name           string
		target         string
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "nested recipe",
			target:         "/v1/summary?name=Bread",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing name parameter",
			target:         "/v1/summary",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_REQUEST",
		},
		{
			name:           "unknown entry",
			target:         "/v1/summary?name=Cake",
			expectedStatus: http.StatusNotFound,
			expectedCode:   "NOT_FOUND",
		},
		{
			name:           "ingredient query",
			target:         "/v1/summary?name=Flour",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "WRONG_TYPE",
		},
		{
			name:           "cyclic recipe",
			target:         "/v1/summary?name=Loop",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "CYCLIC_DEPENDENCY",
		},
		{
			name:           "missing dependency",
			target:         "/v1/summary?name=Hole",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "MISSING_DEPENDENCY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			if tt.expectedCode != "" {
				var errResp ErrorResponse
				if err := json.Unmarshal(w.Body.Bytes(), &errResp); err != nil {
					t.Fatalf("failed to decode error response: %v", err)
				}
				if errResp.Code != tt.expectedCode {
					t.Errorf("expected error code %s, got %s", tt.expectedCode, errResp.Code)
				}
			}
		})
	}

	t.Run("summary body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/summary?name=Bread", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		var summary cookbook.Summary
		if err := json.Unmarshal(w.Body.Bytes(), &summary); err != nil {
			t.Fatalf("failed to decode summary: %v", err)
		}
		if summary.CookTime != 6 {
			t.Errorf("expected cook time 6, got %d", summary.CookTime)
		}
		if summary.Ingredients["Flour"] != 6 {
			t.Errorf("expected 6 Flour, got %d", summary.Ingredients["Flour"])
		}
	})
}

func TestParseEndpoint(t *testing.T) {
	s := New()
	handler := s.Handler()

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "handwritten name",
			body:           `{"input":"Riz@z RISO00tto!"}`,
			expectedStatus: http.StatusOK,
			expectedMsg:    "Rizz Risotto",
		},
		{
			name:           "separators collapse",
			body:           `{"input":"alpHa-alFRedo"}`,
			expectedStatus: http.StatusOK,
			expectedMsg:    "Alpha Alfredo",
		},
		{
			name:           "nothing survives cleanup",
			body:           `{"input":"123-456"}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/parse", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			if tt.expectedMsg != "" {
				var resp ParseResponse
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("failed to decode parse response: %v", err)
				}
				if resp.Msg != tt.expectedMsg {
					t.Errorf("expected msg %q, got %q", tt.expectedMsg, resp.Msg)
				}
			}
		})
	}
}

func TestEntriesEndpoint(t *testing.T) {
	store := cookbook.NewStore()
	for _, e := range []cookbook.Entry{
		&cookbook.Ingredient{Name: "Salt", CookTime: 0},
		&cookbook.Ingredient{Name: "Flour", CookTime: 1},
	} {
		if err := store.Put(e); err != nil {
			t.Fatalf("seeding store: %v", err)
		}
	}

	s := New(WithStore(store))
	req := httptest.NewRequest(http.MethodGet, "/v1/entries", nil)
	w := httptest.NewRecorder()

	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp EntriesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode entries response: %v", err)
	}

	want := []string{"Flour", "Salt"}
	if len(resp.Entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(resp.Entries))
	}
	for i, name := range want {
		if resp.Entries[i] != name {
			t.Errorf("entry %d: expected %s, got %s", i, name, resp.Entries[i])
		}
	}
}

func TestMethodNotAllowed(t *testing.T) {
	s := New()
	handler := s.Handler()

	tests := []struct {
		name   string
		method string
		target string
	}{
		{"get entry", http.MethodGet, "/v1/entry"},
		{"post summary", http.MethodPost, "/v1/summary?name=X"},
		{"delete parse", http.MethodDelete, "/v1/parse"},
		{"post entries", http.MethodPost, "/v1/entries"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body *bytes.Reader
			if tt.method == http.MethodPost {
				body = bytes.NewReader([]byte(`{}`))
			} else {
				body = bytes.NewReader(nil)
			}

			req := httptest.NewRequest(tt.method, tt.target, body)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("expected status 405, got %d", w.Code)
			}

			if allow := w.Header().Get("Allow"); allow == "" {
				t.Error("expected Allow header on 405 response")
			}
		})
	}
}

func TestDefaultRoute(t *testing.T) {
	s := New(WithName("cookbookd"), WithVersion("test"))
	s.SetReady(true)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		Name    string   `json:"name"`
		Version string   `json:"version"`
		Ready   bool     `json:"ready"`
		Routes  []string `json:"routes"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode default response: %v", err)
	}

	if resp.Name != "cookbookd" {
		t.Errorf("expected name cookbookd, got %s", resp.Name)
	}
	if !resp.Ready {
		t.Error("expected ready true")
	}
	if len(resp.Routes) == 0 {
		t.Error("expected route list")
	}
}

func TestShutdown(t *testing.T) {
	s := New()
	s.SetReady(true)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		t.Errorf("unexpected shutdown error: %v", err)
	}

	s.mu.RLock()
	ready := s.ready
	s.mu.RUnlock()
	if ready {
		t.Error("expected server to be not ready after shutdown")
	}
}
