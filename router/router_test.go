// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/pickhelper/models"
	"github.com/danielhkuo/pickhelper/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	mux := NewRouter(db)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	mux := NewRouter(db)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "pickhelper API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	db := testutil.SetupTestDB(t)
	mux := NewRouter(db)

	// 400 and 404 are valid responses here, 405 means the route is missing
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},
		{"GET", "/api/v1/picks/seq/1"},
		{"GET", "/api/v1/picks/pattern/a"},
		{"POST", "/api/v1/picks/set"},
		{"POST", "/api/v1/picks/add"},
		{"DELETE", "/api/v1/picks/pattern/a/next"},
		{"DELETE", "/api/v1/picks/pattern/a"},
		{"GET", "/api/v1/sample"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	mux := NewRouter(db)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"PUT", "/api/v1/picks/set"},
		{"POST", "/api/v1/picks/pattern/a"},
		{"DELETE", "/api/v1/picks/seq/1"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestPathParameterExtraction(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.CreateTestPick(t, db, "a/b", "c")
	mux := NewRouter(db)

	t.Run("escaped slash in pattern", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/picks/pattern/a%2Fb", nil)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d. Body: %s", w.Code, w.Body.String())
		}
		var pick models.Pick
		json.NewDecoder(w.Body).Decode(&pick)
		if pick.PrevPicks != "a/b" {
			t.Errorf("Expected prev_picks 'a/b', got '%s'", pick.PrevPicks)
		}
	})

	t.Run("clear next routes to ClearNext", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/api/v1/picks/pattern/a%2Fb/next", nil)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d. Body: %s", w.Code, w.Body.String())
		}
		var pick models.Pick
		json.NewDecoder(w.Body).Decode(&pick)
		if pick.NextPick != nil {
			t.Error("Expected next_pick to be cleared, record should remain")
		}
	})
}

func TestRequestIDHeader(t *testing.T) {
	db := testutil.SetupTestDB(t)
	mux := NewRouter(db)

	req := httptest.NewRequest("GET", "/api/v1/sample", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Header().Get("X-Request-ID") == "" {
		t.Error("Expected X-Request-ID on logged routes")
	}
}
