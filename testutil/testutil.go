// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/pickhelper/db"
)

// SetupTestDB creates a fresh SQLite database in a temp dir with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "picks.db")
	conn, err := db.Open(db.TypeSQLite, path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, db.TypeSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// CreateTestPick inserts a pick directly and returns its seq.
// An empty nextPick is stored as NULL.
func CreateTestPick(t *testing.T, conn *sql.DB, prevPicks, nextPick string) int64 {
	t.Helper()

	var next sql.NullString
	if nextPick != "" {
		next = sql.NullString{String: nextPick, Valid: true}
	}

	var seq int64
	err := conn.QueryRow(`
		INSERT INTO picks (prev_picks, next_pick)
		VALUES ($1, $2)
		RETURNING seq
	`, prevPicks, next).Scan(&seq)
	if err != nil {
		t.Fatalf("Failed to create test pick: %v", err)
	}

	return seq
}

// CreateTestPickAt inserts a pick with an explicit seq
func CreateTestPickAt(t *testing.T, conn *sql.DB, seq int64, prevPicks, nextPick string) {
	t.Helper()

	var next sql.NullString
	if nextPick != "" {
		next = sql.NullString{String: nextPick, Valid: true}
	}

	_, err := conn.Exec(`
		INSERT INTO picks (seq, prev_picks, next_pick)
		VALUES ($1, $2, $3)
	`, seq, prevPicks, next)
	if err != nil {
		t.Fatalf("Failed to create test pick at seq %d: %v", seq, err)
	}
}

// CountPicks returns the number of rows with the given pattern
func CountPicks(t *testing.T, conn *sql.DB, prevPicks string) int {
	t.Helper()

	var count int
	err := conn.QueryRow("SELECT COUNT(*) FROM picks WHERE prev_picks = $1", prevPicks).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count picks: %v", err)
	}
	return count
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// StrPtr returns a pointer to s
func StrPtr(s string) *string {
	return &s
}
