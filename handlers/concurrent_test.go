// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/pickhelper/models"
	"github.com/danielhkuo/pickhelper/testutil"
)

// TestConcurrentAddSamePattern verifies that when several goroutines add the
// same pattern, exactly one succeeds and the rest get 409
func TestConcurrentAddSamePattern(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewPickHandler(db)

	numAttempts := 10
	var created, conflicts atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numAttempts; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			body := models.PickAddRequest{PrevPicks: "race", NextPick: testutil.StrPtr(fmt.Sprintf("n%d", idx))}
			req := testutil.MakeRequest("POST", "/api/v1/picks/add", body, nil)
			w := httptest.NewRecorder()
			h.Add(w, req)

			switch w.Code {
			case http.StatusCreated:
				created.Add(1)
			case http.StatusConflict:
				conflicts.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if created.Load() != 1 {
		t.Errorf("Expected exactly 1 successful add, got %d", created.Load())
	}
	if int(conflicts.Load()) != numAttempts-1 {
		t.Errorf("Expected %d conflicts, got %d", numAttempts-1, conflicts.Load())
	}
	if n := testutil.CountPicks(t, db, "race"); n != 1 {
		t.Errorf("Expected 1 row for contested pattern, got %d", n)
	}
}

// TestConcurrentSetDistinctPatterns verifies that concurrent upserts of
// different patterns get distinct seq values
func TestConcurrentSetDistinctPatterns(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewPickHandler(db)

	numWriters := 10
	seqs := make([]int64, numWriters)
	var wg sync.WaitGroup

	for i := 0; i < numWriters; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			body := models.PickSetRequest{PrevPicks: fmt.Sprintf("p%d", idx), NextPick: testutil.StrPtr("n")}
			req := testutil.MakeRequest("POST", "/api/v1/picks/set", body, nil)
			w := httptest.NewRecorder()
			h.Set(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("Set %d failed: %d - %s", idx, w.Code, w.Body.String())
				return
			}
			var pick models.Pick
			if err := json.Unmarshal(w.Body.Bytes(), &pick); err != nil {
				t.Errorf("Set %d returned invalid JSON: %v", idx, err)
				return
			}
			seqs[idx] = pick.Seq
		}(i)
	}

	wg.Wait()

	seen := make(map[int64]bool)
	for _, seq := range seqs {
		if seen[seq] {
			t.Errorf("Duplicate seq %d", seq)
		}
		seen[seq] = true
	}
}
