// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package testutil provides database fixtures and HTTP helpers for tests.
// SetupTestDB opens a throwaway SQLite database under t.TempDir.
package testutil
