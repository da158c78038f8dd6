// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the pickhelper API.

# Handler Types

PickHandler wraps a store.PickStore built from the database connection:

	pickHandler := handlers.NewPickHandler(db)

GetSample is a plain handler func with no dependencies.

# Lookups

	GET /api/v1/picks/seq/{seq}            → GetBySeq
	GET /api/v1/picks/pattern/{prev_picks} → GetByPattern

GetBySeq chooses a lookup mode from the query string:

	(none)             exact seq
	skip_filled=true   first open pick at or after seq
	direction=next     nearest pick after seq
	direction=prev     nearest pick before seq

Combining skip_filled=true with direction is rejected with 400. Any other
direction value falls back to an exact lookup.

# Mutations

	POST   /api/v1/picks/set                       → Set (upsert)
	POST   /api/v1/picks/add                       → Add (strict insert)
	DELETE /api/v1/picks/pattern/{prev_picks}/next → ClearNext
	DELETE /api/v1/picks/pattern/{prev_picks}      → DeletePattern

# Errors

Store errors map to status codes:

	store.ErrNotFound → 404 "Pick not found"
	store.ErrConflict → 409 "Pattern already exists"
	anything else     → 500 "Database error" (logged)
*/
package handlers
