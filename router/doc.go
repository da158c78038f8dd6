// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the pickhelper API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db)

# Endpoints

Health:

	GET /health

Lookups:

	GET /api/v1/picks/seq/{seq}              - By seq; ?skip_filled=true or ?direction=next|prev
	GET /api/v1/picks/pattern/{prev_picks}   - By pattern

Mutations:

	POST   /api/v1/picks/set                          - Upsert next_pick
	POST   /api/v1/picks/add                          - Create pattern (409 if it exists)
	DELETE /api/v1/picks/pattern/{prev_picks}/next    - Clear next_pick
	DELETE /api/v1/picks/pattern/{prev_picks}         - Delete pattern

Sample:

	GET /api/v1/sample

Patterns containing "/" must be path-escaped (%2F); the wildcard value is
unescaped before it reaches the handler.
*/
package router
