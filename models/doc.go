// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - PickSetRequest: prev_picks, next_pick (both required)
  - PickAddRequest: prev_picks, next_pick (optional, may be null)

# Response Types

Types for JSON responses:

  - Pick: returned by every lookup and by set, add, and clear
  - DeletePatternResponse: message, seq of the removed record
  - MessageResponse: message
  - ErrorResponse: error, message

# Domain Types

Pick is the only stored entity:

	type Pick struct {
		Seq       int64   `json:"seq"`
		PrevPicks string  `json:"prev_picks"`
		NextPick  *string `json:"next_pick"`
	}

A nil NextPick serializes as null and marks an open pattern. It is a
valid state, distinct from a missing record.
*/
package models
